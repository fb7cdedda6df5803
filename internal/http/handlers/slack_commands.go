package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/notifier"
	"github.com/slack-go/slack"
)

// defaultRankingsLimit is how many players /rankings shows without an argument.
const defaultRankingsLimit = 10

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

func respondWithFormatted(w http.ResponseWriter, msg any, err error) {
	if err != nil {
		http.Error(w, "Failed to format response", http.StatusInternalServerError)
		log.Error("Failed to format slack response", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// RankingsCommandHandler answers "/rankings [n]" with the top n players.
func RankingsCommandHandler(store club.ClubStore, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		limit := defaultRankingsLimit
		if text := strings.TrimSpace(cmd.Text); text != "" {
			if n, err := strconv.Atoi(text); err == nil && n > 0 {
				limit = n
			}
		}

		log.Info("Received rankings command", "user", cmd.UserName, "limit", limit)
		rankings, err := store.GetRankings(limit)
		if err != nil {
			http.Error(w, "Failed to get rankings", http.StatusInternalServerError)
			log.Error("Failed to get rankings from store", "error", err)
			return
		}
		msg, err := notifier.FormatRankingsResponse(rankings)
		respondWithFormatted(w, msg, err)
	}
}

// PlayerStatsCommandHandler answers "/player-stats <name>".
func PlayerStatsCommandHandler(store club.ClubStore, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		playerName := strings.Join(strings.Fields(cmd.Text), " ")
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", playerName)
		stats, err := store.GetPlayerStatsByName(playerName)
		var msg any
		if err != nil {
			log.Warn("Could not find player stats", "player", playerName, "error", err)
			msg, err = notifier.FormatPlayerNotFoundResponse(playerName)
		} else {
			msg, err = notifier.FormatPlayerStatsResponse(stats, playerName)
		}
		respondWithFormatted(w, msg, err)
	}
}
