package handlers

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/stats"
)

func ListPlayersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

type createPlayerRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Category  string `json:"category" validate:"required"`
	IsGhost   bool   `json:"is_ghost"`
	CreatedBy string `json:"created_by" validate:"required_if=IsGhost true"`
}

// CreatePlayerHandler adds a player. The initial rating follows from the category.
func CreatePlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlayerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		category, err := padel.ParseCategory(req.Category)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if IsDryRunFromContext(r) {
			rating, _ := padel.InitialRating(category)
			log.Info("[Dry Run] Would add player", "name", req.Name, "category", category)
			writeJSON(w, http.StatusOK, club.PlayerInfo{Name: req.Name, Category: category, Elo: rating, IsGhost: req.IsGhost, CreatedBy: req.CreatedBy})
			return
		}
		player, err := store.AddPlayer(req.Name, category, req.IsGhost, req.CreatedBy)
		if err != nil {
			writeStoreError(w, err, "add player")
			return
		}
		log.Info("Added player", "playerID", player.ID, "name", player.Name, "category", player.Category)
		writeJSON(w, http.StatusCreated, player)
	}
}

func GetPlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := store.GetPlayer(r.PathValue("id"))
		if err != nil {
			writeStoreError(w, err, "get player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

// PartnersHandler reports a player's record with each partner they played with.
func PartnersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		if _, err := store.GetPlayer(playerID); err != nil {
			writeStoreError(w, err, "get player")
			return
		}
		matches, err := store.GetMatchesForPlayer(playerID)
		if err != nil {
			writeStoreError(w, err, "get matches")
			return
		}
		players, err := store.GetAllPlayers()
		if err != nil {
			writeStoreError(w, err, "get players")
			return
		}
		names := make(map[string]string, len(players))
		for _, p := range players {
			names[p.ID] = p.Name
		}
		writeJSON(w, http.StatusOK, stats.ComputePartners(playerID, matches, names))
	}
}

// HeadToHeadHandler reports the record between two players who met on opposite sides.
func HeadToHeadHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, opponentID := r.PathValue("id"), r.PathValue("opponentID")
		if playerID == opponentID {
			writeError(w, http.StatusBadRequest, "a player has no head-to-head record with themselves")
			return
		}
		for _, id := range []string{playerID, opponentID} {
			if _, err := store.GetPlayer(id); err != nil {
				writeStoreError(w, err, "get player")
				return
			}
		}
		matches, err := store.GetMatchesForPlayer(playerID)
		if err != nil {
			writeStoreError(w, err, "get matches")
			return
		}
		writeJSON(w, http.StatusOK, stats.ComputeHeadToHead(playerID, opponentID, matches))
	}
}

func RankingsHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = parsed
		}
		rankings, err := store.GetRankings(limit)
		if err != nil {
			http.Error(w, "Failed to get rankings", http.StatusInternalServerError)
			log.Error("Failed to get rankings from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, rankings)
	}
}
