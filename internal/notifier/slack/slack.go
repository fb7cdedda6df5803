package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/notifier"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts match results and rankings to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	location  *time.Location
}

// NewNotifier creates a new Notifier. An empty token disables posting.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	n := &Notifier{
		channelID: channelID,
		metrics:   metrics,
		location:  clubLocation(),
	}
	if token != "" {
		n.api = slack.New(token)
	}
	return n
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		location:  time.UTC,
	}
}

func clubLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}
	if s.api == nil || s.channelID == "" {
		log.Warn("Slack is not configured, skipping message")
		return "", "", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendResultNotification(match *club.Match, players map[string]club.PlayerInfo, dryRun bool) error {
	msg := s.formatResultNotification(match, players)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendRankings(rankings []club.PlayerStats, dryRun bool) error {
	msg := s.formatRankings(rankings)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatRankingsResponse formats the rankings for a slash command response.
func (s *Notifier) FormatRankingsResponse(rankings []club.PlayerStats) (any, error) {
	return s.formatRankings(rankings), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(stats *club.PlayerStats, query string) (any, error) {
	return s.formatPlayerStats(stats, query), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

func teamName(ids [2]string, players map[string]club.PlayerInfo) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := players[id]; ok && p.Name != "" {
			names = append(names, p.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, " & ")
}

// formatResultNotification creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatResultNotification(match *club.Match, players map[string]club.PlayerInfo) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Match recorded! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	team1, team2 := teamName(match.Team1, players), teamName(match.Team2, players)
	winner, loser := team1, team2
	if match.Winner == padel.Team2 {
		winner, loser = team2, team1
	}
	timeStr := time.Unix(match.PlayedAt, 0).In(s.location).Format("Monday 02 Jan, 15:04")
	resultText := fmt.Sprintf("%s beat %s 🏆\n%s", winner, loser, timeStr)

	var setFields []*slack.TextBlockObject
	for i, set := range match.Sets {
		text := fmt.Sprintf("%s\n%d-%d", padel.SetLabel(i, match.Config), set.Team1, set.Team2)
		setFields = append(setFields, slack.NewTextBlockObject("plain_text", text, true, false))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), setFields, nil))

	if match.EloChanges != nil {
		var lines []string
		ids := match.PlayerIDs()
		for i, change := range match.EloChanges.Slots() {
			lines = append(lines, formatChange(players[ids[i]].Name, change))
		}
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false)))
	}

	return slack.NewBlockMessage(blocks...)
}

func formatChange(name string, c elo.Change) string {
	return fmt.Sprintf("*%s*: %d → %d (%+d)", name, c.Before, c.After, c.Change)
}

// formatRankings creates a Slack message to display the rating ladder.
func (s *Notifier) formatRankings(rankings []club.PlayerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Padel Rankings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rankings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, stat := range rankings {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s (%s)\n> ELO: %d | Match Win %%: %.2f%% (%d/%d)",
			rank,
			medal,
			stat.PlayerName,
			stat.Category,
			stat.Elo,
			stat.WinPercentage,
			stat.MatchesWon,
			stat.MatchesPlayed,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(stat *club.PlayerStats, query string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", stat.PlayerName)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *ELO*: %d (%s)\n> *Match Win %%*: %.2f%% (%d/%d)\n> *Sets*: %d-%d\n> *Games*: %d-%d",
		stat.Elo,
		stat.Category,
		stat.WinPercentage,
		stat.MatchesWon,
		stat.MatchesPlayed,
		stat.SetsWon,
		stat.SetsLost,
		stat.GamesWon,
		stat.GamesLost,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
