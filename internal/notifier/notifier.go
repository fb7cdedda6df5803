package notifier

import (
	"github.com/mauv0809/padel-ledger/internal/club"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For rated matches. players resolves the ids of the match to names.
	SendResultNotification(match *club.Match, players map[string]club.PlayerInfo, dryRun bool) error
	// For posting the ladder to the club channel
	SendRankings(rankings []club.PlayerStats, dryRun bool) error

	// For formatting responses for slash commands
	FormatRankingsResponse(rankings []club.PlayerStats) (any, error)
	FormatPlayerStatsResponse(stats *club.PlayerStats, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
