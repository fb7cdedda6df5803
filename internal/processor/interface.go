package processor

import (
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/notifier"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetPlayers(playerIDs []string) ([]club.PlayerInfo, error)
	UpsertPlayers(players []club.PlayerInfo) error
	InsertMatch(match *club.Match) error
	GetMatch(matchID string) (*club.Match, error)
	GetMatchesForProcessing() ([]*club.Match, error)
	IsKnownPlayer(playerID string) bool
	HasExternalMatch(externalID string) bool
	ApplyMatchResult(match *club.Match, changes elo.EloChanges) error
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
