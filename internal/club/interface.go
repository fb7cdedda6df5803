package club

import (
	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/padel"
)

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	AddPlayer(name string, category padel.Category, isGhost bool, createdBy string) (*PlayerInfo, error)
	UpsertPlayers(players []PlayerInfo) error
	GetPlayer(playerID string) (*PlayerInfo, error)
	GetPlayers(playerIDs []string) ([]PlayerInfo, error)
	GetAllPlayers() ([]PlayerInfo, error)
	IsKnownPlayer(playerID string) bool
	GetPlayerStatsByName(playerName string) (*PlayerStats, error)
	GetRankings(limit int) ([]PlayerStats, error)

	InsertMatch(match *Match) error
	GetMatch(matchID string) (*Match, error)
	GetAllMatches() ([]*Match, error)
	GetMatchesForPlayer(playerID string) ([]*Match, error)
	GetMatchesForProcessing() ([]*Match, error)
	HasExternalMatch(externalID string) bool
	ApplyMatchResult(match *Match, changes elo.EloChanges) error

	CreateClub(name, city string) (*Club, error)
	GetClubs() ([]Club, error)
	CreateTournament(clubID, name string, startDate, endDate int64) (*Tournament, error)
	GetTournaments(clubID string) ([]Tournament, error)
}
