package club

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/padel"
)

var (
	// ErrNotFound is returned when a player, match, club or tournament does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyRated is returned when ratings are applied twice for the same match.
	ErrAlreadyRated = errors.New("match already rated")
)

// store handles all database operations for the club.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ProcessingStatus tracks whether a match has gone through the rating engine.
type ProcessingStatus string

const (
	StatusNew   ProcessingStatus = "NEW"
	StatusRated ProcessingStatus = "RATED"
)

// PlayerInfo represents a player in the store.
type PlayerInfo struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category padel.Category `json:"category"`
	Elo      int            `json:"elo"`
	// IsGhost marks a player without a linked account, added by CreatedBy.
	IsGhost   bool   `json:"is_ghost"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// PlayerStats represents a player's statistics for the leaderboard.
type PlayerStats struct {
	PlayerID      string         `json:"player_id"`
	PlayerName    string         `json:"player_name"`
	Category      padel.Category `json:"category"`
	Elo           int            `json:"elo"`
	MatchesPlayed int            `json:"matches_played"`
	MatchesWon    int            `json:"matches_won"`
	MatchesLost   int            `json:"matches_lost"`
	SetsWon       int            `json:"sets_won"`
	SetsLost      int            `json:"sets_lost"`
	GamesWon      int            `json:"games_won"`
	GamesLost     int            `json:"games_lost"`
	WinPercentage float64        `json:"win_percentage"`
}

// Match is a recorded doubles match. Team1 and Team2 hold player ids.
type Match struct {
	ID               string            `json:"id" msgpack:"id"`
	Team1            [2]string         `json:"team1" msgpack:"team1"`
	Team2            [2]string         `json:"team2" msgpack:"team2"`
	Sets             []padel.SetScore  `json:"sets" msgpack:"sets"`
	Config           padel.MatchConfig `json:"config" msgpack:"config"`
	Winner           padel.Team        `json:"winner" msgpack:"winner"`
	EloChanges       *elo.EloChanges   `json:"elo_changes,omitempty" msgpack:"elo_changes,omitempty"`
	ClubID           string            `json:"club_id,omitempty" msgpack:"club_id,omitempty"`
	TournamentID     string            `json:"tournament_id,omitempty" msgpack:"tournament_id,omitempty"`
	ExternalID       string            `json:"external_id,omitempty" msgpack:"external_id,omitempty"`
	PlayedAt         int64             `json:"played_at" msgpack:"played_at"`
	CreatedBy        string            `json:"created_by,omitempty" msgpack:"created_by,omitempty"`
	ProcessingStatus ProcessingStatus  `json:"processing_status" msgpack:"processing_status"`
	CreatedAt        int64             `json:"created_at" msgpack:"created_at"`
}

// PlayerIDs returns the four player slots: team 1 first, then team 2.
func (m *Match) PlayerIDs() [4]string {
	return [4]string{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]}
}

// SideOf returns the team the player played for, or NoTeam.
func (m *Match) SideOf(playerID string) padel.Team {
	switch playerID {
	case m.Team1[0], m.Team1[1]:
		return padel.Team1
	case m.Team2[0], m.Team2[1]:
		return padel.Team2
	}
	return padel.NoTeam
}

// PartnerOf returns the id of the player's team mate, or "" when the player
// did not play in the match.
func (m *Match) PartnerOf(playerID string) string {
	for _, team := range [][2]string{m.Team1, m.Team2} {
		switch playerID {
		case team[0]:
			return team[1]
		case team[1]:
			return team[0]
		}
	}
	return ""
}

// Club is a venue matches and tournaments can belong to.
type Club struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// Tournament groups matches played at a club.
type Tournament struct {
	ID        string `json:"id"`
	ClubID    string `json:"club_id,omitempty"`
	Name      string `json:"name"`
	StartDate int64  `json:"start_date,omitempty"`
	EndDate   int64  `json:"end_date,omitempty"`
	CreatedAt int64  `json:"created_at"`
}
