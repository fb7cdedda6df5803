package playtomic

import (
	"fmt"
	"math"

	"github.com/mauv0809/padel-ledger/internal/padel"
)

const (
	// Playtomic levels run from 0 to 7.
	levelRatingBase = 1000
	levelRatingStep = 200
	// A deciding set scored above this many games must be a super tie-break.
	maxGamesInSet = 7
)

// IsRecordable reports whether the match was played and its result confirmed.
func (m *PadelMatch) IsRecordable() bool {
	return m.GameStatus == GameStatusPlayed && m.ResultsStatus == ResultsStatusConfirmed
}

// TeamPlayers returns the two teams of a doubles match. Every slot must hold a
// distinct player with a Playtomic account; guests have no user id.
func (m *PadelMatch) TeamPlayers() ([2][2]Player, error) {
	var teams [2][2]Player
	if len(m.Teams) != 2 {
		return teams, fmt.Errorf("%w: %d teams", ErrNotDoubles, len(m.Teams))
	}
	seen := make(map[string]bool, 4)
	for i, team := range m.Teams {
		if len(team.Players) != 2 {
			return teams, fmt.Errorf("%w: team %s has %d players", ErrNotDoubles, team.ID, len(team.Players))
		}
		for _, player := range team.Players {
			if player.UserID == "" {
				return teams, fmt.Errorf("%w: team %s has a player without an account", ErrNotDoubles, team.ID)
			}
			if seen[player.UserID] {
				return teams, fmt.Errorf("%w: player %s appears twice", ErrNotDoubles, player.UserID)
			}
			seen[player.UserID] = true
		}
		teams[i] = [2]Player{team.Players[0], team.Players[1]}
	}
	return teams, nil
}

// SetScores converts the reported results to set scores, the first team of the
// match being team 1. A third set with more than seven points for either side
// can only be a super tie-break, so the returned config enables it.
func (m *PadelMatch) SetScores() ([]padel.SetScore, padel.MatchConfig, error) {
	var cfg padel.MatchConfig
	if len(m.Teams) != 2 {
		return nil, cfg, fmt.Errorf("%w: %d teams", ErrNotDoubles, len(m.Teams))
	}
	team1, team2 := m.Teams[0].ID, m.Teams[1].ID

	sets := make([]padel.SetScore, 0, len(m.Results))
	for _, result := range m.Results {
		s1, ok1 := result.Scores[team1]
		s2, ok2 := result.Scores[team2]
		if !ok1 || !ok2 {
			return nil, cfg, fmt.Errorf("%w: %s", ErrMissingScores, result.Name)
		}
		sets = append(sets, padel.SetScore{Team1: s1, Team2: s2})
	}
	if len(sets) == 3 && max(sets[2].Team1, sets[2].Team2) > maxGamesInSet {
		cfg.SuperTiebreak = true
	}
	return padel.MarkTiebreaks(sets, cfg), cfg, nil
}

// CategoryForLevel maps a Playtomic level to the closest category.
func CategoryForLevel(level float64) padel.Category {
	return padel.CategoryForRating(int(math.Round(levelRatingBase + level*levelRatingStep)))
}
