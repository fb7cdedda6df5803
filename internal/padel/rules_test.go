package padel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidSetScore(t *testing.T) {
	tests := []struct {
		name          string
		team1, team2  int
		superTiebreak bool
		want          bool
	}{
		{"clean win", 6, 0, false, true},
		{"clean win by two", 6, 4, false, true},
		{"six five must continue", 6, 5, false, false},
		{"seven five", 7, 5, false, true},
		{"seven six tiebreak", 7, 6, false, true},
		{"seven four unreachable", 7, 4, false, false},
		{"eight six too many games", 8, 6, false, false},
		{"in progress", 3, 2, false, true},
		{"six all is not terminal", 6, 6, false, false},
		{"mirrored seven five", 5, 7, false, true},
		{"mirrored six five", 5, 6, false, false},
		{"negative", -1, 3, false, false},
		{"super tiebreak ten eight", 10, 8, true, true},
		{"super tiebreak ten nine", 10, 9, true, false},
		{"super tiebreak nine nine in progress", 9, 9, true, true},
		{"super tiebreak eleven nine", 11, 9, true, false},
		{"super tiebreak twelve ten capped", 12, 10, true, false},
		{"super tiebreak ten all", 10, 10, true, false},
		{"super tiebreak mirrored", 3, 10, true, true},
		{"super tiebreak negative", 10, -1, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSetScore(tt.team1, tt.team2, tt.superTiebreak))
		})
	}
}

func TestGetSetWinner(t *testing.T) {
	tests := []struct {
		name          string
		team1, team2  int
		superTiebreak bool
		want          Team
	}{
		{"seven five", 7, 5, false, Team1},
		{"six all", 6, 6, false, NoTeam},
		{"six four", 6, 4, false, Team1},
		{"four six", 4, 6, false, Team2},
		{"six seven", 6, 7, false, Team2},
		{"in progress", 5, 5, false, NoTeam},
		{"invalid fails closed", 8, 6, false, NoTeam},
		{"super tiebreak team1", 10, 8, true, Team1},
		{"super tiebreak team2", 2, 10, true, Team2},
		{"super tiebreak in progress", 9, 9, true, NoTeam},
		{"super tiebreak invalid", 10, 9, true, NoTeam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSetWinner(tt.team1, tt.team2, tt.superTiebreak))
		})
	}
}

func TestGetSetWinner_NoWinnerForInvalidScores(t *testing.T) {
	for team1 := -1; team1 <= 12; team1++ {
		for team2 := -1; team2 <= 12; team2++ {
			for _, superTiebreak := range []bool{false, true} {
				if !IsValidSetScore(team1, team2, superTiebreak) {
					assert.Equal(t, NoTeam, GetSetWinner(team1, team2, superTiebreak), "%d-%d super=%v", team1, team2, superTiebreak)
				}
			}
		}
	}
}

func TestCanPlayThirdSet(t *testing.T) {
	assert.True(t, CanPlayThirdSet([]SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}}))
	assert.False(t, CanPlayThirdSet([]SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 3}}), "team1 already won both")
	assert.False(t, CanPlayThirdSet([]SetScore{{Team1: 6, Team2: 4}, {Team1: 5, Team2: 5}}), "second set unfinished")
	assert.False(t, CanPlayThirdSet([]SetScore{{Team1: 6, Team2: 4}}), "fewer than two sets")
	assert.False(t, CanPlayThirdSet(nil))
}

func TestValidateMatch(t *testing.T) {
	tests := []struct {
		name       string
		sets       []SetScore
		cfg        MatchConfig
		wantValid  bool
		wantReason error
		wantWinner Team
		wantError  string
	}{
		{
			name:       "two nil",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 3}},
			wantValid:  true,
			wantWinner: Team1,
		},
		{
			name:       "split with super tiebreak",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}, {Team1: 10, Team2: 8}},
			cfg:        MatchConfig{SuperTiebreak: true},
			wantValid:  true,
			wantWinner: Team1,
		},
		{
			name:       "phantom third set after two nil",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 6, Team2: 3}, {Team1: 10, Team2: 8}},
			cfg:        MatchConfig{SuperTiebreak: true},
			wantReason: ErrIllegalThirdSet,
		},
		{
			name:       "single set",
			sets:       []SetScore{{Team1: 6, Team2: 4}},
			wantReason: ErrTooFewSets,
			wantError:  "A match must have at least 2 sets",
		},
		{
			name:       "split without decider",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}},
			wantReason: ErrNoDecisiveWinner,
		},
		{
			name:       "team2 wins full third set",
			sets:       []SetScore{{Team1: 7, Team2: 6}, {Team1: 3, Team2: 6}, {Team1: 5, Team2: 7}},
			wantValid:  true,
			wantWinner: Team2,
		},
		{
			name:       "invalid second set is labelled",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 8, Team2: 6}},
			wantReason: ErrInvalidSetScore,
			wantError:  "Set 2: invalid score 8-6",
		},
		{
			name:       "invalid super tiebreak is labelled",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}, {Team1: 10, Team2: 9}},
			cfg:        MatchConfig{SuperTiebreak: true},
			wantReason: ErrInvalidSetScore,
			wantError:  "Super Tiebreak: invalid score 10-9",
		},
		{
			name:       "super tiebreak score in a normal third set",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}, {Team1: 10, Team2: 8}},
			wantReason: ErrInvalidSetScore,
			wantError:  "Set 3: invalid score 10-8",
		},
		{
			name:       "unfinished decider",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}, {Team1: 9, Team2: 9}},
			cfg:        MatchConfig{SuperTiebreak: true},
			wantReason: ErrNoDecisiveWinner,
		},
		{
			name:       "four sets",
			sets:       []SetScore{{Team1: 6, Team2: 4}, {Team1: 4, Team2: 6}, {Team1: 6, Team2: 4}, {Team1: 6, Team2: 4}},
			wantReason: ErrTooManySets,
		},
		{
			name:       "golden point does not affect validation",
			sets:       []SetScore{{Team1: 2, Team2: 6}, {Team1: 4, Team2: 6}},
			cfg:        MatchConfig{GoldenPoint: true},
			wantValid:  true,
			wantWinner: Team2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMatch(tt.sets, tt.cfg)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantWinner, result.Winner())
			if tt.wantValid {
				assert.Empty(t, result.Error)
				assert.NoError(t, result.Err())
				return
			}
			assert.NotEmpty(t, result.Error)
			assert.ErrorIs(t, result.Err(), tt.wantReason)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, result.Error)
			}
		})
	}
}

func TestValidateMatch_AlternatingSetsWithDecider(t *testing.T) {
	// Every pair of terminal sets with alternating winners plus a decisive
	// super tie-break forms a valid match.
	var team1Wins, team2Wins []SetScore
	for a := 0; a <= 7; a++ {
		for b := 0; b <= 7; b++ {
			switch GetSetWinner(a, b, false) {
			case Team1:
				team1Wins = append(team1Wins, SetScore{Team1: a, Team2: b})
			case Team2:
				team2Wins = append(team2Wins, SetScore{Team1: a, Team2: b})
			}
		}
	}
	require.NotEmpty(t, team1Wins)
	require.NotEmpty(t, team2Wins)

	cfg := MatchConfig{SuperTiebreak: true}
	for _, first := range team1Wins {
		for _, second := range team2Wins {
			sets := []SetScore{first, second, {Team1: 4, Team2: 10}}
			result := ValidateMatch(sets, cfg)
			require.True(t, result.Valid, "sets %v: %s", sets, result.Error)
			assert.Equal(t, Team2, result.Winner())
		}
	}
}

func TestTallyMatch(t *testing.T) {
	sets := []SetScore{{Team1: 6, Team2: 4}, {Team1: 3, Team2: 6}, {Team1: 10, Team2: 7}}
	tally := TallyMatch(sets, MatchConfig{SuperTiebreak: true})

	assert.Equal(t, 2, tally.Sets(Team1))
	assert.Equal(t, 1, tally.Sets(Team2))
	assert.Equal(t, 9, tally.Games(Team1), "super tie-break points are not games")
	assert.Equal(t, 10, tally.Games(Team2))
	assert.Equal(t, 0, tally.Sets(NoTeam))
}

func TestMarkTiebreaks(t *testing.T) {
	sets := []SetScore{{Team1: 6, Team2: 4}, {Team1: 3, Team2: 6}, {Team1: 10, Team2: 7}}

	marked := MarkTiebreaks(sets, MatchConfig{SuperTiebreak: true})
	assert.False(t, marked[0].IsTiebreak)
	assert.False(t, marked[1].IsTiebreak)
	assert.True(t, marked[2].IsTiebreak)
	assert.False(t, sets[2].IsTiebreak, "input is not modified")

	plain := MarkTiebreaks(sets, MatchConfig{})
	assert.False(t, plain[2].IsTiebreak)
}

func TestTeamOpponent(t *testing.T) {
	assert.Equal(t, Team2, Team1.Opponent())
	assert.Equal(t, Team1, Team2.Opponent())
	assert.Equal(t, NoTeam, NoTeam.Opponent())
}
