package padel

import (
	"errors"
	"fmt"
)

const (
	gamesToWin    = 6
	maxSetGames   = 7
	tiebreakPoint = 10
	minSets       = 2
	maxSets       = 3
	decidingSet   = 2
)

var (
	ErrTooFewSets        = errors.New("too few sets")
	ErrTooManySets       = errors.New("too many sets")
	ErrInvalidSetScore   = errors.New("invalid set score")
	ErrNoDecisiveWinner  = errors.New("no decisive winner")
	ErrIllegalThirdSet   = errors.New("illegal third set")
	ErrUndecidedThirdSet = errors.New("undecided third set")
)

// IsValidSetScore reports whether team1-team2 is a reachable score for a set.
// Sets still in progress are valid too; use GetSetWinner to check completion.
func IsValidSetScore(team1, team2 int, superTiebreak bool) bool {
	if team1 < 0 || team2 < 0 {
		return false
	}

	if superTiebreak {
		if team1 > tiebreakPoint || team2 > tiebreakPoint {
			return false
		}
		// 10-9 is not terminal under win-by-2 and extended play is not modelled.
		if team1 == tiebreakPoint {
			return team2 <= tiebreakPoint-2
		}
		if team2 == tiebreakPoint {
			return team1 <= tiebreakPoint-2
		}
		return true
	}

	if team1 > maxSetGames || team2 > maxSetGames {
		return false
	}
	if team1 == maxSetGames {
		return team2 == gamesToWin-1 || team2 == gamesToWin
	}
	if team2 == maxSetGames {
		return team1 == gamesToWin-1 || team1 == gamesToWin
	}
	if team1 == gamesToWin {
		return team2 <= gamesToWin-2
	}
	if team2 == gamesToWin {
		return team1 <= gamesToWin-2
	}
	return true
}

// GetSetWinner returns the side that won the set, or NoTeam when the set is
// still in progress or the score is invalid.
func GetSetWinner(team1, team2 int, superTiebreak bool) Team {
	if !IsValidSetScore(team1, team2, superTiebreak) {
		return NoTeam
	}

	if superTiebreak {
		switch {
		case team1 == tiebreakPoint:
			return Team1
		case team2 == tiebreakPoint:
			return Team2
		}
		return NoTeam
	}

	switch {
	case team1 == maxSetGames, team1 == gamesToWin && team2 <= gamesToWin-2:
		return Team1
	case team2 == maxSetGames, team2 == gamesToWin && team1 <= gamesToWin-2:
		return Team2
	}
	return NoTeam
}

// CanPlayThirdSet reports whether the first two sets were split one each, which
// is the only case where a deciding set may be played. Only sets[0] and sets[1]
// are inspected; fewer than two sets is never eligible.
func CanPlayThirdSet(sets []SetScore) bool {
	if len(sets) < minSets {
		return false
	}
	first := GetSetWinner(sets[0].Team1, sets[0].Team2, false)
	second := GetSetWinner(sets[1].Team1, sets[1].Team2, false)
	if first == NoTeam || second == NoTeam {
		return false
	}
	return first != second
}

// IsSuperTiebreakSet reports whether the set at index is played as a super tie-break.
func IsSuperTiebreakSet(index int, cfg MatchConfig) bool {
	return cfg.SuperTiebreak && index == decidingSet
}

// SetLabel names the set at index the way players refer to it.
func SetLabel(index int, cfg MatchConfig) string {
	if IsSuperTiebreakSet(index, cfg) {
		return "Super Tiebreak"
	}
	return fmt.Sprintf("Set %d", index+1)
}

// ValidateMatch checks a complete match. Checks run in order and the first
// failure is reported; the function never panics on well-typed input.
func ValidateMatch(sets []SetScore, cfg MatchConfig) ValidationResult {
	if len(sets) < minSets {
		return invalid(ErrTooFewSets, "A match must have at least 2 sets")
	}
	if len(sets) > maxSets {
		return invalid(ErrTooManySets, "A match cannot have more than 3 sets")
	}

	for i, set := range sets {
		if !IsValidSetScore(set.Team1, set.Team2, IsSuperTiebreakSet(i, cfg)) {
			return invalid(ErrInvalidSetScore, fmt.Sprintf("%s: invalid score %d-%d", SetLabel(i, cfg), set.Team1, set.Team2))
		}
	}

	team1Sets, team2Sets := countSets(sets, cfg)
	if team1Sets < minSets && team2Sets < minSets {
		return invalid(ErrNoDecisiveWinner, "No team has won 2 sets")
	}

	switch len(sets) {
	case maxSets:
		if !CanPlayThirdSet(sets[:minSets]) {
			return invalid(ErrIllegalThirdSet, "A third set can only be played when the first two sets are split")
		}
		third := sets[decidingSet]
		// Unreachable after the checks above; guards a future reordering.
		if GetSetWinner(third.Team1, third.Team2, IsSuperTiebreakSet(decidingSet, cfg)) == NoTeam {
			return invalid(ErrUndecidedThirdSet, fmt.Sprintf("%s has no winner", SetLabel(decidingSet, cfg)))
		}
	case minSets:
		if team1Sets != minSets && team2Sets != minSets {
			return invalid(ErrNoDecisiveWinner, "With 2 sets, one team must win both")
		}
	}

	winner := Team1
	if team2Sets > team1Sets {
		winner = Team2
	}
	return ValidationResult{Valid: true, winner: winner}
}

// MarkTiebreaks returns a copy of sets with IsTiebreak set from cfg.
func MarkTiebreaks(sets []SetScore, cfg MatchConfig) []SetScore {
	out := make([]SetScore, len(sets))
	for i, set := range sets {
		set.IsTiebreak = IsSuperTiebreakSet(i, cfg)
		out[i] = set
	}
	return out
}

// Tally sums sets and games won per side. Super tie-break points are not games.
type Tally struct {
	Team1Sets  int `json:"team1_sets"`
	Team2Sets  int `json:"team2_sets"`
	Team1Games int `json:"team1_games"`
	Team2Games int `json:"team2_games"`
}

// Sets returns the sets won by the given side.
func (t Tally) Sets(team Team) int {
	switch team {
	case Team1:
		return t.Team1Sets
	case Team2:
		return t.Team2Sets
	}
	return 0
}

// Games returns the games won by the given side.
func (t Tally) Games(team Team) int {
	switch team {
	case Team1:
		return t.Team1Games
	case Team2:
		return t.Team2Games
	}
	return 0
}

// TallyMatch counts sets and games for a match.
func TallyMatch(sets []SetScore, cfg MatchConfig) Tally {
	var t Tally
	t.Team1Sets, t.Team2Sets = countSets(sets, cfg)
	for i, set := range sets {
		if IsSuperTiebreakSet(i, cfg) {
			continue
		}
		t.Team1Games += set.Team1
		t.Team2Games += set.Team2
	}
	return t
}

func countSets(sets []SetScore, cfg MatchConfig) (team1, team2 int) {
	for i, set := range sets {
		switch GetSetWinner(set.Team1, set.Team2, IsSuperTiebreakSet(i, cfg)) {
		case Team1:
			team1++
		case Team2:
			team2++
		}
	}
	return team1, team2
}

func invalid(reason error, msg string) ValidationResult {
	return ValidationResult{Valid: false, Error: msg, Reason: reason}
}
