package padel

// Team identifies one side of a padel match.
type Team int

const (
	// NoTeam means no side has won (yet).
	NoTeam Team = 0
	Team1  Team = 1
	Team2  Team = 2
)

// Opponent returns the other side. NoTeam has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case Team1:
		return Team2
	case Team2:
		return Team1
	default:
		return NoTeam
	}
}

// SetScore is one played set. Scores are games, or points for a super tie-break.
type SetScore struct {
	Team1      int  `json:"team1" msgpack:"team1"`
	Team2      int  `json:"team2" msgpack:"team2"`
	IsTiebreak bool `json:"isTiebreak,omitempty" msgpack:"is_tiebreak"`
}

// MatchConfig holds the per-match rule toggles.
type MatchConfig struct {
	// GoldenPoint only affects live scoring and is not validated.
	GoldenPoint bool `json:"goldenPoint" msgpack:"golden_point"`
	// SuperTiebreak scores the third set as a super tie-break to 10 points.
	SuperTiebreak bool `json:"superTiebreak" msgpack:"super_tiebreak"`
}

// ValidationResult is the outcome of ValidateMatch. Error holds a human-readable
// message when Valid is false, and Reason the matching sentinel error.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Reason error  `json:"-"`

	winner Team
}

// Winner returns the side that won a valid match, or NoTeam.
func (r ValidationResult) Winner() Team {
	if !r.Valid {
		return NoTeam
	}
	return r.winner
}

// Err returns Reason, or nil for a valid match.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.Reason
}
