package playtomic

import "errors"

var (
	// ErrNotDoubles is returned for matches without exactly two teams of two.
	ErrNotDoubles = errors.New("not a doubles match")
	// ErrMissingScores is returned when a set lacks a score for one of the teams.
	ErrMissingScores = errors.New("set is missing a team score")
)

// SearchMatchesParams defines the parameters for searching for matches.
type SearchMatchesParams struct {
	SportID       string
	HasPlayers    bool
	Sort          string
	TenantIDs     []string
	FromStartDate string
}

// MatchSummary contains the essential details of a match from a search result.
type MatchSummary struct {
	MatchID string
	OwnerID *string
}

// PadelMatch represents a single Playtomic match with the details needed to record it.
type PadelMatch struct {
	MatchID         string
	OwnerID         string
	Start           int64
	End             int64
	GameStatus      GameStatus
	Teams           []Team
	Results         []SetResult
	ResultsStatus   ResultsStatus
	ResourceName    string
	Tenant          Tenant
	CompetitionType CompetitionType
}

// CompetitionType defines the type of match.
type CompetitionType string

const (
	Competition CompetitionType = "COMPETITIVE"
	Practice    CompetitionType = "FRIENDLY"
)

// GameStatus defines the status of a game.
type GameStatus string

const (
	GameStatusPending    GameStatus = "PENDING"
	GameStatusPlayed     GameStatus = "PLAYED"
	GameStatusUnknown    GameStatus = "UNKNOWN"
	GameStatusCanceled   GameStatus = "CANCELED"
	GameStatusWaitingFor GameStatus = "WAITING_FOR"
	GameStatusExpired    GameStatus = "EXPIRED"
	GameStatusInProgress GameStatus = "IN_PROGRESS"
)

// ResultsStatus defines the status of the match results.
type ResultsStatus string

const (
	ResultsStatusPending    ResultsStatus = "PENDING"
	ResultsStatusConfirmed  ResultsStatus = "CONFIRMED"
	ResultsStatusInvalid    ResultsStatus = "INVALID"
	ResultsStatusNotAllowed ResultsStatus = "NOT_ALLOWED"
	ResultsStatusExpired    ResultsStatus = "EXPIRED"
	ResultsStatusCanceled   ResultsStatus = "CANCELED"
	ResultsStatusWaitingFor ResultsStatus = "WAITING_FOR"
	ResultsStatusValidating ResultsStatus = "VALIDATING"
)

// Team represents a team in a match.
type Team struct {
	ID         string
	Players    []Player
	TeamResult string
}

// Player represents a player in a match.
type Player struct {
	UserID string
	Name   string
	Level  float64
}

// SetResult represents the result of a single set, keyed by team id.
type SetResult struct {
	Name   string
	Scores map[string]int
}

// Tenant represents a Playtomic tenant (club).
type Tenant struct {
	ID   string
	Name string
}

// playtomicMatchResponse defines the structure for the JSON response from the Playtomic API for a single match.
type playtomicMatchResponse struct {
	OwnerID         string                  `json:"owner_id"`
	StartDate       string                  `json:"start_date"`
	EndDate         string                  `json:"end_date"`
	GameStatus      string                  `json:"game_status"`
	Teams           []playtomicTeamResponse `json:"teams"`
	Results         []playtomicResult       `json:"results"`
	ResultsStatus   string                  `json:"results_status"`
	ResourceName    string                  `json:"resource_name"`
	Tenant          playtomicTenant         `json:"tenant"`
	CompetitionType string                  `json:"competition_mode"`
}

// playtomicResult defines a set result.
type playtomicResult struct {
	Name   string               `json:"name"`
	Scores []playtomicTeamScore `json:"scores"`
}

// playtomicTeamScore defines the score for a team in a set.
type playtomicTeamScore struct {
	TeamID string `json:"team_id"`
	Score  int    `json:"score"`
}

// playtomicTenant defines the structure for the tenant information in the response.
type playtomicTenant struct {
	ID   string `json:"tenant_id"`
	Name string `json:"tenant_name"`
}

// playtomicTeamResponse defines the structure for a team within the match response.
type playtomicTeamResponse struct {
	TeamID     string                    `json:"team_id"`
	Players    []playtomicPlayerResponse `json:"players"`
	TeamResult *string                   `json:"team_result"`
}

// playtomicPlayerResponse defines the structure for a player within a team.
type playtomicPlayerResponse struct {
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	LevelValue *float64 `json:"level_value"`
}
