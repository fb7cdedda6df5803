package processor

import (
	"errors"
	"sync"

	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/pubsub"
)

var (
	// ErrInvalidMatch is matched by every ValidationError.
	ErrInvalidMatch = errors.New("invalid match")
	// ErrUnknownPlayer is returned when a match references a player that does not exist.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrDuplicatePlayer is returned when a player slot is empty or a player appears twice.
	ErrDuplicatePlayer = errors.New("a match needs four different players")
)

// Processor records matches and keeps ratings up to date.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	engine   *elo.Engine

	// ratingMu serialises rating updates so that matches are rated against
	// the ratings left by the previous one.
	ratingMu sync.Mutex
}

// RecordRequest is a match as submitted by a player or an import.
type RecordRequest struct {
	Team1        [2]string         `json:"team1" validate:"dive,required"`
	Team2        [2]string         `json:"team2" validate:"dive,required"`
	Sets         []padel.SetScore  `json:"sets" validate:"required"`
	Config       padel.MatchConfig `json:"config"`
	ClubID       string            `json:"club_id,omitempty"`
	TournamentID string            `json:"tournament_id,omitempty"`
	ExternalID   string            `json:"external_id,omitempty"`
	PlayedAt     int64             `json:"played_at,omitempty" validate:"gte=0"`
	CreatedBy    string            `json:"created_by,omitempty"`
}

// ValidationError reports a match whose score breaks the rules.
type ValidationError struct {
	Result padel.ValidationResult
}

func (e *ValidationError) Error() string {
	return e.Result.Error
}

// Is makes every ValidationError match ErrInvalidMatch.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidMatch
}

// Unwrap exposes the rule that was broken, e.g. padel.ErrTooFewSets.
func (e *ValidationError) Unwrap() error {
	return e.Result.Reason
}

// ImportSummary counts what happened to the matches seen by an import run.
type ImportSummary struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Rejected int `json:"rejected"`
}
