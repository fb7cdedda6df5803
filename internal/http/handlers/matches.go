package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/processor"
)

type validateRequest struct {
	Sets   []padel.SetScore  `json:"sets" validate:"required"`
	Config padel.MatchConfig `json:"config"`
}

type validateResponse struct {
	padel.ValidationResult
	Winner padel.Team   `json:"winner,omitempty"`
	Tally  *padel.Tally `json:"tally,omitempty"`
}

// ValidateHandler checks a score against the match rules without storing anything.
// A score that breaks the rules is still a 200 with valid set to false.
func ValidateHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		result := proc.Validate(req.Sets, req.Config)
		resp := validateResponse{ValidationResult: result}
		if result.Valid {
			tally := padel.TallyMatch(req.Sets, req.Config)
			resp.Winner = result.Winner()
			resp.Tally = &tally
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RecordMatchHandler validates and stores a match. Ratings are updated
// asynchronously when Pub/Sub is configured.
func RecordMatchHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processor.RecordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		isDryRun := IsDryRunFromContext(r)
		match, err := proc.RecordMatch(req, isDryRun)
		if err != nil {
			writeStoreError(w, err, "record match")
			return
		}
		status := http.StatusCreated
		if isDryRun {
			status = http.StatusOK
		}
		writeJSON(w, status, match)
	}
}

func ListMatchesHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			matches []*club.Match
			err     error
		)
		if playerID := r.URL.Query().Get("player"); playerID != "" {
			matches, err = store.GetMatchesForPlayer(playerID)
		} else {
			matches, err = store.GetAllMatches()
		}
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		if matches == nil {
			matches = []*club.Match{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func GetMatchHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := store.GetMatch(r.PathValue("id"))
		if err != nil {
			writeStoreError(w, err, "get match")
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}
