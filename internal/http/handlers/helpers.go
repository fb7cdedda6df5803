package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/processor"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// errorResponse is the body of every JSON error.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads the request body into dst and runs the struct validation tags.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(dst); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			return fmt.Errorf("invalid field %s: failed on '%s'", vErrs[0].Namespace(), vErrs[0].Tag())
		}
		return err
	}
	return nil
}

// writeStoreError maps errors from the store and processor to a status code.
func writeStoreError(w http.ResponseWriter, err error, what string) {
	var vErr *processor.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, vErr.Result)
	case errors.Is(err, club.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, processor.ErrUnknownPlayer),
		errors.Is(err, processor.ErrDuplicatePlayer),
		errors.Is(err, padel.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error("Request failed", "what", what, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to "+what)
	}
}
