package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/config"
	"github.com/mauv0809/padel-ledger/internal/playtomic"
	"github.com/mauv0809/padel-ledger/internal/processor"
)

type processResponse struct {
	Rated int `json:"rated"`
}

// ImportHandler imports the club's played Playtomic matches of the last ?days=N days.
func ImportHandler(proc *processor.Processor, cfg config.Config, playtomicClient playtomic.PlaytomicClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.TenantID == "" || playtomicClient == nil {
			writeError(w, http.StatusServiceUnavailable, "Playtomic import is not configured")
			return
		}
		isDryRun := IsDryRunFromContext(r)

		daysStr := r.URL.Query().Get("days")
		daysToSubtract := 1
		if daysStr != "" {
			parsedDays, err := strconv.Atoi(daysStr)
			if err == nil && parsedDays > 0 {
				daysToSubtract = parsedDays
				log.Info("Importing historical matches", "days", daysToSubtract)
			} else {
				log.Warn("Invalid 'days' parameter provided. Defaulting to 1.", "days_param", daysStr)
			}
		}
		since := time.Now().AddDate(0, 0, -daysToSubtract)

		log.Info("Starting Playtomic import...", "since", since)
		summary, err := proc.ImportPlaytomic(playtomicClient, cfg.TenantID, since, isDryRun)
		if err != nil {
			log.Error("Playtomic import failed", "error", err)
			http.Error(w, "Failed to import matches", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// ProcessMatchesHandler rates every match still waiting for a rating update.
func ProcessMatchesHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Starting match processing...")
		isDryRun := IsDryRunFromContext(r)

		rated, err := proc.ProcessPending(isDryRun)
		if err != nil {
			log.Error("Match processing failed", "error", err)
			http.Error(w, "Failed to process matches", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, processResponse{Rated: rated})
		log.Info("Match processing finished.")
	}
}
