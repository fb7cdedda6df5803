package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
)

type createClubRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	City string `json:"city" validate:"max=100"`
}

type createTournamentRequest struct {
	ClubID    string `json:"club_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=100"`
	StartDate int64  `json:"start_date" validate:"gte=0"`
	EndDate   int64  `json:"end_date" validate:"omitempty,gtefield=StartDate"`
}

func ListClubsHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubs, err := store.GetClubs()
		if err != nil {
			http.Error(w, "Failed to get clubs", http.StatusInternalServerError)
			log.Error("Failed to get clubs from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, clubs)
	}
}

func CreateClubHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClubRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would create club", "name", req.Name)
			writeJSON(w, http.StatusOK, club.Club{Name: req.Name, City: req.City})
			return
		}
		c, err := store.CreateClub(req.Name, req.City)
		if err != nil {
			writeStoreError(w, err, "create club")
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// ListTournamentsHandler lists tournaments, optionally only those of ?club=<id>.
func ListTournamentsHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := store.GetTournaments(r.URL.Query().Get("club"))
		if err != nil {
			http.Error(w, "Failed to get tournaments", http.StatusInternalServerError)
			log.Error("Failed to get tournaments from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, tournaments)
	}
}

func CreateTournamentHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTournamentRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would create tournament", "name", req.Name, "clubID", req.ClubID)
			writeJSON(w, http.StatusOK, club.Tournament{ClubID: req.ClubID, Name: req.Name, StartDate: req.StartDate, EndDate: req.EndDate})
			return
		}
		t, err := store.CreateTournament(req.ClubID, req.Name, req.StartDate, req.EndDate)
		if err != nil {
			writeStoreError(w, err, "create tournament")
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}
