package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/padel"
)

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

type categoryResponse struct {
	Category      padel.Category `json:"category"`
	InitialRating int            `json:"initial_rating"`
}

// CategoriesHandler lists the skill categories, weakest first, with the rating
// a new player in each starts with.
func CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := make([]categoryResponse, 0, len(padel.Categories))
		for _, c := range padel.Categories {
			rating, _ := padel.InitialRating(c)
			resp = append(resp, categoryResponse{Category: c, InitialRating: rating})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
