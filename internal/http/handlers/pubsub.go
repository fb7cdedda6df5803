package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/processor"
	"github.com/mauv0809/padel-ledger/internal/pubsub"
)

// pushMessage is the body Pub/Sub posts to a push subscription endpoint.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"`
	} `json:"message"`
}

// UpdateRatingsHandler receives update-ratings events pushed by Pub/Sub and
// rates the referenced match. A match that no longer exists is acknowledged so
// that Pub/Sub stops redelivering it.
func UpdateRatingsHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received update ratings message", "body", string(bodyBytes))

		var pubsubMsg pushMessage
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var event pubsub.MatchEvent
		if err := decodeEvent(pubsubClient, rawData, &event); err != nil || event.MatchID == "" {
			log.Error("Failed to decode match event", "error", err)
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		isDryRun := IsDryRunFromContext(r) || event.DryRun
		if err := proc.ApplyRatingsByID(event.MatchID, isDryRun); err != nil {
			if errors.Is(err, club.ErrNotFound) {
				log.Warn("Dropping rating update for unknown match", "matchID", event.MatchID)
				w.Write([]byte("OK"))
				return
			}
			log.Error("Failed to apply ratings", "error", err, "matchID", event.MatchID)
			http.Error(w, "Failed to apply ratings", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func decodeEvent(pubsubClient pubsub.PubSubClient, data []byte, event *pubsub.MatchEvent) error {
	if pubsubClient != nil {
		return pubsubClient.ProcessMessage(data, event)
	}
	return pubsub.Decode(data, event)
}
