package http

import (
	"net/http"

	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/config"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/notifier"
	"github.com/mauv0809/padel-ledger/internal/playtomic"
	"github.com/mauv0809/padel-ledger/internal/processor"
	"github.com/mauv0809/padel-ledger/internal/pubsub"
)

type Server struct {
	Store           club.ClubStore
	Metrics         metrics.Metrics
	MetricsHandler  http.Handler
	Cfg             config.Config
	PlaytomicClient playtomic.PlaytomicClient
	Notifier        notifier.Notifier
	Processor       *processor.Processor
	Router          *http.ServeMux
	pubsub          pubsub.PubSubClient
}
