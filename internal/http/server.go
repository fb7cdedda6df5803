package http

import (
	"net/http"

	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/config"
	"github.com/mauv0809/padel-ledger/internal/http/handlers"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/notifier"
	"github.com/mauv0809/padel-ledger/internal/playtomic"
	"github.com/mauv0809/padel-ledger/internal/processor"
	"github.com/mauv0809/padel-ledger/internal/pubsub"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, playtomicClient playtomic.PlaytomicClient, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:           store,
		Metrics:         metricsSvc,
		MetricsHandler:  metricsHandler,
		Cfg:             cfg,
		PlaytomicClient: playtomicClient,
		Notifier:        notifier,
		Processor:       processor,
		Router:          http.NewServeMux(),
		pubsub:          pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(handler, paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /categories", Chain(handlers.CategoriesHandler(), paramsMiddleware))
	s.Router.Handle("POST /validate", Chain(handlers.ValidateHandler(s.Processor), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(handlers.CreatePlayerHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(handlers.GetPlayerHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /players/{id}/partners", Chain(handlers.PartnersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /players/{id}/head-to-head/{opponentID}", Chain(handlers.HeadToHeadHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /rankings", Chain(handlers.RankingsHandler(s.Store), paramsMiddleware))

	s.Router.Handle("GET /matches", Chain(handlers.ListMatchesHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /matches", Chain(handlers.RecordMatchHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("GET /matches/{id}", Chain(handlers.GetMatchHandler(s.Store), paramsMiddleware))

	s.Router.Handle("GET /clubs", Chain(handlers.ListClubsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /clubs", Chain(handlers.CreateClubHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /tournaments", Chain(handlers.ListTournamentsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /tournaments", Chain(handlers.CreateTournamentHandler(s.Store), paramsMiddleware))

	s.Router.Handle("POST /import", Chain(handlers.ImportHandler(s.Processor, s.Cfg, s.PlaytomicClient), paramsMiddleware))
	s.Router.Handle("POST /process", Chain(handlers.ProcessMatchesHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /pubsub/update-ratings", Chain(handlers.UpdateRatingsHandler(s.Processor, s.pubsub), paramsMiddleware))

	verifySlack := slackVerifier(s.Cfg.Slack.SigningSecret)
	s.Router.Handle("POST /slack/command/rankings", Chain(handlers.RankingsCommandHandler(s.Store, s.Notifier), paramsMiddleware, verifySlack))
	s.Router.Handle("POST /slack/command/player-stats", Chain(handlers.PlayerStatsCommandHandler(s.Store, s.Notifier), paramsMiddleware, verifySlack))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
