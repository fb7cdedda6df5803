package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_matches_recorded_total",
			Help: "The total number of valid matches recorded.",
		}),
		MatchesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_matches_rejected_total",
			Help: "The total number of submitted matches rejected by validation.",
		}, []string{"reason"}),
		RatingUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_rating_updates_total",
			Help: "The total number of matches whose ratings were applied.",
		}),
		RatingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "padel_rating_update_duration_seconds",
			Help:    "The duration of applying the rating changes of one match.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ImportRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_import_runs_total",
			Help: "The total number of times the Playtomic import has run.",
		}),
		MatchesImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_matches_imported_total",
			Help: "The total number of matches imported from Playtomic.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesRecorded,
		s.MatchesRejected,
		s.RatingUpdates,
		s.RatingDuration,
		s.ImportRuns,
		s.MatchesImported,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncMatchesRejected(reason string) {
	s.MatchesRejected.WithLabelValues(reason).Inc()
}

func (s *Service) IncRatingUpdates() {
	s.RatingUpdates.Inc()
}

func (s *Service) ObserveRatingDuration(duration float64) {
	s.RatingDuration.Observe(duration)
}

func (s *Service) IncImportRuns() {
	s.ImportRuns.Inc()
}

func (s *Service) IncMatchesImported(n int) {
	s.MatchesImported.Add(float64(n))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
