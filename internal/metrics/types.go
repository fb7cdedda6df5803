package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesRecorded    prometheus.Counter
	MatchesRejected    *prometheus.CounterVec
	RatingUpdates      prometheus.Counter
	RatingDuration     prometheus.Histogram
	ImportRuns         prometheus.Counter
	MatchesImported    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
