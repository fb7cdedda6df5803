package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncMatchesRejected(reason string)
	IncRatingUpdates()
	ObserveRatingDuration(duration float64)
	IncImportRuns()
	IncMatchesImported(n int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
