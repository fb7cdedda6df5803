package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	matchesRecorded  int
	matchesRejected  map[string]int
	ratingUpdates    int
	ratingDurations  []float64
	importRuns       int
	matchesImported  int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		matchesRejected: make(map[string]int),
		ratingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncMatchesRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRejected[reason]++
}

func (m *Mock) IncRatingUpdates() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingUpdates++
}

func (m *Mock) ObserveRatingDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingDurations = append(m.ratingDurations, duration)
}

func (m *Mock) IncImportRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importRuns++
}

func (m *Mock) IncMatchesImported(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesImported += n
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// MatchesRejected returns how often IncMatchesRejected was called with reason.
func (m *Mock) MatchesRejected(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRejected[reason]
}

// RatingUpdates returns the number of times IncRatingUpdates was called.
func (m *Mock) RatingUpdates() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ratingUpdates
}

// ImportRuns returns the number of times IncImportRuns was called.
func (m *Mock) ImportRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.importRuns
}

// MatchesImported returns the sum passed to IncMatchesImported.
func (m *Mock) MatchesImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesImported
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
