package notifier

import (
	"sync"

	"github.com/mauv0809/padel-ledger/internal/club"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendResultNotificationFunc       func(match *club.Match, players map[string]club.PlayerInfo, dryRun bool) error
	SendRankingsFunc                 func(rankings []club.PlayerStats, dryRun bool) error
	FormatRankingsResponseFunc       func(rankings []club.PlayerStats) (any, error)
	FormatPlayerStatsResponseFunc    func(stats *club.PlayerStats, query string) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)

	// Call records
	SendResultNotificationCalls []struct {
		Match   *club.Match
		Players map[string]club.PlayerInfo
		DryRun  bool
	}
	SendRankingsCalls [][]club.PlayerStats

	LastRankingsResponse       any
	LastPlayerStatsResponse    any
	LastPlayerNotFoundResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendRankingsCalls = nil
	m.LastRankingsResponse = nil
	m.LastPlayerStatsResponse = nil
	m.LastPlayerNotFoundResponse = nil
}

func (m *Mock) SendResultNotification(match *club.Match, players map[string]club.PlayerInfo, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct {
		Match   *club.Match
		Players map[string]club.PlayerInfo
		DryRun  bool
	}{match, players, dryRun})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, players, dryRun)
	}
	return nil
}

func (m *Mock) SendRankings(rankings []club.PlayerStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankingsCalls = append(m.SendRankingsCalls, rankings)
	if m.SendRankingsFunc != nil {
		return m.SendRankingsFunc(rankings, dryRun)
	}
	return nil
}

func (m *Mock) FormatRankingsResponse(rankings []club.PlayerStats) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"text": "rankings"}
	var err error
	if m.FormatRankingsResponseFunc != nil {
		resp, err = m.FormatRankingsResponseFunc(rankings)
	}
	m.LastRankingsResponse = resp
	return resp, err
}

func (m *Mock) FormatPlayerStatsResponse(stats *club.PlayerStats, query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"text": "stats for " + stats.PlayerName}
	var err error
	if m.FormatPlayerStatsResponseFunc != nil {
		resp, err = m.FormatPlayerStatsResponseFunc(stats, query)
	}
	m.LastPlayerStatsResponse = resp
	return resp, err
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"text": "not found: " + query}
	var err error
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err = m.FormatPlayerNotFoundResponseFunc(query)
	}
	m.LastPlayerNotFoundResponse = resp
	return resp, err
}

// ResultNotifications returns how many result notifications were sent.
func (m *Mock) ResultNotifications() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendResultNotificationCalls)
}
