package playtomic

import (
	"fmt"
	"sort"
	"sync"
)

// MockClient is an in-memory PlaytomicClient. Matches added with AddMatch are
// returned by both the search and the detail call unless the Funcs override them.
// It is safe for concurrent use, since the importer fetches details in parallel.
type MockClient struct {
	mu      sync.Mutex
	matches map[string]PadelMatch

	GetMatchesFunc       func(params *SearchMatchesParams) ([]MatchSummary, error)
	GetSpecificMatchFunc func(matchID string) (PadelMatch, error)

	GetMatchesCalls       []*SearchMatchesParams
	GetSpecificMatchCalls []string
}

var _ PlaytomicClient = &MockClient{}

func NewMockClient() *MockClient {
	return &MockClient{matches: make(map[string]PadelMatch)}
}

// AddMatch registers a match fixture.
func (m *MockClient) AddMatch(match PadelMatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[match.MatchID] = match
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMatchesCalls = nil
	m.GetSpecificMatchCalls = nil
}

func (m *MockClient) GetMatches(params *SearchMatchesParams) ([]MatchSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMatchesCalls = append(m.GetMatchesCalls, params)
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(params)
	}

	summaries := make([]MatchSummary, 0, len(m.matches))
	for id, match := range m.matches {
		owner := match.OwnerID
		summaries = append(summaries, MatchSummary{MatchID: id, OwnerID: &owner})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].MatchID < summaries[j].MatchID })
	return summaries, nil
}

func (m *MockClient) GetSpecificMatch(matchID string) (PadelMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetSpecificMatchCalls = append(m.GetSpecificMatchCalls, matchID)
	if m.GetSpecificMatchFunc != nil {
		return m.GetSpecificMatchFunc(matchID)
	}
	match, ok := m.matches[matchID]
	if !ok {
		return PadelMatch{}, fmt.Errorf("match %s not found", matchID)
	}
	return match, nil
}

// FetchedMatches returns how many match details were requested.
func (m *MockClient) FetchedMatches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GetSpecificMatchCalls)
}
