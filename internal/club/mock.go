package club

import (
	"sync"

	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/padel"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc               func(name string, category padel.Category, isGhost bool, createdBy string) (*PlayerInfo, error)
	UpsertPlayersFunc           func(players []PlayerInfo) error
	GetPlayerFunc               func(playerID string) (*PlayerInfo, error)
	GetPlayersFunc              func(playerIDs []string) ([]PlayerInfo, error)
	GetAllPlayersFunc           func() ([]PlayerInfo, error)
	IsKnownPlayerFunc           func(playerID string) bool
	GetPlayerStatsByNameFunc    func(playerName string) (*PlayerStats, error)
	GetRankingsFunc             func(limit int) ([]PlayerStats, error)
	InsertMatchFunc             func(match *Match) error
	GetMatchFunc                func(matchID string) (*Match, error)
	GetAllMatchesFunc           func() ([]*Match, error)
	GetMatchesForPlayerFunc     func(playerID string) ([]*Match, error)
	GetMatchesForProcessingFunc func() ([]*Match, error)
	HasExternalMatchFunc        func(externalID string) bool
	ApplyMatchResultFunc        func(match *Match, changes elo.EloChanges) error
	CreateClubFunc              func(name, city string) (*Club, error)
	GetClubsFunc                func() ([]Club, error)
	CreateTournamentFunc        func(clubID, name string, startDate, endDate int64) (*Tournament, error)
	GetTournamentsFunc          func(clubID string) ([]Tournament, error)

	// Call records
	AddPlayerCalls        []PlayerInfo
	UpsertPlayersCalls    [][]PlayerInfo
	GetPlayersCalls       [][]string
	InsertMatchCalls      []*Match
	ApplyMatchResultCalls []struct {
		Match   *Match
		Changes elo.EloChanges
	}
	GetPlayerStatsByNameCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.UpsertPlayersCalls = nil
	m.GetPlayersCalls = nil
	m.InsertMatchCalls = nil
	m.ApplyMatchResultCalls = nil
	m.GetPlayerStatsByNameCalls = nil
}

func (m *MockStore) AddPlayer(name string, category padel.Category, isGhost bool, createdBy string) (*PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, PlayerInfo{Name: name, Category: category, IsGhost: isGhost, CreatedBy: createdBy})
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(name, category, isGhost, createdBy)
	}
	return &PlayerInfo{Name: name, Category: category, IsGhost: isGhost, CreatedBy: createdBy}, nil
}

func (m *MockStore) UpsertPlayers(players []PlayerInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (*PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetPlayers(playerIDs []string) ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls = append(m.GetPlayersCalls, playerIDs)
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(playerIDs)
	}
	return []PlayerInfo{}, nil
}

func (m *MockStore) GetAllPlayers() ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return []PlayerInfo{}, nil
}

func (m *MockStore) IsKnownPlayer(playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(playerID)
	}
	return false
}

func (m *MockStore) GetPlayerStatsByName(playerName string) (*PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatsByNameCalls = append(m.GetPlayerStatsByNameCalls, playerName)
	if m.GetPlayerStatsByNameFunc != nil {
		return m.GetPlayerStatsByNameFunc(playerName)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetRankings(limit int) ([]PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRankingsFunc != nil {
		return m.GetRankingsFunc(limit)
	}
	return []PlayerStats{}, nil
}

func (m *MockStore) InsertMatch(match *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertMatchCalls = append(m.InsertMatchCalls, match)
	if m.InsertMatchFunc != nil {
		return m.InsertMatchFunc(match)
	}
	if match.ProcessingStatus == "" {
		match.ProcessingStatus = StatusNew
	}
	return nil
}

func (m *MockStore) GetMatch(matchID string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAllMatches() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return []*Match{}, nil
}

func (m *MockStore) GetMatchesForPlayer(playerID string) ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchesForPlayerFunc != nil {
		return m.GetMatchesForPlayerFunc(playerID)
	}
	return []*Match{}, nil
}

func (m *MockStore) GetMatchesForProcessing() ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchesForProcessingFunc != nil {
		return m.GetMatchesForProcessingFunc()
	}
	return nil, nil
}

func (m *MockStore) HasExternalMatch(externalID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.HasExternalMatchFunc != nil {
		return m.HasExternalMatchFunc(externalID)
	}
	return false
}

func (m *MockStore) ApplyMatchResult(match *Match, changes elo.EloChanges) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ApplyMatchResultCalls = append(m.ApplyMatchResultCalls, struct {
		Match   *Match
		Changes elo.EloChanges
	}{match, changes})
	if m.ApplyMatchResultFunc != nil {
		return m.ApplyMatchResultFunc(match, changes)
	}
	match.EloChanges = &changes
	match.ProcessingStatus = StatusRated
	return nil
}

func (m *MockStore) CreateClub(name, city string) (*Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateClubFunc != nil {
		return m.CreateClubFunc(name, city)
	}
	return &Club{Name: name, City: city}, nil
}

func (m *MockStore) GetClubs() ([]Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetClubsFunc != nil {
		return m.GetClubsFunc()
	}
	return []Club{}, nil
}

func (m *MockStore) CreateTournament(clubID, name string, startDate, endDate int64) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateTournamentFunc != nil {
		return m.CreateTournamentFunc(clubID, name, startDate, endDate)
	}
	return &Tournament{ClubID: clubID, Name: name, StartDate: startDate, EndDate: endDate}, nil
}

func (m *MockStore) GetTournaments(clubID string) ([]Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentsFunc != nil {
		return m.GetTournamentsFunc(clubID)
	}
	return []Tournament{}, nil
}
