package club

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/padel"
)

const playerColumns = `id, name, category, elo, is_ghost, COALESCE(created_by, ''), created_at`

const statsColumns = `id, name, category, elo, matches_played, matches_won, matches_lost, sets_won, sets_lost, games_won, games_lost`

const matchColumns = `id, team1_player1, team1_player2, team2_player1, team2_player2, sets_json, config_json, winner,
	elo_changes_json, club_id, tournament_id, external_id, played_at, created_by, processing_status, created_at`

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// AddPlayer creates a player whose starting rating is derived from the category.
func (s *store) AddPlayer(name string, category padel.Category, isGhost bool, createdBy string) (*PlayerInfo, error) {
	rating, err := padel.InitialRating(category)
	if err != nil {
		return nil, err
	}
	player := &PlayerInfo{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Elo:       rating,
		IsGhost:   isGhost,
		CreatedBy: createdBy,
		CreatedAt: time.Now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`INSERT INTO players (id, name, category, elo, is_ghost, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		player.ID, player.Name, player.Category, player.Elo, player.IsGhost, nullString(player.CreatedBy), player.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add player %q: %w", name, err)
	}
	log.Info("Added new player to the store", "playerID", player.ID, "name", name, "category", category, "elo", rating, "ghost", isGhost)
	return player, nil
}

// UpsertPlayers inserts players with known ids, or refreshes their name.
// Rating and category of an existing player are left untouched.
func (s *store) UpsertPlayers(players []PlayerInfo) error {
	if len(players) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, category, elo, is_ghost, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, p := range players {
		if p.Elo == 0 {
			if p.Elo, err = padel.InitialRating(p.Category); err != nil {
				tx.Rollback()
				return fmt.Errorf("player %s: %w", p.ID, err)
			}
		}
		if p.CreatedAt == 0 {
			p.CreatedAt = now
		}
		if _, err := stmt.Exec(p.ID, p.Name, p.Category, p.Elo, p.IsGhost, nullString(p.CreatedBy), p.CreatedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

func (s *store) GetPlayer(playerID string) (*PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+playerColumns+" FROM players WHERE id = ?", playerID)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlayers returns the players with the given ids. Unknown ids are skipped.
func (s *store) GetPlayers(playerIDs []string) ([]PlayerInfo, error) {
	if len(playerIDs) == 0 {
		return []PlayerInfo{}, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT " + playerColumns + " FROM players WHERE id IN (?" + strings.Repeat(",?", len(playerIDs)-1) + ")"
	rows, err := s.db.Query(query, ToAnySlice(playerIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func (s *store) GetAllPlayers() ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.Query("SELECT " + playerColumns + " FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()
	return scanPlayers(rows)
}

func (s *store) IsKnownPlayer(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return false
	}
	return exists
}

// GetPlayerStatsByName retrieves the statistics for a single player by their name.
// It performs a case-insensitive, fuzzy search (e.g., "morten" will match "Morten Voss").
func (s *store) GetPlayerStatsByName(playerName string) (*PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + playerName + "%"
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM players WHERE name LIKE ? COLLATE NOCASE ORDER BY name LIMIT 1", pattern)
	stat, err := scanStats(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("No stats found for player matching pattern", "pattern", pattern)
			return nil, fmt.Errorf("player matching '%s': %w", playerName, ErrNotFound)
		}
		log.Error("Failed to query player stats by name", "error", err, "pattern", pattern)
		return nil, fmt.Errorf("database error: %w", err)
	}
	log.Debug("Found player stats by name", "player", stat.PlayerName)
	return stat, nil
}

// GetRankings returns players ordered by rating, then wins. A limit of zero
// or less returns everyone.
func (s *store) GetRankings(limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = -1
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT "+statsColumns+" FROM players ORDER BY elo DESC, matches_won DESC, name ASC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []PlayerStats{}
	for rows.Next() {
		stat, err := scanStats(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *stat)
	}
	return stats, rows.Err()
}

// InsertMatch stores a new match. ID, CreatedAt and ProcessingStatus are
// filled in when empty.
func (s *store) InsertMatch(match *Match) error {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.CreatedAt == 0 {
		match.CreatedAt = time.Now().Unix()
	}
	if match.PlayedAt == 0 {
		match.PlayedAt = match.CreatedAt
	}
	if match.ProcessingStatus == "" {
		match.ProcessingStatus = StatusNew
	}

	setsJSON, err := json.Marshal(match.Sets)
	if err != nil {
		return err
	}
	configJSON, err := json.Marshal(match.Config)
	if err != nil {
		return err
	}
	var changesJSON any
	if match.EloChanges != nil {
		b, err := json.Marshal(match.EloChanges)
		if err != nil {
			return err
		}
		changesJSON = string(b)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec("INSERT INTO matches ("+matchColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		match.ID, match.Team1[0], match.Team1[1], match.Team2[0], match.Team2[1],
		string(setsJSON), string(configJSON), match.Winner, changesJSON,
		nullString(match.ClubID), nullString(match.TournamentID), nullString(match.ExternalID),
		match.PlayedAt, nullString(match.CreatedBy), match.ProcessingStatus, match.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}
	log.Info("Stored match", "matchID", match.ID, "winner", match.Winner, "score", padel.FormatSets(match.Sets))
	return nil
}

func (s *store) GetMatch(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, err := scanMatch(s.db.QueryRow("SELECT "+matchColumns+" FROM matches WHERE id = ?", matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}
	return match, err
}

// GetAllMatches retrieves all matches, most recent first.
func (s *store) GetAllMatches() ([]*Match, error) {
	return s.queryMatches("SELECT " + matchColumns + " FROM matches ORDER BY played_at DESC, created_at DESC")
}

// GetMatchesForPlayer retrieves every match the player took part in, most recent first.
func (s *store) GetMatchesForPlayer(playerID string) ([]*Match, error) {
	return s.queryMatches(`SELECT `+matchColumns+` FROM matches
		WHERE ? IN (team1_player1, team1_player2, team2_player1, team2_player2)
		ORDER BY played_at DESC, created_at DESC`, playerID)
}

// GetMatchesForProcessing retrieves all matches that have not been rated yet, oldest first.
func (s *store) GetMatchesForProcessing() ([]*Match, error) {
	return s.queryMatches("SELECT "+matchColumns+" FROM matches WHERE processing_status != ? ORDER BY played_at ASC, created_at ASC", StatusRated)
}

func (s *store) HasExternalMatch(externalID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM matches WHERE external_id = ?)", externalID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check for external match", "error", err, "externalID", externalID)
		return false
	}
	return exists
}

// ApplyMatchResult writes the new ratings and the match outcome to every player
// and marks the match rated, all in one transaction.
func (s *store) ApplyMatchResult(match *Match, changes elo.EloChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var status ProcessingStatus
	if err := tx.QueryRow("SELECT processing_status FROM matches WHERE id = ?", match.ID).Scan(&status); err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("match %s: %w", match.ID, ErrNotFound)
		}
		return err
	}
	if status == StatusRated {
		tx.Rollback()
		return fmt.Errorf("match %s: %w", match.ID, ErrAlreadyRated)
	}

	tally := padel.TallyMatch(match.Sets, match.Config)
	slots := changes.Slots()
	for i, playerID := range match.PlayerIDs() {
		side := match.SideOf(playerID)
		won, lost := 0, 1
		if side == match.Winner {
			won, lost = 1, 0
		}
		res, err := tx.Exec(`
			UPDATE players SET
				elo = ?,
				matches_played = matches_played + 1,
				matches_won = matches_won + ?,
				matches_lost = matches_lost + ?,
				sets_won = sets_won + ?,
				sets_lost = sets_lost + ?,
				games_won = games_won + ?,
				games_lost = games_lost + ?
			WHERE id = ?`,
			slots[i].After, won, lost,
			tally.Sets(side), tally.Sets(side.Opponent()),
			tally.Games(side), tally.Games(side.Opponent()),
			playerID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to update player %s: %w", playerID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			tx.Rollback()
			return fmt.Errorf("player %s: %w", playerID, ErrNotFound)
		}
	}

	changesJSON, err := json.Marshal(changes)
	if err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("UPDATE matches SET elo_changes_json = ?, processing_status = ? WHERE id = ?", string(changesJSON), StatusRated, match.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to mark match %s rated: %w", match.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	match.EloChanges = &changes
	match.ProcessingStatus = StatusRated
	log.Info("Applied match result", "matchID", match.ID, "winner", match.Winner)
	return nil
}

func (s *store) CreateClub(name, city string) (*Club, error) {
	c := &Club{ID: uuid.NewString(), Name: name, City: city, CreatedAt: time.Now().Unix()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("INSERT INTO clubs (id, name, city, created_at) VALUES (?, ?, ?, ?)", c.ID, c.Name, nullString(c.City), c.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create club %q: %w", name, err)
	}
	return c, nil
}

func (s *store) GetClubs() ([]Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, COALESCE(city, ''), created_at FROM clubs ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []Club{}
	for rows.Next() {
		var c Club
		if err := rows.Scan(&c.ID, &c.Name, &c.City, &c.CreatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (s *store) CreateTournament(clubID, name string, startDate, endDate int64) (*Tournament, error) {
	t := &Tournament{ID: uuid.NewString(), ClubID: clubID, Name: name, StartDate: startDate, EndDate: endDate, CreatedAt: time.Now().Unix()}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("INSERT INTO tournaments (id, club_id, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID, nullString(t.ClubID), t.Name, t.StartDate, t.EndDate, t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament %q: %w", name, err)
	}
	return t, nil
}

// GetTournaments lists tournaments, optionally only those of one club.
func (s *store) GetTournaments(clubID string) ([]Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, COALESCE(club_id, ''), name, COALESCE(start_date, 0), COALESCE(end_date, 0), created_at FROM tournaments"
	var args []any
	if clubID != "" {
		query += " WHERE club_id = ?"
		args = append(args, clubID)
	}
	rows, err := s.db.Query(query+" ORDER BY start_date DESC, name", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := []Tournament{}
	for rows.Next() {
		var t Tournament
		if err := rows.Scan(&t.ID, &t.ClubID, &t.Name, &t.StartDate, &t.EndDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (s *store) queryMatches(query string, args ...any) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	matches := []*Match{}
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

type scanner interface{ Scan(...any) error }

func scanPlayer(row scanner) (*PlayerInfo, error) {
	var p PlayerInfo
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Elo, &p.IsGhost, &p.CreatedBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPlayers(rows *sql.Rows) ([]PlayerInfo, error) {
	players := []PlayerInfo{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func scanStats(row scanner) (*PlayerStats, error) {
	var stat PlayerStats
	err := row.Scan(
		&stat.PlayerID,
		&stat.PlayerName,
		&stat.Category,
		&stat.Elo,
		&stat.MatchesPlayed,
		&stat.MatchesWon,
		&stat.MatchesLost,
		&stat.SetsWon,
		&stat.SetsLost,
		&stat.GamesWon,
		&stat.GamesLost,
	)
	if err != nil {
		return nil, err
	}
	if stat.MatchesPlayed > 0 {
		stat.WinPercentage = (float64(stat.MatchesWon) / float64(stat.MatchesPlayed)) * 100
	}
	return &stat, nil
}

func scanMatch(row scanner) (*Match, error) {
	var (
		m                                                 Match
		setsJSON, configJSON                              string
		changesJSON, clubID, tournamentID, externalID, by sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.Team1[0], &m.Team1[1], &m.Team2[0], &m.Team2[1],
		&setsJSON, &configJSON, &m.Winner,
		&changesJSON, &clubID, &tournamentID, &externalID,
		&m.PlayedAt, &by, &m.ProcessingStatus, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ClubID = clubID.String
	m.TournamentID = tournamentID.String
	m.ExternalID = externalID.String
	m.CreatedBy = by.String

	if err := json.Unmarshal([]byte(setsJSON), &m.Sets); err != nil {
		return nil, fmt.Errorf("match %s: bad sets_json: %w", m.ID, err)
	}
	if err := json.Unmarshal([]byte(configJSON), &m.Config); err != nil {
		return nil, fmt.Errorf("match %s: bad config_json: %w", m.ID, err)
	}
	if changesJSON.Valid && changesJSON.String != "" {
		var changes elo.EloChanges
		if err := json.Unmarshal([]byte(changesJSON.String), &changes); err != nil {
			log.Error("Failed to unmarshal elo_changes_json", "error", err, "matchID", m.ID)
		} else {
			m.EloChanges = &changes
		}
	}
	return &m, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func ToAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
