package processor

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/playtomic"
)

// ImportPlaytomic records the played, confirmed doubles matches of a Playtomic
// club since the given time. Matches imported before are skipped, and players
// seen for the first time are created from their Playtomic level.
func (p *Processor) ImportPlaytomic(client playtomic.PlaytomicClient, tenantID string, since time.Time, dryRun bool) (ImportSummary, error) {
	var summary ImportSummary
	p.metrics.IncImportRuns()

	params := &playtomic.SearchMatchesParams{
		SportID:       "PADEL",
		HasPlayers:    true,
		Sort:          "start_date,ASC",
		TenantIDs:     []string{tenantID},
		FromStartDate: since.UTC().Format("2006-01-02T15:04:05"),
	}
	summaries, err := client.GetMatches(params)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch matches: %w", err)
	}
	summary.Fetched = len(summaries)

	var toFetch []string
	for _, s := range summaries {
		if p.store.HasExternalMatch(s.MatchID) {
			summary.Skipped++
			continue
		}
		toFetch = append(toFetch, s.MatchID)
	}

	matches := fetchMatches(client, toFetch)
	// Rate in the order the matches were played.
	sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })

	for _, m := range matches {
		if !m.IsRecordable() {
			log.Debug("Skipping match without confirmed result", "matchID", m.MatchID, "game_status", m.GameStatus, "results_status", m.ResultsStatus)
			summary.Skipped++
			continue
		}
		if err := p.importMatch(m, dryRun); err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) || isRejection(err) {
				log.Warn("Rejected Playtomic match", "matchID", m.MatchID, "reason", err)
				summary.Rejected++
				continue
			}
			return summary, fmt.Errorf("failed to import match %s: %w", m.MatchID, err)
		}
		summary.Imported++
	}

	p.metrics.IncMatchesImported(summary.Imported)
	log.Info("Playtomic import finished", "tenantID", tenantID, "fetched", summary.Fetched, "imported", summary.Imported, "skipped", summary.Skipped, "rejected", summary.Rejected)
	return summary, nil
}

func (p *Processor) importMatch(m *playtomic.PadelMatch, dryRun bool) error {
	teams, err := m.TeamPlayers()
	if err != nil {
		return err
	}
	sets, cfg, err := m.SetScores()
	if err != nil {
		return err
	}

	if result := p.Validate(sets, cfg); !result.Valid {
		return &ValidationError{Result: result}
	}

	req := RecordRequest{
		Team1:      [2]string{teams[0][0].UserID, teams[0][1].UserID},
		Team2:      [2]string{teams[1][0].UserID, teams[1][1].UserID},
		Sets:       sets,
		Config:     cfg,
		ExternalID: m.MatchID,
		PlayedAt:   m.Start,
		CreatedBy:  m.OwnerID,
	}
	if dryRun {
		log.Info("[Dry Run] Would import match", "matchID", m.MatchID)
		return nil
	}

	var newPlayers []club.PlayerInfo
	for _, team := range teams {
		for _, player := range team {
			if p.store.IsKnownPlayer(player.UserID) {
				continue
			}
			log.Info("New player from Playtomic", "playerID", player.UserID, "name", player.Name, "level", player.Level)
			newPlayers = append(newPlayers, club.PlayerInfo{
				ID:       player.UserID,
				Name:     player.Name,
				Category: playtomic.CategoryForLevel(player.Level),
			})
		}
	}
	if err := p.store.UpsertPlayers(newPlayers); err != nil {
		return fmt.Errorf("failed to upsert players: %w", err)
	}

	_, err = p.RecordMatch(req, false)
	return err
}

// isRejection reports whether err means the match itself is unusable, as
// opposed to a failure of the store.
func isRejection(err error) bool {
	return errors.Is(err, playtomic.ErrNotDoubles) ||
		errors.Is(err, playtomic.ErrMissingScores) ||
		errors.Is(err, ErrDuplicatePlayer) ||
		errors.Is(err, ErrUnknownPlayer)
}

// fetchMatches loads match details concurrently. Matches that fail to load are
// logged and left out.
func fetchMatches(client playtomic.PlaytomicClient, ids []string) []*playtomic.PadelMatch {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		matches = make([]*playtomic.PadelMatch, 0, len(ids))
	)
	for _, id := range ids {
		wg.Add(1)
		go func(matchID string) {
			defer wg.Done()
			m, err := client.GetSpecificMatch(matchID)
			if err != nil {
				log.Error("Failed to fetch match details", "error", err, "matchID", matchID)
				return
			}
			mu.Lock()
			matches = append(matches, &m)
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return matches
}
