package processor

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/pubsub"
)

// New creates a new Processor. With a nil pubsub client ratings are applied
// inline right after a match is recorded.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, engine *elo.Engine) *Processor {
	if engine == nil {
		engine = elo.NewEngine(elo.DefaultKFactor)
	}
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		engine:   engine,
	}
}

// Validate checks the score of a match without recording anything.
func (p *Processor) Validate(sets []padel.SetScore, cfg padel.MatchConfig) padel.ValidationResult {
	result := padel.ValidateMatch(sets, cfg)
	if !result.Valid {
		log.Debug("Match failed validation", "score", padel.FormatSets(sets), "reason", result.Error)
	}
	return result
}

// RecordMatch validates and stores a match, then hands it to the rating engine.
// A score that breaks the rules yields a *ValidationError. In dry-run mode
// nothing is stored and the returned match carries the rating changes it would cause.
func (p *Processor) RecordMatch(req RecordRequest, dryRun bool) (*club.Match, error) {
	match := &club.Match{
		Team1:        req.Team1,
		Team2:        req.Team2,
		Config:       req.Config,
		ClubID:       req.ClubID,
		TournamentID: req.TournamentID,
		ExternalID:   req.ExternalID,
		PlayedAt:     req.PlayedAt,
		CreatedBy:    req.CreatedBy,
	}
	players, err := p.matchPlayers(match)
	if err != nil {
		p.metrics.IncMatchesRejected(rejectionReason(err))
		return nil, err
	}

	result := p.Validate(req.Sets, req.Config)
	if !result.Valid {
		p.metrics.IncMatchesRejected(rejectionReason(result.Reason))
		return nil, &ValidationError{Result: result}
	}
	match.Sets = padel.MarkTiebreaks(req.Sets, req.Config)
	match.Winner = result.Winner()

	if dryRun {
		changes, err := p.engine.MatchChanges(ratingsOf(match, players), match.Winner)
		if err != nil {
			return nil, err
		}
		match.EloChanges = &changes
		log.Info("[Dry Run] Would record match", "score", padel.FormatSets(match.Sets), "winner", match.Winner)
		return match, nil
	}

	if err := p.store.InsertMatch(match); err != nil {
		return nil, fmt.Errorf("failed to record match: %w", err)
	}
	p.metrics.IncMatchesRecorded()
	log.Info("Recorded match", "matchID", match.ID, "score", padel.FormatSets(match.Sets), "winner", match.Winner)

	p.dispatchRating(match)
	return match, nil
}

// dispatchRating publishes the rating update, or applies it inline when no
// pubsub client is configured or publishing fails.
func (p *Processor) dispatchRating(match *club.Match) {
	if p.pubsub != nil {
		err := p.pubsub.SendMessage(pubsub.EventUpdateRatings, pubsub.MatchEvent{MatchID: match.ID})
		if err == nil {
			log.Debug("Published rating update", "matchID", match.ID)
			return
		}
		log.Warn("Failed to publish rating update, applying inline", "error", err, "matchID", match.ID)
	}
	if err := p.ApplyRatings(match, false); err != nil {
		// The match stays NEW and is picked up by ProcessPending.
		log.Error("Failed to apply ratings", "error", err, "matchID", match.ID)
	}
}

// ApplyRatingsByID rates a stored match. Already rated matches are left alone.
func (p *Processor) ApplyRatingsByID(matchID string, dryRun bool) error {
	match, err := p.store.GetMatch(matchID)
	if err != nil {
		return err
	}
	if match.ProcessingStatus == club.StatusRated {
		log.Info("Match already rated, skipping", "matchID", matchID)
		return nil
	}
	return p.ApplyRatings(match, dryRun)
}

// ApplyRatings computes the rating changes of a match from the players'
// current ratings and writes them together with the match statistics.
func (p *Processor) ApplyRatings(match *club.Match, dryRun bool) error {
	p.ratingMu.Lock()
	defer p.ratingMu.Unlock()

	startTime := time.Now()
	players, err := p.matchPlayers(match)
	if err != nil {
		return err
	}
	changes, err := p.engine.MatchChanges(ratingsOf(match, players), match.Winner)
	if err != nil {
		return fmt.Errorf("match %s: %w", match.ID, err)
	}

	if dryRun {
		log.Info("[Dry Run] Would apply ratings", "matchID", match.ID, "changes", changes)
		match.EloChanges = &changes
		return nil
	}

	if err := p.store.ApplyMatchResult(match, changes); err != nil {
		if errors.Is(err, club.ErrAlreadyRated) {
			log.Info("Match already rated, skipping", "matchID", match.ID)
			return nil
		}
		return fmt.Errorf("failed to apply ratings: %w", err)
	}
	p.metrics.IncRatingUpdates()
	p.metrics.ObserveRatingDuration(time.Since(startTime).Seconds())

	for i, id := range match.PlayerIDs() {
		player := players[id]
		player.Elo = changes.Slots()[i].After
		players[id] = player
	}
	if err := p.notifier.SendResultNotification(match, players, dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "matchID", match.ID)
	}
	return nil
}

// ProcessPending rates every stored match that has not been rated yet, oldest
// first. It returns how many matches were rated.
func (p *Processor) ProcessPending(dryRun bool) (int, error) {
	log.Info("Starting pending match processing...")
	matches, err := p.store.GetMatchesForProcessing()
	if err != nil {
		return 0, fmt.Errorf("failed to get matches for processing: %w", err)
	}
	if len(matches) == 0 {
		log.Info("No matches to process.")
		return 0, nil
	}

	log.Info("Found matches to process", "count", len(matches))
	rated := 0
	for _, match := range matches {
		if err := p.ApplyRatings(match, dryRun); err != nil {
			log.Error("Failed to rate match", "error", err, "matchID", match.ID)
			continue
		}
		rated++
	}
	log.Info("Pending match processing finished.", "rated", rated)
	return rated, nil
}

// matchPlayers checks the four player slots and loads the players.
func (p *Processor) matchPlayers(match *club.Match) (map[string]club.PlayerInfo, error) {
	ids := match.PlayerIDs()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			return nil, ErrDuplicatePlayer
		}
		seen[id] = true
	}

	found, err := p.store.GetPlayers(ids[:])
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	players := make(map[string]club.PlayerInfo, len(found))
	for _, player := range found {
		players[player.ID] = player
	}
	for _, id := range ids {
		if _, ok := players[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
	}
	return players, nil
}

func ratingsOf(match *club.Match, players map[string]club.PlayerInfo) [4]int {
	var ratings [4]int
	for i, id := range match.PlayerIDs() {
		ratings[i] = players[id].Elo
	}
	return ratings
}

// rejectionReason is the metrics label for a rejected match.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, padel.ErrTooFewSets):
		return "too_few_sets"
	case errors.Is(err, padel.ErrTooManySets):
		return "too_many_sets"
	case errors.Is(err, padel.ErrInvalidSetScore):
		return "invalid_set_score"
	case errors.Is(err, padel.ErrNoDecisiveWinner):
		return "no_winner"
	case errors.Is(err, padel.ErrIllegalThirdSet):
		return "illegal_third_set"
	case errors.Is(err, padel.ErrUndecidedThirdSet):
		return "undecided_third_set"
	case errors.Is(err, ErrDuplicatePlayer):
		return "duplicate_player"
	case errors.Is(err, ErrUnknownPlayer):
		return "unknown_player"
	default:
		return "other"
	}
}
