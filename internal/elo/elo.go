package elo

import (
	"errors"
	"math"

	"github.com/mauv0809/padel-ledger/internal/padel"
)

// DefaultKFactor is the maximum rating change for a single match.
const DefaultKFactor = 32.0

var ErrNoWinner = errors.New("match has no winner")

// ExpectedScore is the probability that a side rated rating beats a side rated opponent.
func ExpectedScore(rating, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-rating)/400))
}

// Delta is the rounded rating change for a side after a result against opponent.
func Delta(rating, opponent float64, won bool, k float64) int {
	actual := 0.0
	if won {
		actual = 1
	}
	return int(math.Round(k * (actual - ExpectedScore(rating, opponent))))
}

// NewRating is rating after a result against opponent, rounded to the nearest point.
func NewRating(rating, opponent float64, won bool, k float64) int {
	return int(math.Round(rating)) + Delta(rating, opponent, won, k)
}

// Engine computes doubles rating changes with a fixed K factor.
type Engine struct {
	k float64
}

// NewEngine creates an Engine. A non-positive k falls back to DefaultKFactor.
func NewEngine(k float64) *Engine {
	if k <= 0 {
		k = DefaultKFactor
	}
	return &Engine{k: k}
}

// KFactor returns the engine's K factor.
func (e *Engine) KFactor() float64 {
	return e.k
}

// MatchChanges computes the rating change for the four player slots. Slots 0-1
// play for team 1 and slots 2-3 for team 2. Each side is rated as the mean of
// its two players and both players of a side receive the side's delta, so the
// changes always sum to zero.
func (e *Engine) MatchChanges(ratings [4]int, winner padel.Team) (EloChanges, error) {
	if winner != padel.Team1 && winner != padel.Team2 {
		return EloChanges{}, ErrNoWinner
	}

	team1 := float64(ratings[0]+ratings[1]) / 2
	team2 := float64(ratings[2]+ratings[3]) / 2
	team1Delta := Delta(team1, team2, winner == padel.Team1, e.k)
	team2Delta := -team1Delta

	var changes EloChanges
	for i, before := range ratings {
		delta := team1Delta
		if i >= 2 {
			delta = team2Delta
		}
		changes.set(i, Change{Before: before, After: before + delta, Change: delta})
	}
	return changes, nil
}
