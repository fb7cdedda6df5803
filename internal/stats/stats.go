// Package stats derives head-to-head and partnership records from recorded matches.
package stats

import (
	"sort"

	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/padel"
)

// HeadToHead summarises the matches two players played on opposite sides.
type HeadToHead struct {
	PlayerID     string `json:"player_id"`
	OpponentID   string `json:"opponent_id"`
	Matches      int    `json:"matches"`
	PlayerWins   int    `json:"player_wins"`
	OpponentWins int    `json:"opponent_wins"`
	PlayerSets   int    `json:"player_sets"`
	OpponentSets int    `json:"opponent_sets"`
	LastPlayedAt int64  `json:"last_played_at,omitempty"`
}

// PartnerStats is a player's record alongside one team mate.
type PartnerStats struct {
	PartnerID   string  `json:"partner_id"`
	PartnerName string  `json:"partner_name,omitempty"`
	Matches     int     `json:"matches"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
}

// ComputeHeadToHead counts the matches in which playerID and opponentID faced
// each other. Matches where they were partners, or either is absent, are ignored.
func ComputeHeadToHead(playerID, opponentID string, matches []*club.Match) HeadToHead {
	h2h := HeadToHead{PlayerID: playerID, OpponentID: opponentID}
	if playerID == opponentID {
		return h2h
	}
	for _, m := range matches {
		side := m.SideOf(playerID)
		if side == padel.NoTeam || m.SideOf(opponentID) != side.Opponent() {
			continue
		}
		h2h.Matches++
		switch m.Winner {
		case side:
			h2h.PlayerWins++
		case side.Opponent():
			h2h.OpponentWins++
		}
		tally := padel.TallyMatch(m.Sets, m.Config)
		h2h.PlayerSets += tally.Sets(side)
		h2h.OpponentSets += tally.Sets(side.Opponent())
		if m.PlayedAt > h2h.LastPlayedAt {
			h2h.LastPlayedAt = m.PlayedAt
		}
	}
	return h2h
}

// ComputePartners groups the player's matches by partner, most frequent
// partner first. names resolves partner ids to display names and may be nil.
func ComputePartners(playerID string, matches []*club.Match, names map[string]string) []PartnerStats {
	byPartner := make(map[string]*PartnerStats)
	for _, m := range matches {
		partner := m.PartnerOf(playerID)
		if partner == "" {
			continue
		}
		ps, ok := byPartner[partner]
		if !ok {
			ps = &PartnerStats{PartnerID: partner, PartnerName: names[partner]}
			byPartner[partner] = ps
		}
		ps.Matches++
		if m.Winner == m.SideOf(playerID) {
			ps.Wins++
		} else {
			ps.Losses++
		}
	}

	result := make([]PartnerStats, 0, len(byPartner))
	for _, ps := range byPartner {
		ps.WinRate = float64(ps.Wins) / float64(ps.Matches) * 100
		result = append(result, *ps)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Matches != result[j].Matches {
			return result[i].Matches > result[j].Matches
		}
		if result[i].WinRate != result[j].WinRate {
			return result[i].WinRate > result[j].WinRate
		}
		return result[i].PartnerID < result[j].PartnerID
	})
	return result
}
