package padel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSets parses a score line such as "6-4 3-6 10-8" into sets.
// Sets may be separated by spaces or commas.
func ParseSets(s string) ([]SetScore, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no sets in %q", s)
	}

	sets := make([]SetScore, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid set format %q, expected games-games", field)
		}
		team1, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid score in %q: %w", field, err)
		}
		team2, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid score in %q: %w", field, err)
		}
		sets = append(sets, SetScore{Team1: team1, Team2: team2})
	}
	return sets, nil
}

// FormatSets renders sets the way ParseSets reads them.
func FormatSets(sets []SetScore) string {
	parts := make([]string, len(sets))
	for i, set := range sets {
		parts[i] = fmt.Sprintf("%d-%d", set.Team1, set.Team2)
	}
	return strings.Join(parts, " ")
}
