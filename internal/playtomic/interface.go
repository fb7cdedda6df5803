package playtomic

// PlaytomicClient is the part of the Playtomic API the importer needs.
type PlaytomicClient interface {
	// GetMatches pages through the match search and returns every summary.
	GetMatches(params *SearchMatchesParams) ([]MatchSummary, error)
	// GetSpecificMatch loads the teams, players and set results of one match.
	GetSpecificMatch(matchID string) (PadelMatch, error)
}
