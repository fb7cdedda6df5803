package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/spf13/cobra"
)

var (
	superTiebreak bool
	rankingsLimit int
	matchesPlayer string
	importDays    int
	dryRun        bool
)

func init() {
	validateCmd.Flags().BoolVar(&superTiebreak, "super-tiebreak", false, "Score the third set as a super tie-break to 10")
	rankingsCmd.Flags().IntVar(&rankingsLimit, "limit", 10, "Number of players to show, 0 for everyone")
	matchesCmd.Flags().StringVar(&matchesPlayer, "player", "", "Only show matches of this player id")
	importCmd.Flags().IntVar(&importDays, "days", 1, "Import matches played in the last N days")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log what would be imported without storing anything")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var validateCmd = &cobra.Command{
	Use:     "validate <sets>",
	Short:   "Check a match score against the padel rules, without contacting the server",
	Example: `  padel-cli validate "6-4 4-6 10-8" --super-tiebreak`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		sets, err := padel.ParseSets(strings.Join(args, " "))
		if err != nil {
			return err
		}
		cfg := padel.MatchConfig{SuperTiebreak: superTiebreak}
		result := padel.ValidateMatch(sets, cfg)
		if !result.Valid {
			fmt.Fprintf(out, "Invalid: %s\n", result.Error)
			return fmt.Errorf("score %q is not a valid match", padel.FormatSets(sets))
		}
		tally := padel.TallyMatch(sets, cfg)
		fmt.Fprintf(out, "Valid: team %d wins %s\n", result.Winner(), padel.FormatSets(sets))
		fmt.Fprintf(out, "Sets %d-%d, games %d-%d\n", tally.Team1Sets, tally.Team2Sets, tally.Team1Games, tally.Team2Games)
		return nil
	},
}

var playersCmd = &cobra.Command{
	Use:   "players [id]",
	Short: "List the players, or show one player",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performRequest(http.MethodGet, "/players/"+url.PathEscape(args[0]))
		}
		return performRequest(http.MethodGet, "/players")
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the rating ladder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/rankings?limit="+strconv.Itoa(rankingsLimit))
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches [id]",
	Short: "List recorded matches, or show one match",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performRequest(http.MethodGet, "/matches/"+url.PathEscape(args[0]))
		}
		endpoint := "/matches"
		if matchesPlayer != "" {
			endpoint += "?player=" + url.QueryEscape(matchesPlayer)
		}
		return performRequest(http.MethodGet, endpoint)
	},
}

var h2hCmd = &cobra.Command{
	Use:   "h2h <player-id> <opponent-id>",
	Short: "Show the head-to-head record of two players",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players/"+url.PathEscape(args[0])+"/head-to-head/"+url.PathEscape(args[1]))
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import played matches from Playtomic",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/import?days=%d", importDays)
		if dryRun {
			endpoint += "&dry_run=true"
		}
		return performRequest(http.MethodPost, endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func performRequest(method, endpoint string) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
