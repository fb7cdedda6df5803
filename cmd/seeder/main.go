package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/padel-ledger/internal/club"
	"github.com/mauv0809/padel-ledger/internal/database"
	"github.com/mauv0809/padel-ledger/internal/metrics"
	"github.com/mauv0809/padel-ledger/internal/notifier/slack"
	"github.com/mauv0809/padel-ledger/internal/padel"
	"github.com/mauv0809/padel-ledger/internal/processor"
	"github.com/prometheus/client_golang/prometheus"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "padel.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			config[key] = value
		}
	}
	return config
}

func main() {
	numPlayers := flag.Int("players", 16, "number of players to create")
	numMatches := flag.Int("matches", 200, "number of matches to record")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	log.Info("Starting database seeder...", "players", *numPlayers, "matches", *numMatches, "seed", *seed)
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	rng := rand.New(rand.NewSource(*seed))
	store := club.New(db)
	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	// No token: the seeder never posts to Slack.
	proc := processor.New(store, slack.NewNotifier("", "", metricsSvc), metricsSvc, nil, nil)

	startTime := time.Now()
	recorded, err := seedClub(store, proc, rng, *numPlayers, *numMatches)
	if err != nil {
		log.Fatalf("Failed to seed: %s", err)
	}
	log.Info("Successfully seeded matches.", "recorded", recorded, "duration", time.Since(startTime))
}

// seedClub adds numPlayers random players and records numMatches random
// matches between them, returning how many matches were recorded.
func seedClub(store club.ClubStore, proc *processor.Processor, rng *rand.Rand, numPlayers, numMatches int) (int, error) {
	if numPlayers < 4 {
		return 0, fmt.Errorf("at least four players are needed to seed matches, got %d", numPlayers)
	}
	players := make([]string, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		category := padel.Categories[rng.Intn(len(padel.Categories))]
		p, err := store.AddPlayer(randomName(rng, i), category, false, "seeder")
		if err != nil {
			return 0, fmt.Errorf("failed to insert player: %w", err)
		}
		players = append(players, p.ID)
	}
	log.Info("Inserted players", "count", len(players))

	recorded := 0
	for i := 0; i < numMatches; i++ {
		perm := rng.Perm(len(players))
		sets, matchCfg := randomScore(rng)
		req := processor.RecordRequest{
			Team1:     [2]string{players[perm[0]], players[perm[1]]},
			Team2:     [2]string{players[perm[2]], players[perm[3]]},
			Sets:      sets,
			Config:    matchCfg,
			PlayedAt:  time.Now().Add(-time.Duration(numMatches-i) * time.Hour).Unix(),
			CreatedBy: "seeder",
		}
		if _, err := proc.RecordMatch(req, false); err != nil {
			log.Error("Failed to record match", "error", err, "score", padel.FormatSets(sets))
			continue
		}
		recorded++
	}
	return recorded, nil
}

var firstNames = []string{"Ana", "Bea", "Carlos", "Diego", "Elena", "Fernando", "Gloria", "Hugo", "Irene", "Javier", "Lucia", "Marta", "Nacho", "Olga", "Pablo", "Rocio"}
var lastNames = []string{"Garcia", "Lopez", "Martinez", "Sanchez", "Perez", "Gomez", "Ruiz", "Diaz", "Moreno", "Alvarez"}

func randomName(rng *rand.Rand, i int) string {
	name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
	if i >= len(firstNames) {
		name += " " + string(rune('A'+i%26))
	}
	return name
}

// randomScore returns a legal best-of-three score.
func randomScore(rng *rand.Rand) ([]padel.SetScore, padel.MatchConfig) {
	cfg := padel.MatchConfig{SuperTiebreak: rng.Intn(2) == 0}
	winner := padel.Team1
	if rng.Intn(2) == 0 {
		winner = padel.Team2
	}

	if rng.Intn(3) == 0 {
		return []padel.SetScore{randomSet(rng, winner), randomSet(rng, winner)}, cfg
	}
	sets := []padel.SetScore{randomSet(rng, winner), randomSet(rng, winner.Opponent())}
	if cfg.SuperTiebreak {
		return append(sets, orient(10, rng.Intn(9), winner)), cfg
	}
	return append(sets, randomSet(rng, winner)), cfg
}

func randomSet(rng *rand.Rand, winner padel.Team) padel.SetScore {
	scores := [][2]int{{6, 0}, {6, 1}, {6, 2}, {6, 3}, {6, 4}, {7, 5}, {7, 6}}
	s := scores[rng.Intn(len(scores))]
	return orient(s[0], s[1], winner)
}

func orient(winnerScore, loserScore int, winner padel.Team) padel.SetScore {
	if winner == padel.Team1 {
		return padel.SetScore{Team1: winnerScore, Team2: loserScore}
	}
	return padel.SetScore{Team1: loserScore, Team2: winnerScore}
}
