package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/padel-ledger/internal/elo"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Slack: SlackConfig{
			Token:         getEnvOptional("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnvOptional("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnvOptional("SLACK_SIGNING_SECRET", ""),
		},
		TenantID: getEnvOptional("TENANT_ID", ""),
		Port:     getEnv("PORT"),
		Turso: TursoConfig{
			PrimaryURL: getEnvOptional("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOptional("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID:  getEnvOptional("GCP_PROJECT", ""),
		EloKFactor: parseKFactor(getEnvOptional("ELO_K_FACTOR", "")),
		LogLevel:   getEnvOptional("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnvOptional(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseKFactor(raw string) float64 {
	if raw == "" {
		return elo.DefaultKFactor
	}
	k, err := strconv.ParseFloat(raw, 64)
	if err != nil || k <= 0 {
		log.Warn("Invalid ELO_K_FACTOR, using default", "value", raw, "default", elo.DefaultKFactor)
		return elo.DefaultKFactor
	}
	return k
}
