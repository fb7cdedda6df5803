package config

import (
	"testing"

	"github.com/mauv0809/padel-ledger/internal/elo"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_NAME", "padel.db")
	t.Setenv("PORT", "8080")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("ELO_K_FACTOR", "24")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "padel.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "xoxb-test", cfg.Slack.Token)
	assert.Equal(t, "C123", cfg.Slack.ChannelID)
	assert.Equal(t, 24.0, cfg.EloKFactor)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PubSubEnabled())
}

func TestParseKFactor(t *testing.T) {
	assert.Equal(t, elo.DefaultKFactor, parseKFactor(""))
	assert.Equal(t, elo.DefaultKFactor, parseKFactor("abc"))
	assert.Equal(t, elo.DefaultKFactor, parseKFactor("-5"))
	assert.Equal(t, 16.0, parseKFactor("16"))
}

func TestGetEnvOptional(t *testing.T) {
	t.Setenv("PADEL_TEST_SET", "value")
	t.Setenv("PADEL_TEST_EMPTY", "")
	assert.Equal(t, "value", getEnvOptional("PADEL_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", getEnvOptional("PADEL_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", getEnvOptional("PADEL_TEST_UNSET", "fallback"))
}
