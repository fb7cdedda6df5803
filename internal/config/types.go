package config

// Config holds all configuration for the application.
type Config struct {
	DBName     string
	Port       string
	Slack      SlackConfig
	TenantID   string
	Turso      TursoConfig
	ProjectID  string
	EloKFactor float64
	LogLevel   string
}
type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// PubSubEnabled reports whether rating updates go through Pub/Sub.
func (c Config) PubSubEnabled() bool {
	return c.ProjectID != ""
}
