package config

import (
	"github.com/caarlos0/env/v11"

	"adsync/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is not
	// currently used by the application but may be useful for logging or
	// metrics.
	Env string `env:"ENV" envDefault:"prod"`

	// ApprovalMode selects how synced creatives obtain their review
	// status: auto-approve, require-human or ai-powered.
	ApprovalMode string `env:"APPROVAL_MODE" envDefault:"auto-approve"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Registry configures the external creative format registry client.
	Registry configs.Registry `envPrefix:"REGISTRY_"`

	// Renderer configures the preview and generative build services.
	Renderer configs.Renderer `envPrefix:"RENDERER_"`

	// Review configures the asynchronous AI review pipeline.
	Review configs.Review `envPrefix:"REVIEW_"`

	// Notify configures the optional review-completed webhook.
	Notify configs.Notify `envPrefix:"NOTIFY_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
