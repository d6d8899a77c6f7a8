package configs

import "time"

// Notify configures the webhook fired when a review completes. An empty
// WebhookURL disables notifications entirely.
type Notify struct {
	WebhookURL string        `env:"WEBHOOK_URL"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
