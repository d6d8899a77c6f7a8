package configs

import "time"

// Registry configures the creative format registry client. BaseURL is
// the default registry consulted when a format reference carries no
// namespace. Resolved formats are cached for CacheTTL; staleness within
// that window is accepted.
type Registry struct {
	BaseURL  string        `env:"BASE_URL" envDefault:"http://localhost:9080"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	// Timeout bounds a single registry call so an unreachable registry
	// fails one creative, not the whole batch.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
