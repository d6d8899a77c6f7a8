package configs

import "time"

// Review configures the asynchronous AI review pipeline used in the
// ai-powered approval mode. Workers and QueueSize bound the background
// task pool; Retention is how long finished review tasks remain
// queryable before eviction.
type Review struct {
	URL       string        `env:"URL" envDefault:"http://localhost:9083"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"60s"`
	Workers   int           `env:"WORKERS" envDefault:"4"`
	QueueSize int           `env:"QUEUE_SIZE" envDefault:"64"`
	Retention time.Duration `env:"RETENTION" envDefault:"10m"`
}
