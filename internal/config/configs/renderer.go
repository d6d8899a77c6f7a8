package configs

import "time"

// Renderer configures the external creative rendering services. Preview
// handles static formats, the build agent handles generative ones.
// BuildKey is the credential sent to build agents; when empty, build
// calls are skipped and the affected creative fails hard.
type Renderer struct {
	PreviewURL string        `env:"PREVIEW_URL" envDefault:"http://localhost:9081"`
	BuildURL   string        `env:"BUILD_URL" envDefault:"http://localhost:9082"`
	BuildKey   string        `env:"BUILD_KEY"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
