package port

import (
	"context"
	"encoding/json"
	"errors"

	"adsync/internal/core/domain"
)

// ErrNoCredential means the build service credential is not configured.
// The build call is skipped entirely, which is a hard failure for that
// creative, never a silent skip.
var ErrNoCredential = errors.New("no build credential configured")

// Renderer talks to the external preview and build services. One call
// per creative; both calls are bounded by the request context.
type Renderer interface {
	// Preview renders a static creative's manifest into preview URLs.
	Preview(ctx context.Context, m PreviewManifest) (*PreviewResponse, error)
	// Build asks a generative agent to produce or refine a creative.
	// Returns ErrNoCredential without any network call when the
	// credential is missing.
	Build(ctx context.Context, req BuildRequest) (*BuildResponse, error)
}

// PreviewManifest is the minimal description the preview service needs.
type PreviewManifest struct {
	CreativeID string                  `json:"creative_id"`
	Name       string                  `json:"name"`
	FormatID   string                  `json:"format_id"`
	MediaURL   string                  `json:"media_url,omitempty"`
	Assets     map[string]domain.Asset `json:"assets,omitempty"`
}

// PreviewRender is one rendering of a creative at a concrete size.
type PreviewRender struct {
	PreviewURL string `json:"preview_url"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

type Preview struct {
	Renders []PreviewRender `json:"renders"`
}

type PreviewResponse struct {
	Previews []Preview `json:"previews"`
}

// BuildRequest carries everything the build agent needs. AgentURL is the
// format's namespace; empty means the default agent.
type BuildRequest struct {
	AgentURL          string         `json:"-"`
	FormatID          string         `json:"format_id"`
	Message           string         `json:"message"`
	PromotedOfferings map[string]any `json:"promoted_offerings,omitempty"`
	// ContextID resumes a previous build session for iterative
	// refinement.
	ContextID string `json:"context_id,omitempty"`
	// Finalize is the caller's approval intent: true asks the agent for
	// final output instead of another draft.
	Finalize bool `json:"finalize"`
}

// BuildOutput is the usable part of a finished build.
type BuildOutput struct {
	Assets       map[string]domain.Asset `json:"assets,omitempty"`
	OutputFormat string                  `json:"output_format,omitempty"`
}

type BuildResponse struct {
	Status         string          `json:"status"`
	ContextID      string          `json:"context_id,omitempty"`
	CreativeOutput BuildOutput     `json:"creative_output"`
	Raw            json.RawMessage `json:"-"`
}
