package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"adsync/internal/config/configs"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// Client talks to the external rendering services: the preview service
// for static formats and build agents for generative ones. Both calls
// are bounded by the configured timeout so one slow render fails only
// its own creative.
type Client struct {
	http       *http.Client
	previewURL string
	buildURL   string
	buildKey   string
}

var _ port.Renderer = (*Client)(nil)

func NewClient(cfg configs.Renderer) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		previewURL: strings.TrimRight(cfg.PreviewURL, "/"),
		buildURL:   strings.TrimRight(cfg.BuildURL, "/"),
		buildKey:   cfg.BuildKey,
	}
}

// Preview implements port.Renderer.
func (c *Client) Preview(ctx context.Context, m port.PreviewManifest) (*port.PreviewResponse, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode preview manifest: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.previewURL+"/preview", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build preview request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("preview service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("preview service returned %d", resp.StatusCode)
	}

	var out port.PreviewResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode preview response: %w", err)
	}
	return &out, nil
}

// Build implements port.Renderer. The raw response body is returned
// alongside the decoded fields so it can be persisted for diagnostics.
func (c *Client) Build(ctx context.Context, breq port.BuildRequest) (*port.BuildResponse, error) {
	if c.buildKey == "" {
		return nil, port.ErrNoCredential
	}

	base := c.buildURL
	if breq.AgentURL != "" {
		base = domain.NormalizeNamespace(breq.AgentURL)
	}

	body, err := json.Marshal(breq)
	if err != nil {
		return nil, fmt.Errorf("encode build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/build", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.buildKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("build agent: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read build response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("build agent returned %d", resp.StatusCode)
	}

	var out port.BuildResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode build response: %w", err)
	}
	out.Raw = raw
	return &out, nil
}
