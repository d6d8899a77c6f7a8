package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"adsync/internal/config/configs"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// Client resolves creative formats against external registries over
// HTTP. Successful resolutions are cached with a bounded TTL keyed by
// the normalized (namespace, id) pair; the cache is safe for concurrent
// use across requests. A format that changes on the registry may be
// served stale for up to one TTL window.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *gocache.Cache
	log     *slog.Logger
}

var _ port.FormatRegistry = (*Client)(nil)

// NewClient builds a registry client from configuration. BaseURL is the
// default registry used for references without a namespace.
func NewClient(cfg configs.Registry, log *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		log:     log,
	}
}

// Resolve implements port.FormatRegistry. A 404 maps to
// ErrFormatNotFound, transport failures and non-2xx answers map to
// ErrFormatUnreachable so callers can word remediation differently.
func (c *Client) Resolve(ctx context.Context, ref domain.FormatRef) (*domain.FormatSpec, error) {
	key := ref.CacheKey()
	if v, ok := c.cache.Get(key); ok {
		spec := v.(domain.FormatSpec)
		return &spec, nil
	}

	url := fmt.Sprintf("%s/formats/%s", c.registryBase(ref.Namespace), ref.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve format %s: %w: %w", ref, port.ErrFormatUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("format %s: %w", ref, port.ErrFormatNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("resolve format %s: registry returned %d: %w", ref, resp.StatusCode, port.ErrFormatUnreachable)
	}

	var spec domain.FormatSpec
	if err = json.NewDecoder(resp.Body).Decode(&spec); err != nil {
		return nil, fmt.Errorf("resolve format %s: decode response: %w", ref, port.ErrFormatUnreachable)
	}
	if spec.Namespace == "" {
		spec.Namespace = ref.Namespace
	}
	if spec.ID == "" {
		spec.ID = ref.ID
	}

	c.cache.SetDefault(key, spec)
	c.log.Debug("format resolved", slog.String("format", ref.String()), slog.String("type", string(spec.Type)))
	return &spec, nil
}

// ListAll implements port.FormatRegistry against the default registry.
// Every returned format primes the cache, so a sync that follows a
// discovery call resolves without extra round trips.
func (c *Client) ListAll(ctx context.Context, tenantID string) ([]domain.FormatSpec, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/formats", nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if tenantID != "" {
		req.Header.Set("X-Tenant-ID", tenantID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w: %w", port.ErrFormatUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("list formats: registry returned %d: %w", resp.StatusCode, port.ErrFormatUnreachable)
	}

	var payload struct {
		Formats []domain.FormatSpec `json:"formats"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("list formats: decode response: %w", port.ErrFormatUnreachable)
	}

	for _, spec := range payload.Formats {
		c.cache.SetDefault(spec.Ref().CacheKey(), spec)
	}
	return payload.Formats, nil
}

// registryBase picks the URL a reference should be resolved against. The
// routing suffix is stripped so suffixed and bare namespaces hit the
// same endpoint.
func (c *Client) registryBase(namespace string) string {
	if namespace == "" {
		return c.baseURL
	}
	return domain.NormalizeNamespace(namespace)
}
