package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"adsync/internal/config/configs"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

func rendererConfig(previewURL, buildURL, key string) configs.Renderer {
	return configs.Renderer{
		PreviewURL: previewURL,
		BuildURL:   buildURL,
		BuildKey:   key,
		Timeout:    2 * time.Second,
	}
}

func TestPreviewRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/preview" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var m port.PreviewManifest
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			t.Errorf("decode manifest: %v", err)
		}
		if m.CreativeID != "c1" || m.FormatID != "display_300x250" {
			t.Errorf("unexpected manifest %+v", m)
		}
		json.NewEncoder(w).Encode(port.PreviewResponse{Previews: []port.Preview{
			{Renders: []port.PreviewRender{{PreviewURL: "https://prev.test/r1.png", Width: 300, Height: 250}}},
		}})
	}))
	defer srv.Close()

	c := NewClient(rendererConfig(srv.URL, srv.URL, "k"))
	resp, err := c.Preview(context.Background(), port.PreviewManifest{CreativeID: "c1", FormatID: "display_300x250"})
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if len(resp.Previews) != 1 || resp.Previews[0].Renders[0].PreviewURL != "https://prev.test/r1.png" {
		t.Fatalf("unexpected preview response %+v", resp)
	}
}

func TestBuildRequiresCredential(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient(rendererConfig(srv.URL, srv.URL, ""))
	_, err := c.Build(context.Background(), port.BuildRequest{FormatID: "dynamic_banner", Message: "x"})
	if !errors.Is(err, port.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("build service must not be called without a credential")
	}
}

func TestBuildSendsBearerAndKeepsRaw(t *testing.T) {
	rawBody := `{"status":"completed","context_id":"ctx-1","creative_output":{"assets":{"generated":{"url":"https://gen.test/o.png"}},"output_format":"display_300x250"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-key" {
			t.Errorf("bad authorization header %q", got)
		}
		var breq port.BuildRequest
		if err := json.NewDecoder(r.Body).Decode(&breq); err != nil {
			t.Errorf("decode build request: %v", err)
		}
		if breq.Message != "make it pop" || !breq.Finalize {
			t.Errorf("unexpected build request %+v", breq)
		}
		w.Write([]byte(rawBody))
	}))
	defer srv.Close()

	c := NewClient(rendererConfig(srv.URL, srv.URL, "secret-key"))
	resp, err := c.Build(context.Background(), port.BuildRequest{
		FormatID: "dynamic_banner",
		Message:  "make it pop",
		Finalize: true,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if resp.Status != "completed" || resp.ContextID != "ctx-1" {
		t.Fatalf("unexpected build response %+v", resp)
	}
	if resp.CreativeOutput.OutputFormat != "display_300x250" {
		t.Fatalf("output format lost: %+v", resp.CreativeOutput)
	}
	if string(resp.Raw) != rawBody {
		t.Fatalf("raw response not preserved: %s", resp.Raw)
	}
}

func TestBuildRoutesToAgentURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/build" {
			t.Errorf("routing suffix leaked into path: %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"working"}`))
	}))
	defer srv.Close()

	c := NewClient(rendererConfig("http://unused.invalid", "http://unused.invalid", "k"))
	resp, err := c.Build(context.Background(), port.BuildRequest{
		AgentURL: srv.URL + "/mcp",
		FormatID: "dynamic_banner",
		Message:  "x",
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if resp.Status != "working" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestScorer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/score" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var sr scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&sr); err != nil {
			t.Errorf("decode score request: %v", err)
		}
		if sr.CreativeID != "c1" || sr.MediaURL != "https://cdn.test/a.png" {
			t.Errorf("unexpected score request %+v", sr)
		}
		json.NewEncoder(w).Encode(port.ReviewScore{Decision: port.ReviewApprove, Reason: "brand safe", Confidence: 0.93})
	}))
	defer srv.Close()

	s := NewScorer(configs.Review{URL: srv.URL, Timeout: 2 * time.Second})
	rec := domain.CreativeRecord{
		TenantID:   "t1",
		CreativeID: "c1",
		Name:       "Banner",
		Format:     domain.FormatRef{ID: "display_300x250"},
		Data:       domain.CreativeData{MediaURL: "https://cdn.test/a.png"},
	}
	score, err := s.Score(context.Background(), rec, &domain.FormatSpec{ID: "display_300x250", Type: domain.FormatTypeStatic})
	if err != nil {
		t.Fatalf("Score error: %v", err)
	}
	if score.Decision != port.ReviewApprove || score.Reason != "brand safe" {
		t.Fatalf("unexpected score %+v", score)
	}
}

func TestScorerRejectsUnknownDecision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"decision":"maybe"}`))
	}))
	defer srv.Close()

	s := NewScorer(configs.Review{URL: srv.URL, Timeout: 2 * time.Second})
	_, err := s.Score(context.Background(), domain.CreativeRecord{CreativeID: "c1"}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown decision") {
		t.Fatalf("expected unknown decision error, got %v", err)
	}
}
