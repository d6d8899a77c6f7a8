package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"adsync/internal/config/configs"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// Scorer asks the AI review service to judge a pending creative. Used by
// the ai-powered approval mode from a background task, never from the
// request path.
type Scorer struct {
	http *http.Client
	url  string
}

var _ port.CreativeScorer = (*Scorer)(nil)

func NewScorer(cfg configs.Review) *Scorer {
	return &Scorer{
		http: &http.Client{Timeout: cfg.Timeout},
		url:  strings.TrimRight(cfg.URL, "/"),
	}
}

type scoreRequest struct {
	CreativeID string                  `json:"creative_id"`
	TenantID   string                  `json:"tenant_id"`
	Name       string                  `json:"name"`
	FormatID   string                  `json:"format_id"`
	FormatType domain.FormatType       `json:"format_type,omitempty"`
	MediaURL   string                  `json:"media_url,omitempty"`
	Assets     map[string]domain.Asset `json:"assets,omitempty"`
}

// Score implements port.CreativeScorer.
func (s *Scorer) Score(ctx context.Context, rec domain.CreativeRecord, spec *domain.FormatSpec) (*port.ReviewScore, error) {
	payload := scoreRequest{
		CreativeID: rec.CreativeID,
		TenantID:   rec.TenantID,
		Name:       rec.Name,
		FormatID:   rec.Format.ID,
		MediaURL:   rec.Data.MediaURL,
		Assets:     rec.Data.Assets,
	}
	if spec != nil {
		payload.FormatType = spec.Type
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("review service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("review service returned %d", resp.StatusCode)
	}

	var score port.ReviewScore
	if err = json.NewDecoder(resp.Body).Decode(&score); err != nil {
		return nil, fmt.Errorf("decode score response: %w", err)
	}
	if score.Decision != port.ReviewApprove && score.Decision != port.ReviewReject {
		return nil, fmt.Errorf("review service returned unknown decision %q", score.Decision)
	}
	return &score, nil
}
