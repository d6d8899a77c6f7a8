package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"adsync/internal/config/configs"
	"adsync/internal/core/port"
)

// Webhook delivers review events with a single POST. Delivery failures
// are returned to the caller, which logs and moves on; a lost
// notification never fails a review.
type Webhook struct {
	http *http.Client
	url  string
}

var _ port.Notifier = (*Webhook)(nil)

func NewWebhook(cfg configs.Notify) *Webhook {
	return &Webhook{
		http: &http.Client{Timeout: cfg.Timeout},
		url:  cfg.WebhookURL,
	}
}

// CreativeReviewed implements port.Notifier.
func (w *Webhook) CreativeReviewed(ctx context.Context, ev port.ReviewEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode review event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("deliver review webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("review webhook returned %d", resp.StatusCode)
	}
	return nil
}
