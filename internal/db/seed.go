package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"adsync/internal/core/domain"
)

// Seed inserts demo media buys and packages so creatives can be synced
// and assigned against a fresh local database. All rows belong to the
// demo tenant and are safe to re-run.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	const tenant = "tenant-demo"

	buys := []struct {
		id       string
		status   string
		approved bool
	}{
		{"buy-autumn-push", domain.MediaBuyStatusDraft, true},
		{"buy-brand-always-on", domain.MediaBuyStatusActive, true},
		{"buy-unapproved", domain.MediaBuyStatusDraft, false},
	}
	for _, b := range buys {
		_, err := db.Exec(ctx, `INSERT INTO media_buys (id, tenant_id, status, buy_approved, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now()) ON CONFLICT DO NOTHING`,
			b.id, tenant, b.status, b.approved)
		if err != nil {
			return fmt.Errorf("seed media buy %s: %w", b.id, err)
		}
	}

	packages := []struct {
		id      string
		buyID   string
		name    string
		formats []domain.FormatRef
	}{
		{"pkg-display-premium", "buy-autumn-push", "Premium display", []domain.FormatRef{
			{ID: "display_300x250"},
			{ID: "display_728x90"},
		}},
		{"pkg-video-preroll", "buy-autumn-push", "Video pre-roll", []domain.FormatRef{
			{ID: "video_16x9"},
		}},
		{"pkg-run-of-site", "buy-brand-always-on", "Run of site", nil},
	}
	for _, p := range packages {
		formatsJSON, err := json.Marshal(p.formats)
		if err != nil {
			return err
		}
		if p.formats == nil {
			formatsJSON = []byte(`[]`)
		}
		_, err = db.Exec(ctx, `INSERT INTO packages (id, media_buy_id, tenant_id, name, formats, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`,
			p.id, p.buyID, tenant, p.name, formatsJSON)
		if err != nil {
			return fmt.Errorf("seed package %s: %w", p.id, err)
		}
	}

	return nil
}
