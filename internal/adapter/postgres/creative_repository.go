package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// CreativeRepository implements port.CreativeRepository using pgxpool.
// Every upsert runs in its own transaction, so a failing creative in a
// batch never touches what earlier creatives already committed.
type CreativeRepository struct {
	pool *pgxpool.Pool
}

var _ port.CreativeRepository = (*CreativeRepository)(nil)

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool *pgxpool.Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

const creativeColumns = `tenant_id, principal_id, creative_id, name, format_namespace, format_id, status, data, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCreative(row rowScanner) (*domain.CreativeRecord, error) {
	var (
		rec     domain.CreativeRecord
		status  string
		dataRaw []byte
	)
	err := row.Scan(
		&rec.TenantID,
		&rec.PrincipalID,
		&rec.CreativeID,
		&rec.Name,
		&rec.Format.Namespace,
		&rec.Format.ID,
		&status,
		&dataRaw,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.Status = domain.CreativeStatus(status)
	if len(dataRaw) > 0 {
		if err = json.Unmarshal(dataRaw, &rec.Data); err != nil {
			return nil, fmt.Errorf("decode creative data: %w", err)
		}
	}
	return &rec, nil
}

// GetCreative returns the creative owned by (tenant, principal), nil
// when no such record exists.
func (r *CreativeRepository) GetCreative(ctx context.Context, tenantID, principalID, creativeID string) (*domain.CreativeRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+creativeColumns+` FROM creatives WHERE tenant_id = $1 AND principal_id = $2 AND creative_id = $3`,
		tenantID, principalID, creativeID)
	return scanCreative(row)
}

// UpsertCreative merges and persists one creative inside an isolated
// transaction. The existing row is locked for the duration of the merge
// so concurrent syncs of the same creative serialize instead of losing
// writes. Ownership is immutable: the lookup is always scoped by both
// tenant and principal, so a record can never migrate to another
// principal through this path.
func (r *CreativeRepository) UpsertCreative(ctx context.Context, tenantID, principalID string, vc domain.ValidatedCreative, render *domain.RenderOutput, status domain.CreativeStatus) (res *port.UpsertResult, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx,
		`SELECT `+creativeColumns+` FROM creatives WHERE tenant_id = $1 AND principal_id = $2 AND creative_id = $3 FOR UPDATE`,
		tenantID, principalID, vc.CreativeID)
	existing, err := scanCreative(row)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec, changed := domain.BuildUpsertRecord(existing, vc, render, status, now)
	rec.TenantID = tenantID
	rec.PrincipalID = principalID

	dataRaw, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("encode creative data: %w", err)
	}

	if existing == nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO creatives (`+creativeColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			rec.TenantID, rec.PrincipalID, rec.CreativeID, rec.Name,
			rec.Format.Namespace, rec.Format.ID, string(rec.Status), dataRaw,
			rec.CreatedAt, rec.UpdatedAt)
	} else {
		_, err = tx.Exec(ctx,
			`UPDATE creatives SET name = $4, format_namespace = $5, format_id = $6, status = $7, data = $8, updated_at = $9
			 WHERE tenant_id = $1 AND principal_id = $2 AND creative_id = $3`,
			rec.TenantID, rec.PrincipalID, rec.CreativeID, rec.Name,
			rec.Format.Namespace, rec.Format.ID, string(rec.Status), dataRaw,
			rec.UpdatedAt)
	}
	if err != nil {
		return nil, err
	}

	return &port.UpsertResult{Record: rec, Changed: changed, Created: existing == nil}, nil
}

// UpdateCreativeStatus performs the guarded review transition. The row
// is locked first so two concurrent reviews cannot both move the same
// creative out of pending.
func (r *CreativeRepository) UpdateCreativeStatus(ctx context.Context, tenantID, principalID, creativeID string, from, to domain.CreativeStatus) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var current string
	err = tx.QueryRow(ctx,
		`SELECT status FROM creatives WHERE tenant_id = $1 AND principal_id = $2 AND creative_id = $3 FOR UPDATE`,
		tenantID, principalID, creativeID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("creative %s: %w", creativeID, port.ErrCreativeNotFound)
	}
	if err != nil {
		return err
	}
	if domain.CreativeStatus(current) != from {
		return fmt.Errorf("creative %s is %s, expected %s: %w", creativeID, current, from, port.ErrStatusConflict)
	}

	_, err = tx.Exec(ctx,
		`UPDATE creatives SET status = $4, updated_at = $5 WHERE tenant_id = $1 AND principal_id = $2 AND creative_id = $3`,
		tenantID, principalID, creativeID, string(to), time.Now().UTC())
	return err
}

// GetPackage returns the package with its declared formats, nil when it
// does not exist for this tenant.
func (r *CreativeRepository) GetPackage(ctx context.Context, tenantID, packageID string) (*domain.Package, error) {
	var (
		p          domain.Package
		formatsRaw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, media_buy_id, tenant_id, name, formats, created_at, updated_at FROM packages WHERE tenant_id = $1 AND id = $2`,
		tenantID, packageID).
		Scan(&p.ID, &p.MediaBuyID, &p.TenantID, &p.Name, &formatsRaw, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(formatsRaw) > 0 {
		if err = json.Unmarshal(formatsRaw, &p.Formats); err != nil {
			return nil, fmt.Errorf("decode package formats: %w", err)
		}
	}
	return &p, nil
}

// UpsertAssignment links a creative to a package. Replaying the same
// triple updates the weight in place instead of inserting a duplicate.
func (r *CreativeRepository) UpsertAssignment(ctx context.Context, a domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
	now := time.Now().UTC()
	var out domain.AssignmentRecord
	err := r.pool.QueryRow(ctx,
		`INSERT INTO creative_assignments (id, media_buy_id, package_id, creative_id, weight, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$6)
		 ON CONFLICT (media_buy_id, package_id, creative_id)
		 DO UPDATE SET weight = EXCLUDED.weight, updated_at = EXCLUDED.updated_at
		 RETURNING id, media_buy_id, package_id, creative_id, weight, created_at, updated_at`,
		a.ID, a.MediaBuyID, a.PackageID, a.CreativeID, a.Weight, now).
		Scan(&out.ID, &out.MediaBuyID, &out.PackageID, &out.CreativeID, &out.Weight, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkMediaBuyUnderReview transitions an approved draft buy to the
// ready-for-creative-review state. Reports whether the transition
// actually happened.
func (r *CreativeRepository) MarkMediaBuyUnderReview(ctx context.Context, tenantID, mediaBuyID string) (moved bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var (
		status      string
		buyApproved bool
	)
	err = tx.QueryRow(ctx,
		`SELECT status, buy_approved FROM media_buys WHERE tenant_id = $1 AND id = $2 FOR UPDATE`,
		tenantID, mediaBuyID).Scan(&status, &buyApproved)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("media buy %s not found", mediaBuyID)
	}
	if err != nil {
		return false, err
	}

	if status != domain.MediaBuyStatusDraft || !buyApproved {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE media_buys SET status = $3, updated_at = $4 WHERE tenant_id = $1 AND id = $2`,
		tenantID, mediaBuyID, domain.MediaBuyStatusReadyForReview, time.Now().UTC())
	if err != nil {
		return false, err
	}
	return true, nil
}
