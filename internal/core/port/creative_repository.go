package port

import (
	"context"
	"errors"

	"adsync/internal/core/domain"
)

var (
	ErrCreativeNotFound = errors.New("creative not found")
	ErrPackageNotFound  = errors.New("package not found")
	// ErrStatusConflict means a guarded status transition found the
	// creative in a different state than expected.
	ErrStatusConflict = errors.New("creative status conflict")
)

// CreativeRepository is the persistence port for creatives, packages and
// assignments. Each UpsertCreative call runs in its own unit of work so
// one creative's failure never rolls back another's committed writes.
type CreativeRepository interface {
	// GetCreative returns the record owned by (tenant, principal), nil
	// when absent.
	GetCreative(ctx context.Context, tenantID, principalID, creativeID string) (*domain.CreativeRecord, error)
	// UpsertCreative merges and persists one creative in an isolated
	// transaction, applying the caller-wins rule field by field.
	UpsertCreative(ctx context.Context, tenantID, principalID string, vc domain.ValidatedCreative, render *domain.RenderOutput, status domain.CreativeStatus) (*UpsertResult, error)
	// UpdateCreativeStatus transitions the creative from `from` to `to`.
	// Returns ErrStatusConflict when the stored status is not `from`,
	// ErrCreativeNotFound when the record is gone.
	UpdateCreativeStatus(ctx context.Context, tenantID, principalID, creativeID string, from, to domain.CreativeStatus) error

	// GetPackage returns the package with its owning media buy id and
	// declared formats, nil when absent for this tenant.
	GetPackage(ctx context.Context, tenantID, packageID string) (*domain.Package, error)
	// UpsertAssignment links a creative to a package. Idempotent on the
	// (media buy, package, creative) triple: replays update the weight.
	UpsertAssignment(ctx context.Context, a domain.AssignmentRecord) (*domain.AssignmentRecord, error)
	// MarkMediaBuyUnderReview moves an approved draft buy to the
	// ready-for-creative-review state. Reports whether a transition
	// happened.
	MarkMediaBuyUnderReview(ctx context.Context, tenantID, mediaBuyID string) (bool, error)
}

// UpsertResult reports what UpsertCreative did.
type UpsertResult struct {
	Record  domain.CreativeRecord
	Changed []string
	Created bool
}
