package port

import (
	"context"
	"errors"

	"adsync/internal/core/domain"
)

var (
	// ErrFormatNotFound means the registry answered and does not know the
	// format. Remediation: pick a different format.
	ErrFormatNotFound = errors.New("format not found")
	// ErrFormatUnreachable means the registry could not be reached at
	// all. Remediation: retry later. Never conflated with not-found.
	ErrFormatUnreachable = errors.New("format registry unreachable")
)

// FormatRegistry resolves creative format references against external
// format registries. Implementations cache successful resolutions with a
// bounded TTL and must be safe for concurrent use.
type FormatRegistry interface {
	// Resolve fetches the format definition for ref, from cache when
	// fresh. Returns ErrFormatNotFound or ErrFormatUnreachable (possibly
	// wrapped) on failure.
	Resolve(ctx context.Context, ref domain.FormatRef) (*domain.FormatSpec, error)
	// ListAll returns every format the default registry advertises for
	// the tenant. Never called inside an open unit of work.
	ListAll(ctx context.Context, tenantID string) ([]domain.FormatSpec, error)
}
