package port

import (
	"context"

	"adsync/internal/core/domain"
)

// ReviewEvent describes a completed creative review.
type ReviewEvent struct {
	TenantID    string                `json:"tenant_id"`
	PrincipalID string                `json:"principal_id"`
	CreativeID  string                `json:"creative_id"`
	Status      domain.CreativeStatus `json:"status"`
	Mode        domain.ApprovalMode   `json:"approval_mode"`
	Reason      string                `json:"reason,omitempty"`
}

// Notifier delivers fire-and-forget review notifications. Failures are
// logged by the caller and never fail the sync operation.
type Notifier interface {
	CreativeReviewed(ctx context.Context, ev ReviewEvent) error
}
