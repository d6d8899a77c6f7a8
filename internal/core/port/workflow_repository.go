package port

import (
	"context"

	"adsync/internal/core/domain"
)

// WorkflowRepository persists review workflow steps and their links to
// the objects under review.
type WorkflowRepository interface {
	// CreateStep stores a new workflow step and returns it with
	// timestamps filled in.
	CreateStep(ctx context.Context, step domain.WorkflowStep) (*domain.WorkflowStep, error)
	// LinkObject ties an existing step to a domain object.
	LinkObject(ctx context.Context, link domain.ObjectLink) error
	// UpdateStepStatus moves a step to a new status with a closing
	// comment.
	UpdateStepStatus(ctx context.Context, stepID, status, comment string) error
}
