package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// WorkflowRepository implements port.WorkflowRepository using pgxpool.
type WorkflowRepository struct {
	pool *pgxpool.Pool
}

var _ port.WorkflowRepository = (*WorkflowRepository)(nil)

// NewWorkflowRepository returns a new repository instance.
func NewWorkflowRepository(pool *pgxpool.Pool) *WorkflowRepository {
	return &WorkflowRepository{pool: pool}
}

// CreateStep stores a new workflow step. A missing id is generated.
func (r *WorkflowRepository) CreateStep(ctx context.Context, step domain.WorkflowStep) (*domain.WorkflowStep, error) {
	if step.ID == "" {
		step.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	step.CreatedAt = now
	step.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO workflow_steps (id, tenant_id, step_type, tool_name, owner, status, request_data, comment, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		step.ID, step.TenantID, step.StepType, step.ToolName, step.Owner,
		step.Status, []byte(step.RequestData), step.Comment, step.CreatedAt, step.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// LinkObject ties a step to the object under review. Relinking the same
// object is a no-op.
func (r *WorkflowRepository) LinkObject(ctx context.Context, link domain.ObjectLink) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO workflow_object_links (step_id, object_type, object_id, created_at)
		 VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
		link.StepID, link.ObjectType, link.ObjectID, time.Now().UTC())
	return err
}

// UpdateStepStatus closes or advances a step with a comment.
func (r *WorkflowRepository) UpdateStepStatus(ctx context.Context, stepID, status, comment string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE workflow_steps SET status = $2, comment = $3, updated_at = $4 WHERE id = $1`,
		stepID, status, comment, time.Now().UTC())
	return err
}
