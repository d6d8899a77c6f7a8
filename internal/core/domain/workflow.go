package domain

import (
	"encoding/json"
	"time"
)

// Workflow step vocabulary for the creative review flow.
const (
	StepTypeApproval  = "approval"
	StepOwnerReviewer = "publisher_reviewer"
	StepToolSync      = "sync_creatives"

	StepStatusRequiresApproval = "requires_approval"
	StepStatusCompleted        = "completed"
	StepStatusFailed           = "failed"

	// LinkObjectCreative is the object type of a step-to-creative link.
	LinkObjectCreative = "creative"
)

// WorkflowStep is one human- or AI-facing review task. RequestData
// carries a snapshot of the triggering request so a reviewer sees what
// was submitted.
type WorkflowStep struct {
	ID          string
	TenantID    string
	StepType    string
	ToolName    string
	Owner       string
	Status      string
	RequestData json.RawMessage
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ObjectLink ties a workflow step to the domain object under review.
type ObjectLink struct {
	StepID     string
	ObjectType string
	ObjectID   string
	CreatedAt  time.Time
}
