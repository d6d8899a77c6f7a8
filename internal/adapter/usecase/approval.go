package usecase

import "adsync/internal/core/domain"

// approvalPolicy is the closed set of strategies behind the approval
// mode. Each variant owns the initial status of an upserted creative and
// the side effects that follow persistence, so call sites dispatch once
// instead of re-checking the mode everywhere.
type approvalPolicy interface {
	// InitialStatus is the review status assigned during upsert.
	InitialStatus() domain.CreativeStatus
	// NeedsWorkflow reports whether a review workflow step is created.
	NeedsWorkflow() bool
	// NeedsAIReview reports whether an asynchronous AI review is
	// dispatched after the workflow step exists.
	NeedsAIReview() bool
	// Comment is the mode-specific wording for the workflow step.
	Comment() string
}

type autoApprovePolicy struct{}

func (autoApprovePolicy) InitialStatus() domain.CreativeStatus { return domain.StatusApproved }
func (autoApprovePolicy) NeedsWorkflow() bool                  { return false }
func (autoApprovePolicy) NeedsAIReview() bool                  { return false }
func (autoApprovePolicy) Comment() string                      { return "auto-approved" }

type requireHumanPolicy struct{}

func (requireHumanPolicy) InitialStatus() domain.CreativeStatus { return domain.StatusPendingReview }
func (requireHumanPolicy) NeedsWorkflow() bool                  { return true }
func (requireHumanPolicy) NeedsAIReview() bool                  { return false }
func (requireHumanPolicy) Comment() string                      { return "awaiting human review" }

type aiPoweredPolicy struct{}

func (aiPoweredPolicy) InitialStatus() domain.CreativeStatus { return domain.StatusPendingReview }
func (aiPoweredPolicy) NeedsWorkflow() bool                  { return true }
func (aiPoweredPolicy) NeedsAIReview() bool                  { return true }
func (aiPoweredPolicy) Comment() string                      { return "queued for AI review" }

func policyFor(mode domain.ApprovalMode) approvalPolicy {
	switch mode {
	case domain.ApprovalRequireHuman:
		return requireHumanPolicy{}
	case domain.ApprovalAIPowered:
		return aiPoweredPolicy{}
	default:
		return autoApprovePolicy{}
	}
}
