package port

import (
	"context"

	"adsync/internal/core/domain"
)

// Review decisions returned by a scorer.
const (
	ReviewApprove = "approve"
	ReviewReject  = "reject"
)

// ReviewScore is the outcome of one AI review.
type ReviewScore struct {
	Decision   string  `json:"decision"`
	Reason     string  `json:"reason,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// CreativeScorer judges a pending creative asynchronously. Implemented
// by the AI review service client.
type CreativeScorer interface {
	Score(ctx context.Context, rec domain.CreativeRecord, spec *domain.FormatSpec) (*ReviewScore, error)
}
