package domain

import "fmt"

// ApprovalMode selects how a synced creative obtains its review status.
type ApprovalMode string

const (
	// ApprovalAutoApprove marks every synced creative approved with no
	// review step.
	ApprovalAutoApprove ApprovalMode = "auto-approve"
	// ApprovalRequireHuman holds every synced creative in pending_review
	// behind a human workflow step.
	ApprovalRequireHuman ApprovalMode = "require-human"
	// ApprovalAIPowered holds the creative in pending_review and lets an
	// asynchronous AI review decide the terminal status.
	ApprovalAIPowered ApprovalMode = "ai-powered"
)

// ParseApprovalMode validates a configured mode string.
func ParseApprovalMode(s string) (ApprovalMode, error) {
	switch m := ApprovalMode(s); m {
	case ApprovalAutoApprove, ApprovalRequireHuman, ApprovalAIPowered:
		return m, nil
	default:
		return "", fmt.Errorf("unknown approval mode %q", s)
	}
}
