package domain

import "time"

// MediaBuyStatus values relevant to creative assignment. A draft buy
// that already has buy-level approval moves to ready-for-review once its
// first creative lands.
const (
	MediaBuyStatusDraft          = "draft"
	MediaBuyStatusReadyForReview = "ready_for_creative_review"
	MediaBuyStatusActive         = "active"
)

// DefaultAssignmentWeight is used when the caller does not weight an
// assignment. Weights only matter relative to each other within a
// package, so any constant works as the neutral value.
const DefaultAssignmentWeight = 100

// MediaBuy is the order a package belongs to. Only the fields the
// assignment path reads are modeled here.
type MediaBuy struct {
	ID          string
	TenantID    string
	Status      string
	BuyApproved bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Package is a deliverable slot inside a media buy. Formats lists the
// creative formats the package accepts; an empty list accepts any
// format.
type Package struct {
	ID         string
	MediaBuyID string
	TenantID   string
	Name       string
	Formats    []FormatRef
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AcceptsFormat reports whether a creative of format ref may be
// assigned to this package. Namespace comparison is normalized; a
// declared format without a namespace matches the id in any namespace.
func (p *Package) AcceptsFormat(ref FormatRef) bool {
	if len(p.Formats) == 0 {
		return true
	}
	for _, f := range p.Formats {
		if f.ID != ref.ID {
			continue
		}
		if f.Namespace == "" || NormalizeNamespace(f.Namespace) == NormalizeNamespace(ref.Namespace) {
			return true
		}
	}
	return false
}

// AssignmentRecord links a creative to a package within a media buy.
// The (MediaBuyID, PackageID, CreativeID) triple is unique; re-assigning
// updates Weight in place.
type AssignmentRecord struct {
	ID         string
	MediaBuyID string
	PackageID  string
	CreativeID string
	Weight     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
