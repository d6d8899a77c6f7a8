package port

import (
	"context"
	"encoding/json"
	"fmt"

	"adsync/internal/core/domain"
)

// SyncUseCase is the primary port into the creative pipeline. Mock
// implementations can be generated from this interface for testing.
type SyncUseCase interface {
	// SyncCreatives validates, renders, persists and assigns a batch of
	// creatives. The response always carries one result per input
	// creative in input order, even when err is non-nil: a strict-mode
	// assignment abort returns both the response built so far and an
	// *AssignmentError.
	SyncCreatives(ctx context.Context, req SyncRequest) (*SyncResponse, error)
	// ListFormats returns the formats the default registry advertises.
	ListFormats(ctx context.Context, tenantID string) ([]domain.FormatSpec, error)
}

// SyncRequest is one batch sync invocation.
type SyncRequest struct {
	TenantID    string
	PrincipalID string
	Creatives   []domain.CreativeDescriptor
	// Assignments maps creative id to the package ids it should be
	// linked to. Processed only after every creative has a terminal
	// per-item outcome.
	Assignments map[string][]string
	// CreativeIDs filters the payload: nil processes everything, an
	// empty non-nil slice processes nothing, anything else intersects
	// with the payload.
	CreativeIDs []string
	// DryRun computes every result but suppresses all persistence and
	// side effects.
	DryRun         bool
	ValidationMode domain.ValidationMode
	// Context is an opaque caller blob echoed back unchanged.
	Context json.RawMessage
}

// SyncResult is the per-creative outcome, reported 1:1 with the input.
type SyncResult struct {
	CreativeID string
	Action     domain.SyncAction
	Status     domain.CreativeStatus
	Changed    []string
	Errors     []string
	// AssignedPackageIDs lists successful assignments for this creative.
	AssignedPackageIDs []string
	// AssignmentErrors maps package id to the failure recorded in
	// lenient mode.
	AssignmentErrors map[string]string
}

type SyncResponse struct {
	Results []SyncResult
	DryRun  bool
	Context json.RawMessage
}

// AssignmentError aborts the assignment phase in strict validation mode.
// It always names the creative and package it concerns.
type AssignmentError struct {
	CreativeID string
	PackageID  string
	Reason     string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("assignment of creative %q to package %q failed: %s", e.CreativeID, e.PackageID, e.Reason)
}
