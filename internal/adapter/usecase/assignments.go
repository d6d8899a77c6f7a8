package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// processAssignments links synced creatives to delivery packages. It runs
// only after every creative has a terminal result, walks pairs in request
// order, and applies the validation mode: strict aborts the phase on the
// first failed pair, lenient records the failure on the creative's result
// and keeps going. The returned error is always a *port.AssignmentError.
func (s *SyncService) processAssignments(ctx context.Context, req port.SyncRequest, resp *port.SyncResponse, formats map[string]domain.FormatRef, mode domain.ValidationMode) error {
	reviewedBuys := make(map[string]bool)

	for i := range resp.Results {
		res := &resp.Results[i]
		pkgIDs, ok := req.Assignments[res.CreativeID]
		if !ok {
			continue
		}
		for _, pkgID := range pkgIDs {
			var reason string
			if res.Action == domain.ActionFailed {
				reason = "creative failed earlier in this batch"
			} else {
				reason = s.assignOne(ctx, req, res, formats[res.CreativeID], pkgID, reviewedBuys)
			}
			if reason == "" {
				continue
			}
			if mode == domain.ValidationStrict {
				return &port.AssignmentError{
					CreativeID: res.CreativeID,
					PackageID:  pkgID,
					Reason:     reason,
				}
			}
			if res.AssignmentErrors == nil {
				res.AssignmentErrors = make(map[string]string)
			}
			res.AssignmentErrors[pkgID] = reason
		}
	}

	for _, id := range unknownAssignmentKeys(req.Assignments, resp.Results) {
		if mode == domain.ValidationStrict {
			return &port.AssignmentError{
				CreativeID: id,
				Reason:     "creative is not part of this sync batch",
			}
		}
		s.log.Warn("assignment references unknown creative",
			slog.String("tenant_id", req.TenantID),
			slog.String("creative_id", id))
	}
	return nil
}

// assignOne links one creative to one package. It returns an empty string
// on success and a human-readable reason on failure.
func (s *SyncService) assignOne(ctx context.Context, req port.SyncRequest, res *port.SyncResult, ref domain.FormatRef, pkgID string, reviewedBuys map[string]bool) string {
	pkg, err := s.repo.GetPackage(ctx, req.TenantID, pkgID)
	if err != nil {
		return fmt.Sprintf("look up package %s: %v", pkgID, err)
	}
	if pkg == nil {
		return fmt.Sprintf("package %s not found for tenant %s", pkgID, req.TenantID)
	}

	if !pkg.AcceptsFormat(ref) {
		declared := make([]string, 0, len(pkg.Formats))
		for _, f := range pkg.Formats {
			declared = append(declared, f.String())
		}
		return fmt.Sprintf("creative format %s does not match package %s formats [%s]",
			ref, pkg.ID, strings.Join(declared, ", "))
	}

	if req.DryRun {
		res.AssignedPackageIDs = append(res.AssignedPackageIDs, pkg.ID)
		return ""
	}

	rec := domain.AssignmentRecord{
		ID:         uuid.NewString(),
		MediaBuyID: pkg.MediaBuyID,
		PackageID:  pkg.ID,
		CreativeID: res.CreativeID,
		Weight:     domain.DefaultAssignmentWeight,
	}
	if _, err := s.repo.UpsertAssignment(ctx, rec); err != nil {
		return fmt.Sprintf("store assignment for package %s: %v", pkg.ID, err)
	}
	res.AssignedPackageIDs = append(res.AssignedPackageIDs, pkg.ID)

	// The media buy transition runs once per buy per batch, on the first
	// assignment touching it. Its failure never undoes the assignment.
	if !reviewedBuys[pkg.MediaBuyID] {
		reviewedBuys[pkg.MediaBuyID] = true
		moved, err := s.repo.MarkMediaBuyUnderReview(ctx, req.TenantID, pkg.MediaBuyID)
		switch {
		case err != nil:
			s.log.Warn("media buy review transition failed",
				slog.String("media_buy_id", pkg.MediaBuyID),
				slog.Any("error", err))
		case moved:
			s.log.Info("media buy moved to creative review",
				slog.String("tenant_id", req.TenantID),
				slog.String("media_buy_id", pkg.MediaBuyID))
		}
	}
	return ""
}

// unknownAssignmentKeys returns assignment keys that match none of the
// batch results, sorted for deterministic reporting.
func unknownAssignmentKeys(assignments map[string][]string, results []port.SyncResult) []string {
	known := make(map[string]bool, len(results))
	for _, r := range results {
		known[r.CreativeID] = true
	}
	var unknown []string
	for id := range assignments {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}
