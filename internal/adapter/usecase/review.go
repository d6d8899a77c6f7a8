package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// reviewCandidate is a persisted creative waiting for a review workflow.
type reviewCandidate struct {
	record domain.CreativeRecord
	spec   *domain.FormatSpec
}

// stepRequest is the snapshot stored with a workflow step so a reviewer
// sees what was synced without loading the creative.
type stepRequest struct {
	CreativeID string           `json:"creative_id"`
	Name       string           `json:"name"`
	Format     domain.FormatRef `json:"format"`
	Status     string           `json:"status"`
	MediaURL   string           `json:"media_url,omitempty"`
}

// emitApprovalWorkflows creates one approval step per flagged creative and
// links the creative to it. Under the ai-powered mode it also dispatches
// the asynchronous review task. Emission failures are logged; the creative
// stays pending and a later sync can retry.
func (s *SyncService) emitApprovalWorkflows(ctx context.Context, tenantID, principalID string, flagged []reviewCandidate) {
	if len(flagged) == 0 {
		return
	}
	pol := policyFor(s.mode)

	for _, cand := range flagged {
		data, err := json.Marshal(stepRequest{
			CreativeID: cand.record.CreativeID,
			Name:       cand.record.Name,
			Format:     cand.record.Format,
			Status:     string(cand.record.Status),
			MediaURL:   cand.record.Data.MediaURL,
		})
		if err != nil {
			s.log.Error("marshal workflow step request",
				slog.String("creative_id", cand.record.CreativeID),
				slog.Any("error", err))
			continue
		}

		step, err := s.workflow.CreateStep(ctx, domain.WorkflowStep{
			TenantID:    tenantID,
			StepType:    domain.StepTypeApproval,
			ToolName:    domain.StepToolSync,
			Owner:       domain.StepOwnerReviewer,
			Status:      domain.StepStatusRequiresApproval,
			RequestData: data,
			Comment:     fmt.Sprintf("%s; status %s", pol.Comment(), cand.record.Status),
		})
		if err != nil {
			s.log.Error("create approval workflow step",
				slog.String("creative_id", cand.record.CreativeID),
				slog.Any("error", err))
			continue
		}

		err = s.workflow.LinkObject(ctx, domain.ObjectLink{
			StepID:     step.ID,
			ObjectType: domain.LinkObjectCreative,
			ObjectID:   cand.record.CreativeID,
		})
		if err != nil {
			s.log.Error("link creative to workflow step",
				slog.String("step_id", step.ID),
				slog.String("creative_id", cand.record.CreativeID),
				slog.Any("error", err))
		}

		if pol.NeedsAIReview() {
			s.dispatchReview(tenantID, principalID, cand, step.ID)
		}
	}
}

// dispatchReview hands the creative to the background task manager. The
// sync response does not wait for the verdict.
func (s *SyncService) dispatchReview(tenantID, principalID string, cand reviewCandidate, stepID string) {
	if s.scorer == nil || s.tasks == nil {
		s.log.Warn("ai review not configured, creative stays pending",
			slog.String("creative_id", cand.record.CreativeID))
		return
	}
	task, err := s.tasks.Submit("creative-review", func(ctx context.Context) error {
		return s.runReview(ctx, tenantID, principalID, cand, stepID)
	})
	if err != nil {
		s.log.Error("submit ai review task",
			slog.String("creative_id", cand.record.CreativeID),
			slog.Any("error", err))
		return
	}
	s.log.Info("ai review dispatched",
		slog.String("task_id", task.ID),
		slog.String("creative_id", cand.record.CreativeID))
}

// runReview scores one creative and applies the verdict. The status update
// moves pending_review to the scored status only; a concurrent human
// decision wins and surfaces here as a conflict error.
func (s *SyncService) runReview(ctx context.Context, tenantID, principalID string, cand reviewCandidate, stepID string) error {
	score, err := s.scorer.Score(ctx, cand.record, cand.spec)
	if err != nil {
		s.stepStatus(ctx, stepID, domain.StepStatusFailed, fmt.Sprintf("ai review failed: %v", err))
		return fmt.Errorf("score creative %s: %w", cand.record.CreativeID, err)
	}

	to := domain.StatusApproved
	if score.Decision == port.ReviewReject {
		to = domain.StatusRejected
	}
	err = s.repo.UpdateCreativeStatus(ctx, tenantID, principalID, cand.record.CreativeID, domain.StatusPendingReview, to)
	if err != nil {
		s.stepStatus(ctx, stepID, domain.StepStatusFailed, fmt.Sprintf("verdict not applied: %v", err))
		return fmt.Errorf("apply review verdict for %s: %w", cand.record.CreativeID, err)
	}

	s.stepStatus(ctx, stepID, domain.StepStatusCompleted,
		fmt.Sprintf("ai review: %s (%s)", score.Decision, score.Reason))

	if s.notifier != nil {
		ev := port.ReviewEvent{
			TenantID:    tenantID,
			PrincipalID: principalID,
			CreativeID:  cand.record.CreativeID,
			Status:      to,
			Mode:        s.mode,
			Reason:      score.Reason,
		}
		if err := s.notifier.CreativeReviewed(ctx, ev); err != nil {
			// Notification is best effort, the verdict already landed.
			s.log.Warn("review notification failed",
				slog.String("creative_id", cand.record.CreativeID),
				slog.Any("error", err))
		}
	}

	s.log.Info("creative reviewed",
		slog.String("tenant_id", tenantID),
		slog.String("creative_id", cand.record.CreativeID),
		slog.String("status", string(to)))
	return nil
}

func (s *SyncService) stepStatus(ctx context.Context, stepID, status, comment string) {
	if err := s.workflow.UpdateStepStatus(ctx, stepID, status, comment); err != nil {
		s.log.Warn("update workflow step status",
			slog.String("step_id", stepID),
			slog.Any("error", err))
	}
}
