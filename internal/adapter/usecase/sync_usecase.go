package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/worker"
)

// SyncService drives the creative sync pipeline: validation against the
// format registry, render dispatch, merge upsert, package assignment and
// approval workflow emission.
type SyncService struct {
	repo     port.CreativeRepository
	registry port.FormatRegistry
	renderer port.Renderer
	workflow port.WorkflowRepository
	scorer   port.CreativeScorer
	notifier port.Notifier
	tasks    *worker.Manager
	mode     domain.ApprovalMode
	log      *slog.Logger
}

// Config carries the dependencies of SyncService. Scorer, Notifier and
// Tasks are optional; the matching features degrade to a logged warning
// when they are absent.
type Config struct {
	Repo     port.CreativeRepository
	Registry port.FormatRegistry
	Renderer port.Renderer
	Workflow port.WorkflowRepository
	Scorer   port.CreativeScorer
	Notifier port.Notifier
	Tasks    *worker.Manager
	Mode     domain.ApprovalMode
	Logger   *slog.Logger
}

func NewSyncService(cfg Config) *SyncService {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &SyncService{
		repo:     cfg.Repo,
		registry: cfg.Registry,
		renderer: cfg.Renderer,
		workflow: cfg.Workflow,
		scorer:   cfg.Scorer,
		notifier: cfg.Notifier,
		tasks:    cfg.Tasks,
		mode:     cfg.Mode,
		log:      log,
	}
}

var _ port.SyncUseCase = (*SyncService)(nil)

// SyncCreatives processes a batch of creative descriptors. Every creative
// reaches a terminal result before assignments are processed, and a failure
// of one creative never aborts the others. In strict validation mode the
// first assignment failure stops the assignment phase and is returned as a
// *port.AssignmentError alongside the per-creative results. Approval
// workflows are emitted last, after the assignment phase, whether or not
// that phase aborted.
func (s *SyncService) SyncCreatives(ctx context.Context, req port.SyncRequest) (*port.SyncResponse, error) {
	mode := req.ValidationMode
	if !mode.Valid() {
		mode = domain.ValidationStrict
	}

	descriptors := filterCreatives(req.Creatives, req.CreativeIDs)

	resp := &port.SyncResponse{
		Results: make([]port.SyncResult, 0, len(descriptors)),
		DryRun:  req.DryRun,
		Context: req.Context,
	}

	formats := make(map[string]domain.FormatRef, len(descriptors))
	var flagged []reviewCandidate

	for _, desc := range descriptors {
		out := s.syncOne(ctx, req, desc)
		resp.Results = append(resp.Results, out.result)
		if out.result.Action != domain.ActionFailed {
			formats[out.result.CreativeID] = out.format
		}
		if out.flagged != nil {
			flagged = append(flagged, *out.flagged)
		}
	}

	var assignErr error
	if len(req.Assignments) > 0 {
		assignErr = s.processAssignments(ctx, req, resp, formats, mode)
	}

	// Workflow emission runs last, once assignment rows are durable. A
	// strict abort does not skip it: the flagged creatives are already
	// persisted and keep their review step.
	if !req.DryRun {
		s.emitApprovalWorkflows(ctx, req.TenantID, req.PrincipalID, flagged)
	}

	if assignErr != nil {
		return resp, assignErr
	}
	return resp, nil
}

// ListFormats returns every format the registry advertises for the tenant.
func (s *SyncService) ListFormats(ctx context.Context, tenantID string) ([]domain.FormatSpec, error) {
	specs, err := s.registry.ListAll(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	return specs, nil
}

// itemOutcome is the terminal state of a single creative in the batch.
type itemOutcome struct {
	result  port.SyncResult
	format  domain.FormatRef
	flagged *reviewCandidate
}

func (s *SyncService) syncOne(ctx context.Context, req port.SyncRequest, desc domain.CreativeDescriptor) itemOutcome {
	out := itemOutcome{result: port.SyncResult{
		CreativeID: desc.CreativeID,
		Action:     domain.ActionFailed,
	}}

	vc, err := s.validate(ctx, desc)
	if vc.CreativeID != "" {
		out.result.CreativeID = vc.CreativeID
	}
	if err != nil {
		out.result.Errors = append(out.result.Errors, err.Error())
		return out
	}
	out.format = vc.Format

	existing, err := s.repo.GetCreative(ctx, req.TenantID, req.PrincipalID, vc.CreativeID)
	if err != nil {
		out.result.Errors = append(out.result.Errors, fmt.Sprintf("load creative: %v", err))
		return out
	}

	render, err := s.dispatchRender(ctx, vc, existing)
	if err != nil {
		out.result.Errors = append(out.result.Errors, err.Error())
		return out
	}

	pol := policyFor(s.mode)
	status := pol.InitialStatus()

	if req.DryRun {
		_, changed := domain.BuildUpsertRecord(existing, vc, render, status, time.Now().UTC())
		out.result.Action = classify(existing == nil, changed)
		out.result.Status = status
		out.result.Changed = changed
		return out
	}

	up, err := s.repo.UpsertCreative(ctx, req.TenantID, req.PrincipalID, vc, render, status)
	if err != nil {
		out.result.Errors = append(out.result.Errors, fmt.Sprintf("persist creative: %v", err))
		return out
	}

	out.result.Action = classify(up.Created, up.Changed)
	out.result.Status = up.Record.Status
	out.result.Changed = up.Changed

	if pol.NeedsWorkflow() {
		out.flagged = &reviewCandidate{record: up.Record, spec: vc.Spec}
	}
	return out
}

// validate checks a descriptor and resolves its format against the
// registry. It performs no persistence. A missing creative id is filled
// with a generated one so the caller can correlate the result.
func (s *SyncService) validate(ctx context.Context, desc domain.CreativeDescriptor) (domain.ValidatedCreative, error) {
	vc := domain.ValidatedCreative{CreativeID: desc.CreativeID}
	if vc.CreativeID == "" {
		vc.CreativeID = uuid.NewString()
	}

	name := strings.TrimSpace(desc.Name)
	if name == "" {
		return vc, errors.New("creative name cannot be empty")
	}
	vc.Name = name

	if desc.Format.ID == "" {
		return vc, errors.New("creative format reference is required")
	}

	spec, err := s.registry.Resolve(ctx, desc.Format)
	switch {
	case errors.Is(err, port.ErrFormatNotFound):
		return vc, fmt.Errorf("format %s not found: re-run discovery for available formats", desc.Format)
	case errors.Is(err, port.ErrFormatUnreachable):
		return vc, fmt.Errorf("format registry unreachable for %s: retry once the registry recovers", desc.Format)
	case err != nil:
		return vc, fmt.Errorf("resolve format %s: %v", desc.Format, err)
	}

	vc.Format = desc.Format
	vc.Spec = spec
	vc.Assets = desc.Assets
	vc.Inputs = desc.Inputs
	vc.Approve = desc.Approve != nil && *desc.Approve
	return vc, nil
}

// filterCreatives applies the optional creative id filter. A nil filter
// keeps the whole batch, an empty one keeps nothing.
func filterCreatives(creatives []domain.CreativeDescriptor, ids []string) []domain.CreativeDescriptor {
	if ids == nil {
		return creatives
	}
	allowed := make(map[string]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	out := make([]domain.CreativeDescriptor, 0, len(creatives))
	for _, c := range creatives {
		if allowed[c.CreativeID] {
			out = append(out, c)
		}
	}
	return out
}

func classify(created bool, changed []string) domain.SyncAction {
	switch {
	case created:
		return domain.ActionCreated
	case len(changed) > 0:
		return domain.ActionUpdated
	default:
		return domain.ActionUnchanged
	}
}
