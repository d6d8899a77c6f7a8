package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/core/port/mocks"
)

// expectStaticPipeline wires the happy-path mocks for one static creative
// so assignment tests can focus on the linking phase.
func expectStaticPipeline(repo *mocks.MockCreativeRepository, registry *mocks.MockFormatRegistry, renderer *mocks.MockRenderer, desc domain.CreativeDescriptor) {
	registry.EXPECT().Resolve(mock.Anything, desc.Format).Return(staticSpec(), nil)
	repo.EXPECT().
		GetCreative(mock.Anything, "tenant-1", "principal-1", desc.CreativeID).
		Return(nil, nil)
	renderer.EXPECT().
		Preview(mock.Anything, mock.Anything).
		Return(previewResponse("https://preview.example.com/"+desc.CreativeID, 300, 250), nil)
	upsertFromMerge(repo, nil)
}

func TestSyncAssignmentLinksAndMarksBuyOnce(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	expectStaticPipeline(repo, registry, renderer, desc)

	repo.EXPECT().GetPackage(mock.Anything, "tenant-1", "pkg-1").Return(&domain.Package{
		ID:         "pkg-1",
		MediaBuyID: "buy-1",
		TenantID:   "tenant-1",
		Formats:    []domain.FormatRef{{ID: "display_300x250"}},
	}, nil)
	repo.EXPECT().GetPackage(mock.Anything, "tenant-1", "pkg-2").Return(&domain.Package{
		ID:         "pkg-2",
		MediaBuyID: "buy-1",
		TenantID:   "tenant-1",
	}, nil)

	var linked []domain.AssignmentRecord
	repo.EXPECT().
		UpsertAssignment(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, a domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
			linked = append(linked, a)
			return &a, nil
		})
	repo.EXPECT().
		MarkMediaBuyUnderReview(mock.Anything, "tenant-1", "buy-1").
		Return(true, nil).
		Once()

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	resp, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:    "tenant-1",
		PrincipalID: "principal-1",
		Creatives:   []domain.CreativeDescriptor{desc},
		Assignments: map[string][]string{"c1": {"pkg-1", "pkg-2"}},
	})
	if err != nil {
		t.Fatalf("SyncCreatives error: %v", err)
	}
	res := resp.Results[0]
	if len(res.AssignedPackageIDs) != 2 || res.AssignedPackageIDs[0] != "pkg-1" || res.AssignedPackageIDs[1] != "pkg-2" {
		t.Fatalf("unexpected assigned packages: %v", res.AssignedPackageIDs)
	}
	if len(linked) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(linked))
	}
	for _, a := range linked {
		if a.ID == "" {
			t.Fatalf("assignment id should be generated")
		}
		if a.MediaBuyID != "buy-1" || a.CreativeID != "c1" {
			t.Fatalf("unexpected assignment: %+v", a)
		}
		if a.Weight != domain.DefaultAssignmentWeight {
			t.Fatalf("expected default weight, got %d", a.Weight)
		}
	}
}

func TestSyncAssignmentStrictMismatchAborts(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	expectStaticPipeline(repo, registry, renderer, desc)

	repo.EXPECT().GetPackage(mock.Anything, "tenant-1", "pkg-video").Return(&domain.Package{
		ID:         "pkg-video",
		MediaBuyID: "buy-1",
		TenantID:   "tenant-1",
		Formats:    []domain.FormatRef{{Namespace: "https://formats.example.com", ID: "video_16x9"}},
	}, nil)

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	resp, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:       "tenant-1",
		PrincipalID:    "principal-1",
		Creatives:      []domain.CreativeDescriptor{desc},
		Assignments:    map[string][]string{"c1": {"pkg-video"}},
		ValidationMode: domain.ValidationStrict,
	})
	if err == nil {
		t.Fatalf("expected strict mode to abort the assignment phase")
	}
	var aerr *port.AssignmentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *port.AssignmentError, got %T", err)
	}
	if aerr.CreativeID != "c1" || aerr.PackageID != "pkg-video" {
		t.Fatalf("error should name the failing pair, got %+v", aerr)
	}
	if !strings.Contains(aerr.Reason, "display_300x250") || !strings.Contains(aerr.Reason, "video_16x9") {
		t.Fatalf("mismatch reason should name both formats, got %q", aerr.Reason)
	}
	// The per-creative results are still complete.
	if len(resp.Results) != 1 || resp.Results[0].Action != domain.ActionCreated {
		t.Fatalf("creative results should survive the abort, got %+v", resp.Results)
	}
}

func TestSyncAssignmentLenientRecordsFailures(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	expectStaticPipeline(repo, registry, renderer, desc)

	repo.EXPECT().GetPackage(mock.Anything, "tenant-1", "pkg-missing").Return(nil, nil)
	repo.EXPECT().GetPackage(mock.Anything, "tenant-1", "pkg-ok").Return(&domain.Package{
		ID:         "pkg-ok",
		MediaBuyID: "buy-1",
		TenantID:   "tenant-1",
	}, nil)
	repo.EXPECT().
		UpsertAssignment(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, a domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
			return &a, nil
		})
	repo.EXPECT().
		MarkMediaBuyUnderReview(mock.Anything, "tenant-1", "buy-1").
		Return(false, nil).
		Once()

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	resp, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:       "tenant-1",
		PrincipalID:    "principal-1",
		Creatives:      []domain.CreativeDescriptor{desc},
		Assignments:    map[string][]string{"c1": {"pkg-missing", "pkg-ok"}},
		ValidationMode: domain.ValidationLenient,
	})
	if err != nil {
		t.Fatalf("lenient mode should not abort: %v", err)
	}
	res := resp.Results[0]
	if len(res.AssignedPackageIDs) != 1 || res.AssignedPackageIDs[0] != "pkg-ok" {
		t.Fatalf("expected pkg-ok assigned, got %v", res.AssignedPackageIDs)
	}
	if reason, ok := res.AssignmentErrors["pkg-missing"]; !ok || !strings.Contains(reason, "not found") {
		t.Fatalf("expected recorded not-found error, got %v", res.AssignmentErrors)
	}
}

func TestSyncAssignmentSkipsFailedCreative(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	desc.Name = ""

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	resp, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:       "tenant-1",
		PrincipalID:    "principal-1",
		Creatives:      []domain.CreativeDescriptor{desc},
		Assignments:    map[string][]string{"c1": {"pkg-1"}},
		ValidationMode: domain.ValidationLenient,
	})
	if err != nil {
		t.Fatalf("SyncCreatives error: %v", err)
	}
	res := resp.Results[0]
	if res.Action != domain.ActionFailed {
		t.Fatalf("expected action failed, got %s", res.Action)
	}
	if reason := res.AssignmentErrors["pkg-1"]; !strings.Contains(reason, "failed earlier in this batch") {
		t.Fatalf("assignment should be skipped with a reason, got %v", res.AssignmentErrors)
	}
}

func TestSyncAssignmentUnknownCreativeStrict(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	expectStaticPipeline(repo, registry, renderer, desc)

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	_, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:       "tenant-1",
		PrincipalID:    "principal-1",
		Creatives:      []domain.CreativeDescriptor{desc},
		Assignments:    map[string][]string{"ghost": {"pkg-1"}},
		ValidationMode: domain.ValidationStrict,
	})
	var aerr *port.AssignmentError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *port.AssignmentError, got %v", err)
	}
	if aerr.CreativeID != "ghost" || !strings.Contains(aerr.Reason, "not part of this sync batch") {
		t.Fatalf("unexpected assignment error: %+v", aerr)
	}
}

func TestSyncDryRunReportsAssignments(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	registry.EXPECT().Resolve(mock.Anything, desc.Format).Return(staticSpec(), nil)
	repo.EXPECT().GetCreative(mock.Anything, "tenant-1", "principal-1", "c1").Return(nil, nil)
	renderer.EXPECT().
		Preview(mock.Anything, mock.Anything).
		Return(previewResponse("https://preview.example.com/c1", 300, 250), nil)
	repo.EXPECT().GetPackage(mock.Anything, "tenant-1", "pkg-1").Return(&domain.Package{
		ID:         "pkg-1",
		MediaBuyID: "buy-1",
		TenantID:   "tenant-1",
	}, nil)

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	resp, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:    "tenant-1",
		PrincipalID: "principal-1",
		Creatives:   []domain.CreativeDescriptor{desc},
		Assignments: map[string][]string{"c1": {"pkg-1"}},
		DryRun:      true,
	})
	if err != nil {
		t.Fatalf("SyncCreatives error: %v", err)
	}
	res := resp.Results[0]
	if len(res.AssignedPackageIDs) != 1 || res.AssignedPackageIDs[0] != "pkg-1" {
		t.Fatalf("dry run should report the would-be assignment, got %v", res.AssignedPackageIDs)
	}
}

func TestSyncAssignmentPackageLookupError(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	desc := staticDescriptor("c1")
	expectStaticPipeline(repo, registry, renderer, desc)

	repo.EXPECT().
		GetPackage(mock.Anything, "tenant-1", "pkg-1").
		Return(nil, errors.New("connection reset"))

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	resp, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:       "tenant-1",
		PrincipalID:    "principal-1",
		Creatives:      []domain.CreativeDescriptor{desc},
		Assignments:    map[string][]string{"c1": {"pkg-1"}},
		ValidationMode: domain.ValidationLenient,
	})
	if err != nil {
		t.Fatalf("lenient mode should not abort: %v", err)
	}
	if reason := resp.Results[0].AssignmentErrors["pkg-1"]; !strings.Contains(reason, "look up package") {
		t.Fatalf("expected lookup failure recorded, got %v", resp.Results[0].AssignmentErrors)
	}
}

func TestSyncAssignmentWaitsForTerminalResults(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)

	// Track phase ordering: the assignment phase must not interleave with
	// creative processing.
	var order []string

	c1 := staticDescriptor("c1")
	c2 := staticDescriptor("c2")

	registry.EXPECT().Resolve(mock.Anything, c1.Format).Return(staticSpec(), nil)
	repo.EXPECT().
		GetCreative(mock.Anything, "tenant-1", "principal-1", mock.Anything).
		Return(nil, nil)
	renderer.EXPECT().
		Preview(mock.Anything, mock.Anything).
		Return(previewResponse("https://preview.example.com/x", 300, 250), nil)
	repo.EXPECT().
		UpsertCreative(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tenantID, principalID string, vc domain.ValidatedCreative, render *domain.RenderOutput, status domain.CreativeStatus) (*port.UpsertResult, error) {
			order = append(order, "upsert:"+vc.CreativeID)
			rec, changed := domain.BuildUpsertRecord(nil, vc, render, status, time.Now().UTC())
			return &port.UpsertResult{Record: rec, Changed: changed, Created: true}, nil
		})
	repo.EXPECT().
		GetPackage(mock.Anything, "tenant-1", "pkg-1").
		RunAndReturn(func(ctx context.Context, tenantID, packageID string) (*domain.Package, error) {
			order = append(order, "assign:"+packageID)
			return &domain.Package{ID: "pkg-1", MediaBuyID: "buy-1", TenantID: "tenant-1"}, nil
		})
	repo.EXPECT().
		UpsertAssignment(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, a domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
			return &a, nil
		})
	repo.EXPECT().MarkMediaBuyUnderReview(mock.Anything, "tenant-1", "buy-1").Return(true, nil)

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Mode:     domain.ApprovalAutoApprove,
		Logger:   discardLogger(),
	})

	_, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:    "tenant-1",
		PrincipalID: "principal-1",
		Creatives:   []domain.CreativeDescriptor{c1, c2},
		Assignments: map[string][]string{"c1": {"pkg-1"}},
	})
	if err != nil {
		t.Fatalf("SyncCreatives error: %v", err)
	}
	want := []string{"upsert:c1", "upsert:c2", "assign:pkg-1"}
	if len(order) != len(want) {
		t.Fatalf("unexpected call order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("assignments ran before all creatives were terminal: %v", order)
		}
	}
}

func TestSyncWorkflowEmissionFollowsAssignments(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	registry := mocks.NewMockFormatRegistry(t)
	renderer := mocks.NewMockRenderer(t)
	workflow := mocks.NewMockWorkflowRepository(t)

	// Track phase ordering: the workflow step must not be created until
	// the assignment rows are written.
	var order []string

	desc := staticDescriptor("c1")
	registry.EXPECT().Resolve(mock.Anything, desc.Format).Return(staticSpec(), nil)
	repo.EXPECT().
		GetCreative(mock.Anything, "tenant-1", "principal-1", "c1").
		Return(nil, nil)
	renderer.EXPECT().
		Preview(mock.Anything, mock.Anything).
		Return(previewResponse("https://preview.example.com/c1", 300, 250), nil)
	repo.EXPECT().
		UpsertCreative(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tenantID, principalID string, vc domain.ValidatedCreative, render *domain.RenderOutput, status domain.CreativeStatus) (*port.UpsertResult, error) {
			order = append(order, "upsert")
			rec, changed := domain.BuildUpsertRecord(nil, vc, render, status, time.Now().UTC())
			return &port.UpsertResult{Record: rec, Changed: changed, Created: true}, nil
		})
	repo.EXPECT().
		GetPackage(mock.Anything, "tenant-1", "pkg-1").
		Return(&domain.Package{ID: "pkg-1", MediaBuyID: "buy-1", TenantID: "tenant-1"}, nil)
	repo.EXPECT().
		UpsertAssignment(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, a domain.AssignmentRecord) (*domain.AssignmentRecord, error) {
			order = append(order, "assign")
			return &a, nil
		})
	repo.EXPECT().
		MarkMediaBuyUnderReview(mock.Anything, "tenant-1", "buy-1").
		RunAndReturn(func(ctx context.Context, tenantID, mediaBuyID string) (bool, error) {
			order = append(order, "mark")
			return true, nil
		})
	workflow.EXPECT().
		CreateStep(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, s domain.WorkflowStep) (*domain.WorkflowStep, error) {
			order = append(order, "step")
			s.ID = "step-1"
			return &s, nil
		})
	workflow.EXPECT().LinkObject(mock.Anything, mock.Anything).Return(nil)

	svc := NewSyncService(Config{
		Repo:     repo,
		Registry: registry,
		Renderer: renderer,
		Workflow: workflow,
		Mode:     domain.ApprovalRequireHuman,
		Logger:   discardLogger(),
	})

	_, err := svc.SyncCreatives(context.Background(), port.SyncRequest{
		TenantID:    "tenant-1",
		PrincipalID: "principal-1",
		Creatives:   []domain.CreativeDescriptor{desc},
		Assignments: map[string][]string{"c1": {"pkg-1"}},
	})
	if err != nil {
		t.Fatalf("SyncCreatives error: %v", err)
	}
	want := []string{"upsert", "assign", "mark", "step"}
	if len(order) != len(want) {
		t.Fatalf("unexpected call order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("workflow step created before assignments were durable: %v", order)
		}
	}
}
