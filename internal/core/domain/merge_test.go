package domain

import (
	"reflect"
	"testing"
	"time"
)

var mergeNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func validated(id string, assets map[string]Asset) ValidatedCreative {
	return ValidatedCreative{
		CreativeID: id,
		Name:       "Summer Banner",
		Format:     FormatRef{Namespace: "https://reg.test", ID: "display_300x250"},
		Assets:     assets,
	}
}

// Caller-supplied URLs must survive render output on both the create and
// the update path.
func TestMergeCallerURLWins(t *testing.T) {
	callerAssets := map[string]Asset{
		"media": {URL: "https://caller.test/banner.png", Width: 300, Height: 250},
	}
	render := &RenderOutput{MediaURL: "https://render.test/preview.png", Width: 1, Height: 1}

	rec, _ := BuildUpsertRecord(nil, validated("c1", callerAssets), render, StatusApproved, mergeNow)
	if rec.Data.MediaURL != "https://caller.test/banner.png" {
		t.Fatalf("create: caller URL lost, got %q", rec.Data.MediaURL)
	}
	if rec.Data.Width != 300 || rec.Data.Height != 250 {
		t.Fatalf("create: caller dimensions lost, got %dx%d", rec.Data.Width, rec.Data.Height)
	}

	existing := rec
	rec2, _ := BuildUpsertRecord(&existing, validated("c1", callerAssets), render, StatusApproved, mergeNow.Add(time.Hour))
	if rec2.Data.MediaURL != "https://caller.test/banner.png" {
		t.Fatalf("update: caller URL lost, got %q", rec2.Data.MediaURL)
	}
	if rec2.Data.Width != 300 || rec2.Data.Height != 250 {
		t.Fatalf("update: caller dimensions lost, got %dx%d", rec2.Data.Width, rec2.Data.Height)
	}
}

func TestMergeRenderFillsMissing(t *testing.T) {
	render := &RenderOutput{MediaURL: "https://render.test/p.png", Width: 728, Height: 90}
	rec, changed := BuildUpsertRecord(nil, validated("c1", nil), render, StatusPendingReview, mergeNow)
	if rec.Data.MediaURL != "https://render.test/p.png" {
		t.Fatalf("render URL not applied, got %q", rec.Data.MediaURL)
	}
	if rec.Data.Width != 728 || rec.Data.Height != 90 {
		t.Fatalf("render dimensions not applied, got %dx%d", rec.Data.Width, rec.Data.Height)
	}
	if len(changed) == 0 {
		t.Fatalf("expected changed fields on create")
	}
}

func TestMergeGenerativeAssetPreservation(t *testing.T) {
	callerAssets := map[string]Asset{"brief": {Content: "make it pop"}}
	render := &RenderOutput{
		Assets:      map[string]Asset{"generated": {URL: "https://gen.test/out.png"}},
		BuildStatus: "completed",
	}
	rec, _ := BuildUpsertRecord(nil, validated("c1", callerAssets), render, StatusPendingReview, mergeNow)
	if !reflect.DeepEqual(rec.Data.Assets, callerAssets) {
		t.Fatalf("caller assets replaced by generative output: %v", rec.Data.Assets)
	}
	if rec.Data.BuildStatus != "completed" {
		t.Fatalf("build status not carried, got %q", rec.Data.BuildStatus)
	}
}

func TestMergeUnchangedSecondSync(t *testing.T) {
	callerAssets := map[string]Asset{
		"media": {URL: "https://caller.test/a.png", Width: 300, Height: 250},
	}
	first, _ := BuildUpsertRecord(nil, validated("c1", callerAssets), nil, StatusApproved, mergeNow)

	second, changed := BuildUpsertRecord(&first, validated("c1", callerAssets), nil, StatusApproved, mergeNow.Add(time.Minute))
	if len(changed) != 0 {
		t.Fatalf("identical resync must not change fields, got %v", changed)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Fatalf("resync must preserve creation time")
	}
}

func TestMergeExistingValuesSurvive(t *testing.T) {
	existing := CreativeRecord{
		CreativeID: "c1",
		Name:       "Summer Banner",
		Format:     FormatRef{Namespace: "https://reg.test", ID: "display_300x250"},
		Status:     StatusApproved,
		Data: CreativeData{
			MediaURL:       "https://old.test/kept.png",
			Width:          300,
			Height:         250,
			BuildContextID: "ctx-9",
		},
		CreatedAt: mergeNow,
	}
	rec, changed := BuildUpsertRecord(&existing, validated("c1", nil), &RenderOutput{}, StatusApproved, mergeNow.Add(time.Hour))
	if rec.Data.MediaURL != "https://old.test/kept.png" {
		t.Fatalf("existing URL dropped, got %q", rec.Data.MediaURL)
	}
	if rec.Data.BuildContextID != "ctx-9" {
		t.Fatalf("existing build context dropped, got %q", rec.Data.BuildContextID)
	}
	if len(changed) != 0 {
		t.Fatalf("no-op update reported changes: %v", changed)
	}
}

func TestMergeReportsChangedFields(t *testing.T) {
	existing := CreativeRecord{
		CreativeID: "c1",
		Name:       "Old Name",
		Format:     FormatRef{Namespace: "https://reg.test", ID: "display_300x250"},
		Status:     StatusApproved,
		Data:       CreativeData{MediaURL: "https://old.test/a.png"},
	}
	vc := validated("c1", map[string]Asset{"media": {URL: "https://new.test/b.png"}})
	_, changed := BuildUpsertRecord(&existing, vc, nil, StatusPendingReview, mergeNow)

	want := map[string]bool{FieldName: true, FieldStatus: true, FieldMediaURL: true, FieldAssets: true}
	for _, f := range changed {
		if !want[f] {
			t.Fatalf("unexpected changed field %q in %v", f, changed)
		}
		delete(want, f)
	}
	if len(want) != 0 {
		t.Fatalf("missing changed fields: %v", want)
	}
}

// Namespaces that differ only by routing suffix are the same format, so
// a resync through the suffixed URL is not a format change.
func TestMergeNormalizedFormatNotChanged(t *testing.T) {
	existing := CreativeRecord{
		CreativeID: "c1",
		Name:       "Summer Banner",
		Format:     FormatRef{Namespace: "https://reg.test", ID: "display_300x250"},
		Status:     StatusApproved,
	}
	vc := ValidatedCreative{
		CreativeID: "c1",
		Name:       "Summer Banner",
		Format:     FormatRef{Namespace: "https://reg.test/mcp/", ID: "display_300x250"},
	}
	_, changed := BuildUpsertRecord(&existing, vc, nil, StatusApproved, mergeNow)
	for _, f := range changed {
		if f == FieldFormat {
			t.Fatalf("suffix-only namespace difference reported as format change")
		}
	}
}
