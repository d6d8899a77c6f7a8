package domain

import (
	"reflect"
	"time"
)

// Changed-field names reported by BuildUpsertRecord. They name record
// fields, not JSON paths, and are stable across create and update.
const (
	FieldName           = "name"
	FieldFormat         = "format"
	FieldStatus         = "status"
	FieldMediaURL       = "media_url"
	FieldWidth          = "width"
	FieldHeight         = "height"
	FieldAssets         = "assets"
	FieldBuildStatus    = "build_status"
	FieldBuildContextID = "build_context_id"
)

// BuildUpsertRecord merges a validated creative, an optional render
// output and the existing record (nil on create) into the record to
// persist. Precedence per derivable field: a non-empty caller value
// wins, then the render output, then whatever the existing record
// already holds. The same function backs both the transactional upsert
// and the dry-run computation, so the two can never drift apart.
//
// The second return value lists the fields whose stored value would
// change; the raw render response is carried on the record but is
// diagnostic only and never counted as a change.
func BuildUpsertRecord(existing *CreativeRecord, vc ValidatedCreative, render *RenderOutput, status CreativeStatus, now time.Time) (CreativeRecord, []string) {
	prev := CreativeRecord{}
	if existing != nil {
		prev = *existing
	}

	rec := CreativeRecord{
		TenantID:    prev.TenantID,
		PrincipalID: prev.PrincipalID,
		CreativeID:  vc.CreativeID,
		Name:        vc.Name,
		Format:      vc.Format,
		Status:      status,
		Data:        prev.Data,
		CreatedAt:   prev.CreatedAt,
		UpdatedAt:   now,
	}
	if existing == nil {
		rec.CreatedAt = now
	}

	var derived RenderOutput
	if render != nil {
		derived = *render
	}

	callerURL := ExtractPrimaryURL(vc.Assets)
	callerW, callerH := ExtractDimensions(vc.Assets)

	rec.Data.MediaURL = pickString(callerURL, derived.MediaURL, prev.Data.MediaURL)
	rec.Data.Width = pickInt(callerW, derived.Width, prev.Data.Width)
	rec.Data.Height = pickInt(callerH, derived.Height, prev.Data.Height)

	switch {
	case len(vc.Assets) > 0:
		rec.Data.Assets = vc.Assets
	case len(derived.Assets) > 0:
		rec.Data.Assets = derived.Assets
	}

	if derived.BuildStatus != "" {
		rec.Data.BuildStatus = derived.BuildStatus
	}
	if derived.BuildContextID != "" {
		rec.Data.BuildContextID = derived.BuildContextID
	}
	if len(derived.RawResponse) > 0 {
		rec.Data.RawResponse = derived.RawResponse
	}

	var changed []string
	if rec.Name != prev.Name {
		changed = append(changed, FieldName)
	}
	if !SameFormat(rec.Format, prev.Format) {
		changed = append(changed, FieldFormat)
	}
	if rec.Status != prev.Status {
		changed = append(changed, FieldStatus)
	}
	if rec.Data.MediaURL != prev.Data.MediaURL {
		changed = append(changed, FieldMediaURL)
	}
	if rec.Data.Width != prev.Data.Width {
		changed = append(changed, FieldWidth)
	}
	if rec.Data.Height != prev.Data.Height {
		changed = append(changed, FieldHeight)
	}
	if !reflect.DeepEqual(rec.Data.Assets, prev.Data.Assets) {
		changed = append(changed, FieldAssets)
	}
	if rec.Data.BuildStatus != prev.Data.BuildStatus {
		changed = append(changed, FieldBuildStatus)
	}
	if rec.Data.BuildContextID != prev.Data.BuildContextID {
		changed = append(changed, FieldBuildContextID)
	}

	return rec, changed
}

func pickString(caller, render, existing string) string {
	if caller != "" {
		return caller
	}
	if render != "" {
		return render
	}
	return existing
}

func pickInt(caller, render, existing int) int {
	if caller != 0 {
		return caller
	}
	if render != 0 {
		return render
	}
	return existing
}
