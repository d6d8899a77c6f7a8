package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adsync/internal/core/domain"
	"adsync/internal/core/port"
)

// syncRequest is the wire shape of a sync call. CreativeIDs distinguishes
// absent from empty: absent processes the whole payload, an empty list
// processes none of it.
type syncRequest struct {
	Creatives      []domain.CreativeDescriptor `json:"creatives"`
	Assignments    map[string][]string         `json:"assignments,omitempty"`
	CreativeIDs    []string                    `json:"creative_ids,omitempty"`
	DryRun         bool                        `json:"dry_run,omitempty"`
	ValidationMode string                      `json:"validation_mode,omitempty"`
	Context        json.RawMessage             `json:"context,omitempty"`
}

type syncResult struct {
	CreativeID         string            `json:"creative_id"`
	Action             string            `json:"action"`
	Status             string            `json:"status,omitempty"`
	ChangedFields      []string          `json:"changed_fields,omitempty"`
	Errors             []string          `json:"errors,omitempty"`
	AssignedPackageIDs []string          `json:"assigned_package_ids,omitempty"`
	AssignmentErrors   map[string]string `json:"assignment_errors,omitempty"`
}

type syncResponse struct {
	Results []syncResult    `json:"results"`
	DryRun  bool            `json:"dry_run"`
	Context json.RawMessage `json:"context,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// handleSyncCreatives processes a batch creative sync. The request body is
// decoded into a syncRequest; tenant and principal come from headers. On
// success it returns the per-creative results. A strict-mode assignment
// abort returns HTTP 422 with the results computed so far and the abort
// reason. Parsing errors produce HTTP 400, anything unexpected HTTP 500.
func (h *Handler) handleSyncCreatives(w http.ResponseWriter, r *http.Request) {
	tenantID, principalID, ok := principalAuth(r)
	if !ok {
		http.Error(w, "missing X-Tenant-ID or X-Principal-ID header", http.StatusBadRequest)
		return
	}

	var body syncRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.SyncCreatives(r.Context(), port.SyncRequest{
		TenantID:       tenantID,
		PrincipalID:    principalID,
		Creatives:      body.Creatives,
		Assignments:    body.Assignments,
		CreativeIDs:    body.CreativeIDs,
		DryRun:         body.DryRun,
		ValidationMode: domain.ValidationMode(body.ValidationMode),
		Context:        body.Context,
	})

	var aerr *port.AssignmentError
	switch {
	case errors.As(err, &aerr):
		h.writeJSON(w, http.StatusUnprocessableEntity, toWireResponse(resp, aerr.Error()))
	case err != nil:
		h.logger.Error("sync creatives error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		h.writeJSON(w, http.StatusOK, toWireResponse(resp, ""))
	}
}

func toWireResponse(resp *port.SyncResponse, errMsg string) syncResponse {
	out := syncResponse{Error: errMsg}
	if resp == nil {
		out.Results = []syncResult{}
		return out
	}
	out.DryRun = resp.DryRun
	out.Context = resp.Context
	out.Results = make([]syncResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		out.Results = append(out.Results, syncResult{
			CreativeID:         r.CreativeID,
			Action:             string(r.Action),
			Status:             string(r.Status),
			ChangedFields:      r.Changed,
			Errors:             r.Errors,
			AssignedPackageIDs: r.AssignedPackageIDs,
			AssignmentErrors:   r.AssignmentErrors,
		})
	}
	return out
}
