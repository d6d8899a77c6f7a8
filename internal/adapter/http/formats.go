package httpadapter

import (
	"log/slog"
	"net/http"

	"adsync/internal/core/domain"
)

type formatsResponse struct {
	Formats []domain.FormatSpec `json:"formats"`
}

// handleListFormats returns every creative format the registry advertises
// for the calling tenant. A missing tenant header results in HTTP 400,
// registry failures in HTTP 502 since the data lives upstream.
func (h *Handler) handleListFormats(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get("X-Tenant-ID")
	if tenantID == "" {
		http.Error(w, "missing X-Tenant-ID header", http.StatusBadRequest)
		return
	}

	specs, err := h.svc.ListFormats(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("list formats error", slog.Any("error", err))
		http.Error(w, "format registry unavailable", http.StatusBadGateway)
		return
	}
	if specs == nil {
		specs = []domain.FormatSpec{}
	}
	h.writeJSON(w, http.StatusOK, formatsResponse{Formats: specs})
}
