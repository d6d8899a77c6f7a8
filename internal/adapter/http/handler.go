package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adsync/internal/core/port"
	"adsync/internal/worker"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the sync use case for business logic, the task manager
// for background-review status lookups and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.SyncUseCase
	tasks  *worker.Manager
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.SyncUseCase, tasks *worker.Manager, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, tasks: tasks, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/creatives/sync", h.handleSyncCreatives)
		r.Get("/formats", h.handleListFormats)
		r.Get("/tasks/{taskID}", h.handleTaskStatus)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// principalAuth extracts the tenant and principal identity headers. Both
// are required on every data route.
func principalAuth(r *http.Request) (tenantID, principalID string, ok bool) {
	tenantID = r.Header.Get("X-Tenant-ID")
	principalID = r.Header.Get("X-Principal-ID")
	return tenantID, principalID, tenantID != "" && principalID != ""
}
