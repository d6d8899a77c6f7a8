package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type taskStatus struct {
	TaskID    string    `json:"task_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Error     string    `json:"error,omitempty"`
}

// handleTaskStatus reports the state of a background task, typically an
// AI review dispatched by a sync. It expects a {taskID} path parameter
// bound by the router. Unknown ids result in HTTP 404; tasks past their
// retention window are indistinguishable from unknown ones.
func (h *Handler) handleTaskStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "taskID")
	if id == "" {
		http.Error(w, "missing task id", http.StatusBadRequest)
		return
	}
	if h.tasks == nil {
		http.NotFound(w, r)
		return
	}
	t := h.tasks.Get(id)
	if t == nil {
		http.NotFound(w, r)
		return
	}

	body := taskStatus{TaskID: t.ID, Name: t.Name, Status: "running", CreatedAt: t.CreatedAt}
	if t.Finished() {
		body.Status = "completed"
		if err := t.Err(); err != nil {
			body.Status = "failed"
			body.Error = err.Error()
		}
	}
	h.writeJSON(w, http.StatusOK, body)
}
