package task

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/phenomvv/aetherapp/internal/category"
	"github.com/phenomvv/aetherapp/internal/model"
)

const maxImportBytes = 4 << 20

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// GET /api/tasks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"tasks":    tasks,
		"progress": DailyProgress(tasks),
	})
}

type createRequest struct {
	Title    string         `json:"title"`
	Category model.Category `json:"category"`
	IconName string         `json:"iconName,omitempty"`
}

// POST /api/tasks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if !category.IsValid(req.Category) {
		writeErr(w, http.StatusBadRequest, "unknown category: "+string(req.Category))
		return
	}

	t, ok, err := h.store.Add(req.Title, req.Category, req.IconName)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		// Blank title or an add already in flight. Not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// DELETE /api/tasks
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/tasks/dashboard?tab=Today&q=roadmap
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tab := Tab(q.Get("tab"))
	if tab == "" {
		tab = TabToday
	}

	tasks := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"tab":      tab,
		"groups":   DashboardGroups(tasks, tab, q.Get("q")),
		"progress": DailyProgress(tasks),
	})
}

// GET /api/tasks/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Analytics(h.store.Snapshot()))
}

// GET /api/tasks/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	b, err := h.store.ExportJSON()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+ExportFilename(time.Now())+`"`)
	_, _ = w.Write(b)
}

// POST /api/tasks/import
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	n, err := h.store.ImportJSON(body)
	if err != nil {
		if errors.Is(err, ErrInvalidBackup) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"imported": n})
}

// POST /api/tasks/{id}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	t, ok, err := h.store.Toggle(r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DELETE /api/tasks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Delete(r.PathValue("id")); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/tasks/{id}/breakdown
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	ok, err := h.store.Breakdown(r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		// Unknown id, or a breakdown is already outstanding.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// POST /api/tasks/{id}/subtasks/{subtaskID}/toggle
func (h *Handler) ToggleSubtask(w http.ResponseWriter, r *http.Request) {
	t, ok, err := h.store.ToggleSubtask(r.PathValue("id"), r.PathValue("subtaskID"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// POST /api/categories/{name}/reset
func (h *Handler) ResetCategory(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.ResetCategory(model.Category(r.PathValue("name")))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reset": n})
}
