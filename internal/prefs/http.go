package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/phenomvv/aetherapp/internal/model"
)

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

// GET /api/prefs
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Get())
}

// GET /api/prefs/accents
func (h *Handler) Accents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AccentColors)
}

// POST /api/prefs/name
func (h *Handler) SetName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	p, err := h.store.SetName(req.Name)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// POST /api/prefs/accent
func (h *Handler) SetAccent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hex  string `json:"hex"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	p, err := h.store.SetAccentColor(req.Hex, req.Name)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// POST /api/prefs/notifications/toggle
func (h *Handler) ToggleNotifications(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, h.store.ToggleNotifications)
}

// POST /api/prefs/audio/toggle
func (h *Handler) ToggleAudio(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, h.store.ToggleAudio)
}

// POST /api/prefs/theme/toggle
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, h.store.ToggleTheme)
}

func (h *Handler) toggle(w http.ResponseWriter, fn func() (model.Preferences, error)) {
	p, err := fn()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}
