// Package serverapp wires the stores, enrichment backend, and HTTP
// handlers into a single http.Handler.
package serverapp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/phenomvv/aetherapp/internal/category"
	"github.com/phenomvv/aetherapp/internal/config"
	"github.com/phenomvv/aetherapp/internal/enrich"
	"github.com/phenomvv/aetherapp/internal/httpmw"
	"github.com/phenomvv/aetherapp/internal/prefs"
	"github.com/phenomvv/aetherapp/internal/server"
	"github.com/phenomvv/aetherapp/internal/task"
)

type Options struct {
	Config *config.Config
	Logger *zap.Logger

	// Collaborator overrides the configured AI backend (tests).
	Collaborator enrich.Collaborator
}

func NewHandler(ctx context.Context, opts Options) (http.Handler, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	cfg, logger := opts.Config, opts.Logger

	collab := opts.Collaborator
	if collab == nil {
		collab = enrich.Collaborator(enrich.Nop{})
		if cfg.AI.Enabled && cfg.AI.APIKey != "" {
			gemini, err := enrich.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
			if err != nil {
				return nil, err
			}
			collab = gemini
			logger.Info("ai enrichment enabled", zap.String("model", cfg.AI.Model))
		} else {
			logger.Info("ai enrichment disabled")
		}
	}

	taskStore, err := task.NewStore(task.Options{
		DataDir:      cfg.Data.Dir,
		Collaborator: collab,
		Logger:       logger,
		Seed:         cfg.Data.SeedDemoData,
	})
	if err != nil {
		return nil, err
	}

	prefStore, err := prefs.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true,"service":"aether","time":"` +
			time.Now().UTC().Format(time.RFC3339) + `"}`))
	})
	mux.HandleFunc("GET /api/routes", rr.Docs)

	th := task.NewHandler(taskStore)
	server.Handle(mux, rr, "GET /api/tasks", "flat task list with daily progress", th.List)
	server.Handle(mux, rr, "POST /api/tasks", "create a task", th.Create)
	server.Handle(mux, rr, "DELETE /api/tasks", "delete all tasks", th.Clear)
	server.Handle(mux, rr, "GET /api/tasks/dashboard", "grouped dashboard view", th.Dashboard)
	server.Handle(mux, rr, "GET /api/tasks/stats", "analytics aggregates", th.Stats)
	server.Handle(mux, rr, "GET /api/tasks/export", "download a task backup", th.Export)
	server.Handle(mux, rr, "POST /api/tasks/import", "replace tasks from a backup", th.Import)
	server.Handle(mux, rr, "POST /api/tasks/{id}/toggle", "toggle task completion", th.Toggle)
	server.Handle(mux, rr, "DELETE /api/tasks/{id}", "delete a task", th.Delete)
	server.Handle(mux, rr, "POST /api/tasks/{id}/breakdown", "generate subtasks", th.Breakdown)
	server.Handle(mux, rr, "POST /api/tasks/{id}/subtasks/{subtaskID}/toggle", "toggle a subtask", th.ToggleSubtask)
	server.Handle(mux, rr, "POST /api/categories/{name}/reset", "reset a category's checklist", th.ResetCategory)

	server.Handle(mux, rr, "GET /api/categories", "category themes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(category.Registry)
	})

	ph := prefs.NewHandler(prefStore)
	server.Handle(mux, rr, "GET /api/prefs", "user preferences", ph.Get)
	server.Handle(mux, rr, "GET /api/prefs/accents", "accent color palette", ph.Accents)
	server.Handle(mux, rr, "POST /api/prefs/name", "set display name", ph.SetName)
	server.Handle(mux, rr, "POST /api/prefs/accent", "set accent color", ph.SetAccent)
	server.Handle(mux, rr, "POST /api/prefs/notifications/toggle", "toggle notifications", ph.ToggleNotifications)
	server.Handle(mux, rr, "POST /api/prefs/audio/toggle", "toggle audio feedback", ph.ToggleAudio)
	server.Handle(mux, rr, "POST /api/prefs/theme/toggle", "toggle dark appearance", ph.ToggleTheme)

	return httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(logger),
		httpmw.WithAccessLog(logger),
	), nil
}
