package serverapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenomvv/aetherapp/internal/config"
	"github.com/phenomvv/aetherapp/internal/enrich"
	"github.com/phenomvv/aetherapp/internal/model"
)

func newTestServer(t *testing.T, seed bool) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Data.Dir = t.TempDir()
	cfg.Data.SeedDemoData = seed
	cfg.AI.Enabled = false

	h, err := NewHandler(context.Background(), Options{
		Config:       cfg,
		Collaborator: enrich.Nop{},
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func post(t *testing.T, url, body string, out any) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, false)

	var body map[string]any
	resp := get(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "aether", body["service"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestRouteDocs(t *testing.T) {
	srv := newTestServer(t, false)

	var docs []map[string]any
	resp := get(t, srv.URL+"/api/routes", &docs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, docs)

	patterns := map[string]bool{}
	for _, d := range docs {
		patterns[d["method"].(string)+" "+d["pattern"].(string)] = true
	}
	for _, want := range []string{
		"POST /api/tasks",
		"GET /api/tasks/dashboard",
		"POST /api/tasks/import",
		"GET /api/categories",
		"POST /api/prefs/theme/toggle",
	} {
		assert.True(t, patterns[want], "missing route %s", want)
	}
}

func TestSeededDashboardFlow(t *testing.T) {
	srv := newTestServer(t, true)

	var list struct {
		Tasks []model.Task `json:"tasks"`
	}
	get(t, srv.URL+"/api/tasks", &list)
	require.Len(t, list.Tasks, 7, "demo seed")

	var created model.Task
	resp := post(t, srv.URL+"/api/tasks",
		`{"title":"Write launch notes","category":"Work"}`, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, model.TimeJustNow, created.Time)

	get(t, srv.URL+"/api/tasks", &list)
	require.Len(t, list.Tasks, 8)
	assert.Equal(t, created.ID, list.Tasks[0].ID, "new tasks go first")

	var dash struct {
		Groups []struct {
			Category model.Category `json:"category"`
			Tasks    []model.Task   `json:"tasks"`
		} `json:"groups"`
	}
	get(t, srv.URL+"/api/tasks/dashboard?q=launch", &dash)
	require.Len(t, dash.Groups, 1)
	assert.Equal(t, model.CategoryWork, dash.Groups[0].Category)
	require.Len(t, dash.Groups[0].Tasks, 1)
	assert.Equal(t, created.ID, dash.Groups[0].Tasks[0].ID)
}

func TestCategoriesEndpoint(t *testing.T) {
	srv := newTestServer(t, false)

	var themes []struct {
		Name  model.Category `json:"name"`
		Color string         `json:"color"`
	}
	resp := get(t, srv.URL+"/api/categories", &themes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, themes, 6)
	assert.Equal(t, model.CategoryWork, themes[0].Name)
	assert.Equal(t, model.CategoryFood, themes[5].Name)
}

func TestPrefsFlow(t *testing.T) {
	srv := newTestServer(t, false)

	var p model.Preferences
	get(t, srv.URL+"/api/prefs", &p)
	assert.Equal(t, "Alex Rivera", p.Name)
	assert.True(t, p.TrueDarkMode)

	resp := post(t, srv.URL+"/api/prefs/theme/toggle", "", &p)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, p.TrueDarkMode)

	resp = post(t, srv.URL+"/api/prefs/accent",
		`{"hex":"#7DD3FC","name":"Sky"}`, &p)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "#7DD3FC", p.AccentColor)
	assert.Equal(t, "Sky", p.AccentName)

	var accents []struct {
		Name string `json:"name"`
	}
	get(t, srv.URL+"/api/prefs/accents", &accents)
	require.Len(t, accents, 7)
}

func TestUnseededStoreStartsEmpty(t *testing.T) {
	srv := newTestServer(t, false)

	var list struct {
		Tasks []model.Task `json:"tasks"`
	}
	get(t, srv.URL+"/api/tasks", &list)
	assert.Empty(t, list.Tasks)
}
