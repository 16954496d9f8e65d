// ABOUTME: End-to-end integration tests for the seed API.
// ABOUTME: Drives real modules over HTTP against a temporary SQLite database.

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2389/demoseed/internal/orchestrator"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/runlog"
	"github.com/2389/demoseed/internal/seedapi"
	"github.com/2389/demoseed/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/2389/demoseed/modules/benefits"
	_ "github.com/2389/demoseed/modules/calls"
	_ "github.com/2389/demoseed/modules/dashboard"
	_ "github.com/2389/demoseed/modules/demo"
	_ "github.com/2389/demoseed/modules/hr"
	_ "github.com/2389/demoseed/modules/licensing"
	_ "github.com/2389/demoseed/modules/outreach"
	_ "github.com/2389/demoseed/modules/providers"
	_ "github.com/2389/demoseed/modules/treatments"
)

func setupTestServer(t *testing.T, secret string) (*httptest.Server, *store.SQL) {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)

	runs := runlog.New(s)
	o := orchestrator.New(orchestrator.Config{
		Store:     s,
		Rand:      rng.New(7),
		BatchSize: 500,
		Clock:     func() time.Time { return time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC) },
		Runs:      runs,
	})

	r := chi.NewRouter()
	seedapi.NewHandlers(o, runs).RegisterRoutes(r, secret)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		srv.Close()
		s.Close()
	})
	return srv, s
}

func postSeed(t *testing.T, srv *httptest.Server, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/seed", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func countRows(t *testing.T, s *store.SQL, table string) int {
	t.Helper()
	rows, err := s.Select(context.Background(), table, []string{"id"}, nil, 0)
	require.NoError(t, err)
	return len(rows)
}

func TestE2E_SeedAllFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("full seed over HTTP")
	}
	srv, s := setupTestServer(t, "")

	resp, body := postSeed(t, srv, `{"module":"all"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"], "errors: %v", body["errors"])
	assert.Equal(t, "COMPLETED", body["state"])
	assert.Equal(t, "all", body["module"])

	inserted, ok := body["inserted"].(map[string]any)
	require.True(t, ok)
	assert.NotZero(t, inserted["patients"])
	assert.NotZero(t, inserted["calls"])

	runsResp, err := srv.Client().Get(srv.URL + "/api/seed/runs")
	require.NoError(t, err)
	defer runsResp.Body.Close()
	var runs struct {
		Runs []store.SeedRun `json:"runs"`
	}
	require.NoError(t, json.NewDecoder(runsResp.Body).Decode(&runs))
	require.Len(t, runs.Runs, 1)
	assert.Equal(t, "all", runs.Runs[0].Module)
	assert.True(t, runs.Runs[0].Success)
	assert.Positive(t, runs.Runs[0].TotalInserted)

	assert.Positive(t, countRows(t, s, "patients"))
}

func TestE2E_RerunKeepsCallVolumeStable(t *testing.T) {
	srv, s := setupTestServer(t, "")

	resp, first := postSeed(t, srv, `{"module":"calls"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, first["success"], "errors: %v", first["errors"])
	afterFirst := countRows(t, s, "calls")
	require.Positive(t, afterFirst)

	resp, second := postSeed(t, srv, `{"module":"calls"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, second["success"], "errors: %v", second["errors"])

	inserted := second["inserted"].(map[string]any)["calls"].(float64)
	assert.Equal(t, int(inserted), countRows(t, s, "calls"), "rerun should replace, not append")
}

func TestE2E_UnknownModuleListsValidNames(t *testing.T) {
	srv, _ := setupTestServer(t, "")

	resp, body := postSeed(t, srv, `{"module":"payroll"}`, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown_module", body["code"])

	valid, ok := body["valid"].([]any)
	require.True(t, ok)
	assert.Contains(t, valid, "all")
	assert.Contains(t, valid, "outreach")
}

func TestE2E_SecretProtectsSeeding(t *testing.T) {
	srv, _ := setupTestServer(t, "s3cret")

	resp, _ := postSeed(t, srv, `{"module":"licensing"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := postSeed(t, srv, `{"module":"licensing"}`, "s3cret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}
