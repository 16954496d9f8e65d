// ABOUTME: HTTP handlers for triggering seed runs and reading run history.
// ABOUTME: Routes: POST /api/seed, GET /api/seed/modules, GET /api/seed/runs.

package seedapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/orchestrator"
	"github.com/2389/demoseed/internal/runlog"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/core"
)

// Runner executes seed runs.
type Runner interface {
	Run(ctx context.Context, name string) (orchestrator.Report, error)
}

// Handlers serves the seed API. Runs are serialized.
type Handlers struct {
	runner  Runner
	runs    *runlog.Recorder
	modules func() []core.Module

	mu sync.Mutex
}

// NewHandlers returns handlers that list every registered module.
func NewHandlers(runner Runner, runs *runlog.Recorder) *Handlers {
	return &Handlers{runner: runner, runs: runs, modules: core.Modules}
}

// RegisterRoutes mounts the API under /api/seed behind the secret check.
func (h *Handlers) RegisterRoutes(r chi.Router, secret string) {
	r.Route("/api/seed", func(r chi.Router) {
		r.Use(RequireSecret(secret))
		r.Post("/", h.seed)
		r.Get("/modules", h.listModules)
		r.Get("/runs", h.listRuns)
	})
}

type seedRequest struct {
	Module string `json:"module"`
}

func (h *Handlers) seed(w http.ResponseWriter, r *http.Request) {
	var req seedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrInvalidBody, "Request body must be JSON")
		return
	}
	if req.Module == "" {
		req.Module = core.All
	}

	h.mu.Lock()
	rep, err := h.runner.Run(r.Context(), req.Module)
	h.mu.Unlock()

	if err != nil {
		var oe *apierrors.OrchestrationError
		if errors.As(err, &oe) && len(oe.Valid) > 0 {
			apierrors.WriteErrorWithValid(w, http.StatusBadRequest, apierrors.ErrUnknownModule,
				"Invalid module: "+req.Module, oe.Valid)
			return
		}
		if apierrors.IsValidation(err) {
			apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrValidationFailed, "Seed input invalid", err.Error())
			return
		}
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrSeedFailed, "Seed failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

type moduleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Produces    []string `json:"produces"`
	Consumes    []string `json:"consumes"`
}

func (h *Handlers) listModules(w http.ResponseWriter, r *http.Request) {
	mods := h.modules()
	out := make([]moduleInfo, 0, len(mods))
	for _, m := range mods {
		out = append(out, moduleInfo{
			Name:        m.Name(),
			Description: m.Description(),
			Produces:    nonNil(m.Produces()),
			Consumes:    nonNil(m.Consumes()),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"modules": out})
}

func (h *Handlers) listRuns(w http.ResponseWriter, r *http.Request) {
	q := store.RunQuery{Module: r.URL.Query().Get("module")}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrValidationFailed, "limit must be a non-negative integer")
			return
		}
		q.Limit = n
	}
	runs, err := h.runs.Recent(r.Context(), q)
	if err != nil {
		apierrors.WriteErrorWithDetails(w, http.StatusInternalServerError, apierrors.ErrDatabaseError, "Failed to list runs", err.Error())
		return
	}
	if runs == nil {
		runs = []*store.SeedRun{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
