// ABOUTME: Seed run history recorder.
// ABOUTME: Stores one entry per orchestrated run and lists recent runs for the CLI and API.

package runlog

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/2389/demoseed/internal/store"
)

const maxErrors = 50 // cap stored error strings per run

// Recorder writes run entries to a store.RunLog. A nil Recorder or one without
// a backing log drops entries, so callers never need to check.
type Recorder struct {
	runs store.RunLog
}

// New returns a recorder backed by runs.
func New(runs store.RunLog) *Recorder {
	return &Recorder{runs: runs}
}

// Entry describes a finished run.
type Entry struct {
	Module   string
	State    string
	Success  bool
	Inserted map[string]int
	Errors   []string
	Started  time.Time
	Elapsed  time.Duration
}

// Record stores e. A storage failure is logged and otherwise ignored; losing
// history never fails a seed.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if r == nil || r.runs == nil {
		return
	}
	total := 0
	for _, n := range e.Inserted {
		total += n
	}
	errs := e.Errors
	if len(errs) > maxErrors {
		errs = errs[:maxErrors]
	}
	run := &store.SeedRun{
		ID:            uuid.New().String(),
		Module:        e.Module,
		State:         e.State,
		Success:       e.Success,
		TotalInserted: total,
		ErrorCount:    len(e.Errors),
		Errors:        errs,
		DurationMs:    e.Elapsed.Milliseconds(),
		StartedAt:     e.Started.UTC(),
	}
	if run.Errors == nil {
		run.Errors = []string{}
	}
	if err := r.runs.RecordRun(ctx, run); err != nil {
		log.Printf("Failed to record seed run for %s: %v", e.Module, err)
	}
}

// Recent lists runs newest first.
func (r *Recorder) Recent(ctx context.Context, q store.RunQuery) ([]*store.SeedRun, error) {
	if r == nil || r.runs == nil {
		return nil, nil
	}
	return r.runs.ListRuns(ctx, q)
}
