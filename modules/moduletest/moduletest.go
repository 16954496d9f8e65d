// ABOUTME: Shared fixtures for module tests.
// ABOUTME: Builds a deterministic environment over an in-memory store.

package moduletest

import (
	"context"
	"time"

	"github.com/2389/demoseed/internal/narrative"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/core"
)

// Now is the fixed clock used by module tests: a Thursday morning.
var Now = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

// Env returns a seeded environment writing to mem.
func Env(mem store.Store, seed uint64) core.Env {
	return core.Env{
		Store:     mem,
		Rand:      rng.New(seed),
		Now:       Now,
		BatchSize: 500,
		Text:      narrative.Static(),
	}
}

// Strings collects one column of rows as strings, skipping NULLs.
func Strings(rows []store.Row, column string) []string {
	var out []string
	for _, r := range rows {
		if s, ok := r[column].(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Recorder wraps a Memory store and a text source and logs each clear, write,
// and pool lookup as "clear <table>", "write <table>", or "pool <kind>".
type Recorder struct {
	*store.Memory
	Text narrative.Source
	Ops  []string
}

// NewRecorder records over a fresh Memory store with static text.
func NewRecorder() *Recorder {
	return &Recorder{Memory: store.NewMemory(), Text: narrative.Static()}
}

// Env returns a seeded environment whose store and text both go through r.
func (r *Recorder) Env(seed uint64) core.Env {
	env := Env(r, seed)
	env.Text = r
	return env
}

func (r *Recorder) Delete(ctx context.Context, table string, filter store.Filter) (int64, error) {
	r.Ops = append(r.Ops, "clear "+table)
	return r.Memory.Delete(ctx, table, filter)
}

func (r *Recorder) Insert(ctx context.Context, table string, rows []store.Row) (int, error) {
	r.Ops = append(r.Ops, "write "+table)
	return r.Memory.Insert(ctx, table, rows)
}

func (r *Recorder) Upsert(ctx context.Context, table string, rows []store.Row, conflictKey string) (int, error) {
	r.Ops = append(r.Ops, "write "+table)
	return r.Memory.Upsert(ctx, table, rows, conflictKey)
}

func (r *Recorder) Pool(ctx context.Context, kind narrative.Kind, key string) []string {
	r.Ops = append(r.Ops, "pool "+string(kind))
	return r.Text.Pool(ctx, kind, key)
}

// Index returns the position of the first op equal to op, or -1.
func (r *Recorder) Index(op string) int {
	for i, o := range r.Ops {
		if o == op {
			return i
		}
	}
	return -1
}
