// ABOUTME: Core module interface for the seeding engine.
// ABOUTME: Defines the contract, run environment, and result every seeding module uses.

package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/2389/demoseed/internal/batch"
	"github.com/2389/demoseed/internal/narrative"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/store"
)

// Module seeds one slice of the practice database.
type Module interface {
	// Metadata
	Name() string
	Description() string

	// Dependency graph: tables written, tables read by foreign key, and
	// tables deleted from before writing.
	Produces() []string
	Consumes() []string
	Clears() []string

	// Data Generation. The returned error is reserved for invalid generator
	// input; storage failures are reported in the Result.
	Seed(ctx context.Context, env Env) (Result, error)
}

// Env is everything a module needs to generate and persist records.
type Env struct {
	Store     store.Store
	Rand      rng.Source
	Now       time.Time
	BatchSize int
	Text      narrative.Source
}

// Result reports what one module wrote and what went wrong.
type Result struct {
	Inserted map[string]int
	Errors   []string
}

// NewResult returns an empty result.
func NewResult() Result {
	return Result{Inserted: map[string]int{}}
}

// Add credits n inserted rows to table.
func (r *Result) Add(table string, n int) {
	if r.Inserted == nil {
		r.Inserted = map[string]int{}
	}
	r.Inserted[table] += n
}

// Errorf records a failure.
func (r *Result) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Total is the number of rows inserted across all tables.
func (r Result) Total() int {
	n := 0
	for _, c := range r.Inserted {
		n += c
	}
	return n
}

// Summary renders the counts as "table: n" pairs in table order.
func (r Result) Summary() string {
	tables := make([]string, 0, len(r.Inserted))
	for t := range r.Inserted {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	parts := make([]string, len(tables))
	for i, t := range tables {
		parts[i] = fmt.Sprintf("%s: %s", t, humanize.Comma(int64(r.Inserted[t])))
	}
	return strings.Join(parts, ", ")
}

// Clear soft-clears table, keeping only the sentinel row and any row that
// fails the extra conditions. A failure is recorded and seeding continues.
func (e Env) Clear(ctx context.Context, res *Result, table string, extra ...store.Condition) {
	if _, err := e.Store.Delete(ctx, table, store.SoftClear(extra...)); err != nil {
		res.Errorf("Clear %s: %v", table, err)
	}
}

// Write persists rows in batches and folds the batch results into res. An
// empty conflictKey inserts; otherwise rows are upserted on that column.
// Only an invalid batch size is returned as an error.
func (e Env) Write(ctx context.Context, res *Result, table string, rows []store.Row, conflictKey string) error {
	results, err := batch.Persist(ctx, e.Store, table, rows, batch.Options{Size: e.BatchSize, ConflictKey: conflictKey})
	if err != nil {
		return err
	}
	inserted, errs := batch.Totals(results)
	res.Add(table, inserted)
	res.Errors = append(res.Errors, errs...)
	return nil
}

// Pick returns one random entry of a text pool.
func (e Env) Pick(ctx context.Context, kind narrative.Kind, key string) string {
	return rng.Choice(e.Rand, e.Text.Pool(ctx, kind, key))
}

// PatientIDs returns up to limit ids of patients that are not soft-deleted.
// A failed lookup is recorded and yields no ids.
func (e Env) PatientIDs(ctx context.Context, res *Result, limit int) []string {
	rows, err := e.Store.Select(ctx, "patients", []string{"id"}, store.Filter{store.IsNull("deleted_at")}, limit)
	if err != nil {
		res.Errorf("Patients: %v", err)
		return nil
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if id, ok := r["id"].(string); ok && id != store.SentinelID {
			ids = append(ids, id)
		}
	}
	return ids
}
