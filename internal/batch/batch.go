// ABOUTME: Batched persistence of generated rows with per-batch failure isolation.
// ABOUTME: A failed batch is recorded and skipped; the remaining batches still run.

package batch

import (
	"context"
	"fmt"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// DefaultSize is the batch size used when a module does not choose one.
const DefaultSize = 500

// Writer is the part of store.Store that persistence needs.
type Writer interface {
	Insert(ctx context.Context, table string, rows []store.Row) (int, error)
	Upsert(ctx context.Context, table string, rows []store.Row, conflictKey string) (int, error)
}

// Options controls how rows are written.
type Options struct {
	// Size is the maximum number of rows per storage call.
	Size int
	// ConflictKey switches every call from insert to upsert on that column.
	ConflictKey string
}

// BatchResult describes one storage call, or the rows left unwritten when the
// context ended before the call could be made.
type BatchResult struct {
	Table    string
	Index    int
	Rows     int
	Inserted int
	Errors   []string
}

// Persist splits rows into ceil(len(rows)/Size) contiguous batches and writes
// them in order. A batch that fails contributes one error and zero inserted
// rows; later batches are still attempted. Batches are never retried.
//
// The returned error is non-nil only for invalid options. Storage failures are
// reported through the results.
func Persist(ctx context.Context, w Writer, table string, rows []store.Row, opts Options) ([]BatchResult, error) {
	if opts.Size <= 0 {
		return nil, seederrors.Invalid("batch_size", "must be positive, got %d", opts.Size)
	}

	var results []BatchResult
	for i, start := 0, 0; start < len(rows); i, start = i+1, start+opts.Size {
		end := min(start+opts.Size, len(rows))
		res := BatchResult{Table: table, Index: i, Rows: end - start}

		if err := ctx.Err(); err != nil {
			res.Rows = len(rows) - start
			res.Errors = []string{fmt.Sprintf("%s batch %d: %v (%d rows not written)", table, i, err, res.Rows)}
			results = append(results, res)
			break
		}

		var n int
		var err error
		if opts.ConflictKey != "" {
			n, err = w.Upsert(ctx, table, rows[start:end], opts.ConflictKey)
		} else {
			n, err = w.Insert(ctx, table, rows[start:end])
		}
		if err != nil {
			perr := &seederrors.PersistenceError{Table: table, Batch: i, Err: err}
			res.Errors = []string{perr.Error()}
		} else {
			res.Inserted = n
		}
		results = append(results, res)
	}
	return results, nil
}

// Totals sums inserted rows and collects every error across results.
func Totals(results []BatchResult) (int, []string) {
	inserted := 0
	var errs []string
	for _, r := range results {
		inserted += r.Inserted
		errs = append(errs, r.Errors...)
	}
	return inserted, errs
}
