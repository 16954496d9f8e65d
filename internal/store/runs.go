// ABOUTME: Seed run history storage operations.
// ABOUTME: Handles inserting and querying the seed_runs table.

package store

import (
	"context"
	"encoding/json"
	"time"
)

// SeedRun is one orchestrated seeding run.
type SeedRun struct {
	ID            string    `json:"id"`
	Module        string    `json:"module"`
	State         string    `json:"state"`
	Success       bool      `json:"success"`
	TotalInserted int       `json:"total_inserted"`
	ErrorCount    int       `json:"error_count"`
	Errors        []string  `json:"errors"`
	DurationMs    int64     `json:"duration_ms"`
	StartedAt     time.Time `json:"started_at"`
}

// RunQuery represents filters for run history
type RunQuery struct {
	Limit  int
	Module string
}

// RunLog persists and lists run history.
type RunLog interface {
	RecordRun(ctx context.Context, run *SeedRun) error
	ListRuns(ctx context.Context, q RunQuery) ([]*SeedRun, error)
}

// RecordRun inserts a run entry
func (s *SQL) RecordRun(ctx context.Context, run *SeedRun) error {
	errs, err := json.Marshal(run.Errors)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO seed_runs (id, module, state, success, total_inserted, error_count, errors, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), run.ID, run.Module, run.State, run.Success, run.TotalInserted, run.ErrorCount, string(errs), run.DurationMs, run.StartedAt.UTC())
	return err
}

// ListRuns retrieves runs newest first
func (s *SQL) ListRuns(ctx context.Context, q RunQuery) ([]*SeedRun, error) {
	query := `SELECT id, module, state, success, total_inserted, error_count, COALESCE(errors, '[]'), duration_ms, started_at
	          FROM seed_runs WHERE 1=1`
	args := []any{}

	if q.Module != "" {
		query += " AND module = ?"
		args = append(args, q.Module)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	query += " ORDER BY started_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*SeedRun
	for rows.Next() {
		run := &SeedRun{}
		var errs string
		if err := rows.Scan(&run.ID, &run.Module, &run.State, &run.Success, &run.TotalInserted,
			&run.ErrorCount, &errs, &run.DurationMs, &run.StartedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(errs), &run.Errors); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
