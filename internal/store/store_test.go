// ABOUTME: Tests for SQLite store initialization, schema migrations, and row operations.
// ABOUTME: Runs against a real temp-file database.

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQL {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test_demoseed.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	s := newTestStore(t)

	tables := append(Tables(), "seed_runs", "schema_migrations")
	for _, table := range tables {
		var name string
		err := s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}

	var version int
	if err := s.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		t.Fatalf("reading schema version: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.Close()

	s, err = New(path)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	defer s.Close()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("schema_migrations has %d rows, want %d", count, len(migrations))
	}
}

func TestSQL_SoftClearKeepsSentinel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rows := []Row{
		{"id": SentinelID, "direction": "inbound", "status": "answered"},
		{"id": "c1", "direction": "inbound", "status": "missed"},
		{"id": "c2", "direction": "outbound", "status": "answered", "duration_seconds": 120},
	}
	if _, err := s.Insert(ctx, "calls", rows); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	n, err := s.Delete(ctx, "calls", SoftClear())
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Delete() removed %d rows, want 2", n)
	}

	left, err := s.Select(ctx, "calls", []string{"id"}, nil, 0)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(left) != 1 || left[0]["id"] != SentinelID {
		t.Errorf("remaining rows = %v, want only the sentinel", left)
	}
}

func TestSQL_UpsertUpdatesExistingRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	emp := Row{"id": "e1", "first_name": "Jessica", "last_name": "Ramirez", "status": "active"}
	if _, err := s.Upsert(ctx, "employees", []Row{emp}, "id"); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	emp["status"] = "on_leave"
	if _, err := s.Upsert(ctx, "employees", []Row{emp}, "id"); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	got, err := s.Select(ctx, "employees", []string{"id", "status"}, nil, 0)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("employees has %d rows, want 1", len(got))
	}
	if got[0]["status"] != "on_leave" {
		t.Errorf("status = %v, want on_leave", got[0]["status"])
	}
}

func TestSQL_ForeignKeyViolationFails(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Insert(context.Background(), "appointments", []Row{{
		"id":               "appt-1",
		"patient_id":       "no-such-patient",
		"appointment_date": "2026-01-05",
		"appointment_time": "09:00",
		"status":           "scheduled",
	}})
	if err == nil {
		t.Fatal("Insert() with unknown patient succeeded, want foreign key error")
	}
}

func TestSQL_SelectFilterAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var rows []Row
	for i, status := range []string{"active", "active", "inactive", "active"} {
		rows = append(rows, Row{
			"id":         string(rune('a' + i)),
			"first_name": "P",
			"last_name":  "Q",
			"status":     status,
		})
	}
	if _, err := s.Insert(ctx, "patients", rows); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := s.Select(ctx, "patients", []string{"id"}, Filter{Eq("status", "active"), IsNull("deleted_at")}, 2)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Select() returned %d rows, want 2", len(got))
	}
	if got[0]["id"] != "a" || got[1]["id"] != "b" {
		t.Errorf("Select() = %v, want ids a, b", got)
	}
}

func TestSQL_RecordAndListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := []*SeedRun{
		{ID: "r1", Module: "all", State: "COMPLETED", Success: true, TotalInserted: 900, StartedAt: base},
		{ID: "r2", Module: "calls", State: "COMPLETED", Success: false, TotalInserted: 500, ErrorCount: 1,
			Errors: []string{"[calls] calls batch 1: disk full"}, StartedAt: base.Add(time.Hour)},
	}
	for _, r := range runs {
		if err := s.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	got, err := s.ListRuns(ctx, RunQuery{})
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(got))
	}
	if got[0].ID != "r2" {
		t.Errorf("newest run = %s, want r2", got[0].ID)
	}
	if len(got[0].Errors) != 1 || got[0].Errors[0] != "[calls] calls batch 1: disk full" {
		t.Errorf("errors = %v", got[0].Errors)
	}
	if got[0].Success {
		t.Error("r2 success = true, want false")
	}

	filtered, err := s.ListRuns(ctx, RunQuery{Module: "all"})
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "r1" {
		t.Errorf("filtered runs = %v", filtered)
	}
}
