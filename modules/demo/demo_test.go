// ABOUTME: Tests for the demo practice module.
// ABOUTME: Verifies fixture counts, fixed ids, referential links, and destructive reseeding.

package demo

import (
	"context"
	"strings"
	"testing"

	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/moduletest"
)

var wantCounts = map[string]int{
	"patients":                12,
	"appointments":            8,
	"leads":                   4,
	"ai_actions":              10,
	"insurance_verifications": 5,
	"outreach_messages":       10,
	"daily_metrics":           7,
}

func seedDemo(t *testing.T, mem *store.Memory) {
	t.Helper()
	res, err := (&Module{}).Seed(context.Background(), moduletest.Env(mem, 1))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("Seed reported errors: %v", res.Errors)
	}
	for table, want := range wantCounts {
		if res.Inserted[table] != want {
			t.Errorf("inserted %d %s, want %d", res.Inserted[table], table, want)
		}
	}
}

func TestSeed_Snapshot(t *testing.T) {
	mem := store.NewMemory()
	seedDemo(t, mem)

	patients := mem.Rows("patients")
	if patients[0]["id"] != "a0000001-0000-0000-0000-000000000001" {
		t.Errorf("first patient id = %v", patients[0]["id"])
	}
	if patients[7]["insurance_provider"] != nil {
		t.Errorf("cash-pay patient has insurance %v", patients[7]["insurance_provider"])
	}
	if patients[10]["last_visit"] != nil || patients[10]["status"] != "prospect" {
		t.Errorf("prospect patient = %v", patients[10])
	}
	if patients[0]["last_visit"] != "2026-10-01" {
		t.Errorf("last_visit = %v, want 14 days before the clock", patients[0]["last_visit"])
	}

	today := 0
	for _, a := range mem.Rows("appointments") {
		if a["appointment_date"] == "2026-10-15" {
			today++
		}
	}
	if today != 5 {
		t.Errorf("%d appointments today, want 5", today)
	}
}

func TestSeed_ReferencesResolve(t *testing.T) {
	mem := store.NewMemory()
	seedDemo(t, mem)

	ids := map[string]bool{}
	for _, id := range moduletest.Strings(mem.Rows("patients"), "id") {
		ids[id] = true
	}
	for _, id := range moduletest.Strings(mem.Rows("leads"), "id") {
		ids[id] = true
	}
	for _, table := range []string{"appointments", "insurance_verifications", "outreach_messages", "ai_actions"} {
		for _, id := range moduletest.Strings(mem.Rows(table), "patient_id") {
			if !ids[id] {
				t.Errorf("%s references unknown patient %s", table, id)
			}
		}
	}
	for _, id := range moduletest.Strings(mem.Rows("ai_actions"), "lead_id") {
		if !ids[id] {
			t.Errorf("ai_actions references unknown lead %s", id)
		}
	}
}

func TestSeed_RerunReplacesSnapshot(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	mem.Insert(ctx, "patients", []store.Row{{"id": store.SentinelID, "first_name": "Sentinel"}})
	mem.Insert(ctx, "billing_claims", []store.Row{{"id": "stale-claim"}})

	seedDemo(t, mem)
	seedDemo(t, mem)

	if got := mem.Count("patients"); got != 13 {
		t.Errorf("patients = %d, want 12 plus the sentinel", got)
	}
	if got := mem.Count("billing_claims"); got != 0 {
		t.Errorf("billing_claims = %d, want the demo clear to empty it", got)
	}
	for table, want := range wantCounts {
		if table == "patients" {
			continue
		}
		if got := mem.Count(table); got != want {
			t.Errorf("%s holds %d rows after rerun, want %d", table, got, want)
		}
	}
}

func TestSeed_ClearsBeforeAnyWrite(t *testing.T) {
	rec := moduletest.NewRecorder()
	if _, err := (&Module{}).Seed(context.Background(), rec.Env(1)); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	lastClear, firstWrite := -1, -1
	for i, op := range rec.Ops {
		switch {
		case strings.HasPrefix(op, "clear "):
			lastClear = i
		case strings.HasPrefix(op, "write ") && firstWrite < 0:
			firstWrite = i
		}
	}
	if lastClear < 0 || firstWrite < lastClear {
		t.Errorf("ops = %v, want every clear before the first write", rec.Ops)
	}
}
