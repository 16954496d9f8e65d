// ABOUTME: Tests for the provider roster module.
// ABOUTME: Checks roster and schedule counts, referral timestamps, and the early exit on roster failure.

package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/moduletest"
)

func seedProviders(t *testing.T, mem *store.Memory, seed uint64) map[string]int {
	t.Helper()
	res, err := (&Module{}).Seed(context.Background(), moduletest.Env(mem, seed))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("Seed reported errors: %v", res.Errors)
	}
	return res.Inserted
}

func TestSeed_RosterAndSchedules(t *testing.T) {
	mem := store.NewMemory()
	got := seedProviders(t, mem, 1)

	want := map[string]int{"providers": 6, "provider_availability": 29, "provider_blocks": 7, "referrals": ReferralCount}
	for table, n := range want {
		if got[table] != n {
			t.Errorf("inserted %d %s, want %d", got[table], table, n)
		}
	}

	providerIDs := map[string]bool{}
	for _, id := range moduletest.Strings(mem.Rows("providers"), "id") {
		providerIDs[id] = true
	}
	for _, table := range []string{"provider_availability", "provider_blocks"} {
		for _, id := range moduletest.Strings(mem.Rows(table), "provider_id") {
			if !providerIDs[id] {
				t.Errorf("%s references unknown provider %s", table, id)
			}
		}
	}

	partial := 0
	for _, b := range mem.Rows("provider_blocks") {
		if b["all_day"] == false {
			partial++
			if b["start_time"] != "12:00" || b["end_time"] != "13:00" {
				t.Errorf("partial block times = %v-%v", b["start_time"], b["end_time"])
			}
		}
	}
	if partial != 1 {
		t.Errorf("%d partial-day blocks, want 1", partial)
	}
}

func TestSeed_ReferralTimestampsFollowStatus(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		mem := store.NewMemory()
		mem.Insert(context.Background(), "patients", []store.Row{{"id": "p1"}, {"id": "p2"}})
		seedProviders(t, mem, seed)

		for _, r := range mem.Rows("referrals") {
			created := r["created_at"].(time.Time)
			if age := moduletest.Now.Sub(created); age < 0 || age >= ReferralWindowDays*24*time.Hour {
				t.Errorf("referral created %v ago, outside the window", age)
			}
			if r["patient_id"] != "p1" && r["patient_id"] != "p2" {
				t.Errorf("referral patient = %v", r["patient_id"])
			}

			status := r["status"].(string)
			sent, _ := r["sent_at"].(time.Time)
			done, _ := r["completed_at"].(time.Time)
			switch status {
			case records.ReferralPending, records.ReferralCancelled:
				if r["sent_at"] != nil || r["completed_at"] != nil {
					t.Errorf("%s referral has timestamps", status)
				}
			case records.ReferralCompleted:
				if !done.Equal(created.Add(records.ReferralCompleteDelay)) {
					t.Errorf("completed_at = %v, want 14 days after %v", done, created)
				}
				fallthrough
			default:
				if !sent.Equal(created.Add(records.ReferralSendDelay)) {
					t.Errorf("%s referral sent_at = %v, want a day after %v", status, sent, created)
				}
				if status != records.ReferralCompleted && r["completed_at"] != nil {
					t.Errorf("%s referral has completed_at", status)
				}
			}
		}
	}
}

func TestSeed_NoPatientsLeavesReferralsUnlinked(t *testing.T) {
	mem := store.NewMemory()
	seedProviders(t, mem, 5)
	for _, r := range mem.Rows("referrals") {
		if r["patient_id"] != nil {
			t.Fatalf("referral linked to %v with no patients seeded", r["patient_id"])
		}
	}
}

func TestSeed_RosterFailureStopsDependentWrites(t *testing.T) {
	mem := store.NewMemory()
	mem.Fail = func(table string, rows []store.Row) error {
		if table == "providers" {
			return errors.New("constraint failed")
		}
		return nil
	}

	res, err := (&Module{}).Seed(context.Background(), moduletest.Env(mem, 1))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %v, want the batch failure and the skip notice", res.Errors)
	}
	for _, table := range []string{"provider_availability", "provider_blocks", "referrals"} {
		if mem.Count(table) != 0 {
			t.Errorf("%s written despite the roster failure", table)
		}
	}
}

func TestSeed_ClearsAfterBuildingEverything(t *testing.T) {
	rec := moduletest.NewRecorder()
	if _, err := (&Module{}).Seed(context.Background(), rec.Env(1)); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	want := len(clearOrder)
	for i, table := range clearOrder {
		if rec.Ops[i] != "clear "+table {
			t.Fatalf("ops = %v, want the clears first", rec.Ops)
		}
	}
	if rec.Ops[want] != "write providers" || rec.Index("write referrals") < 0 {
		t.Errorf("ops = %v", rec.Ops)
	}
}
