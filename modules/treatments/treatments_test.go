// ABOUTME: Tests for the treatment plan module.
// ABOUTME: Checks plan totals and patient estimates and that reseeding replaces plans.

package treatments

import (
	"context"
	"testing"

	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/moduletest"
)

func TestSeed_PlansAndEstimates(t *testing.T) {
	mem := store.NewMemory()
	env := moduletest.Env(mem, 1)

	for run := 0; run < 2; run++ {
		res, err := (&Module{}).Seed(context.Background(), env)
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		if res.Inserted["treatment_plans"] != 4 || len(res.Errors) != 0 {
			t.Fatalf("run %d: inserted %v, errors %v", run, res.Inserted, res.Errors)
		}
	}

	want := map[string][2]int{
		PlanID(1): {1550, 775},
		PlanID(2): {5500, 4000},
		PlanID(3): {8000, 8000},
		PlanID(4): {6200, 4700},
	}
	rows := mem.Rows("treatment_plans")
	if len(rows) != 4 {
		t.Fatalf("table holds %d plans after two runs, want 4", len(rows))
	}
	for _, r := range rows {
		w, ok := want[r["id"].(string)]
		if !ok {
			t.Fatalf("unexpected plan id %v", r["id"])
		}
		if r["total_cost"] != w[0] || r["patient_estimate"] != w[1] {
			t.Errorf("%v: total %v patient %v, want %d/%d", r["title"], r["total_cost"], r["patient_estimate"], w[0], w[1])
		}
	}
}

func TestPlans_Validate(t *testing.T) {
	for _, p := range plans() {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", p.Title, err)
		}
	}
	bad := plans()[0]
	bad.InsuranceEstimate = bad.TotalCost() + 1
	if err := bad.Validate(); err == nil {
		t.Error("expected an estimate above the total to be rejected")
	}
}

func TestSeed_ClearThenWrite(t *testing.T) {
	rec := moduletest.NewRecorder()
	if _, err := (&Module{}).Seed(context.Background(), rec.Env(1)); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if len(rec.Ops) != 2 || rec.Ops[0] != "clear treatment_plans" || rec.Ops[1] != "write treatment_plans" {
		t.Errorf("ops = %v", rec.Ops)
	}
}
