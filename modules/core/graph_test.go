// ABOUTME: Tests for dependency ordering of modules.
// ABOUTME: Checks foreign-key ordering, clear-before-produce edges, tie-breaking, and cycles.

package core

import (
	"strings"
	"testing"

	seederrors "github.com/2389/demoseed/internal/errors"
)

func names(mods []Module) string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.Name()
	}
	return strings.Join(out, ",")
}

// practiceModules mirrors the table footprint of the real modules.
func practiceModules() []Module {
	return []Module{
		&mockModule{name: "treatments", produces: []string{"treatment_plans"}, consumes: []string{"patients"}, clears: []string{"treatment_plans"}},
		&mockModule{name: "outreach", produces: []string{"outreach_workflows", "outreach_messages"}, consumes: []string{"patients"}, clears: []string{"outreach_messages"}},
		&mockModule{name: "providers", produces: []string{"providers", "referrals"}, consumes: []string{"patients"}, clears: []string{"providers", "referrals"}},
		&mockModule{name: "benefits", produces: []string{"benefit_enrollments"}, consumes: []string{"employees"}},
		&mockModule{name: "hr", produces: []string{"employees", "hr_documents"}},
		&mockModule{name: "licensing", produces: []string{"licenses"}, clears: []string{"licenses"}},
		&mockModule{name: "dashboard", produces: []string{"billing_claims", "daily_metrics"}, consumes: []string{"patients"}, clears: []string{"billing_claims", "daily_metrics"}},
		&mockModule{name: "calls", produces: []string{"calls"}, clears: []string{"calls"}},
		&mockModule{name: "demo", produces: []string{"patients", "outreach_messages", "daily_metrics"}, clears: []string{"patients", "outreach_messages", "daily_metrics", "billing_claims", "treatment_plans"}},
	}
}

func TestOrder_PracticeModules(t *testing.T) {
	ordered, err := Order(practiceModules())
	if err != nil {
		t.Fatalf("Order() error = %v", err)
	}
	want := "calls,demo,dashboard,hr,benefits,licensing,outreach,providers,treatments"
	if got := names(ordered); got != want {
		t.Errorf("Order() = %s\nwant      %s", got, want)
	}
}

func TestOrder_ProducerBeforeConsumer(t *testing.T) {
	mods := practiceModules()
	ordered, err := Order(mods)
	if err != nil {
		t.Fatalf("Order() error = %v", err)
	}
	pos := map[string]int{}
	for i, m := range ordered {
		pos[m.Name()] = i
	}
	for _, e := range Edges(mods) {
		if pos[e.From] >= pos[e.To] {
			t.Errorf("edge %s -> %s (%s) violated", e.From, e.To, e.Table)
		}
	}
}

func TestEdges_ClearBeforeOtherProducer(t *testing.T) {
	mods := []Module{
		&mockModule{name: "a", produces: []string{"claims"}},
		&mockModule{name: "z", clears: []string{"claims"}},
	}
	ordered, err := Order(mods)
	if err != nil {
		t.Fatalf("Order() error = %v", err)
	}
	if got := names(ordered); got != "z,a" {
		t.Errorf("Order() = %s, want the clearer first", got)
	}
}

func TestEdges_SharedClearedTableAddsNoEdge(t *testing.T) {
	mods := []Module{
		&mockModule{name: "a", produces: []string{"messages"}, clears: []string{"messages"}},
		&mockModule{name: "b", produces: []string{"messages"}, clears: []string{"messages"}},
	}
	if e := Edges(mods); len(e) != 0 {
		t.Errorf("Edges() = %v, want none", e)
	}
}

func TestOrder_Cycle(t *testing.T) {
	mods := []Module{
		&mockModule{name: "a", produces: []string{"x"}, consumes: []string{"y"}},
		&mockModule{name: "b", produces: []string{"y"}, consumes: []string{"x"}},
		&mockModule{name: "c", produces: []string{"z"}},
	}
	_, err := Order(mods)
	if !seederrors.IsOrchestration(err) {
		t.Fatalf("Order() error = %v, want OrchestrationError", err)
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Errorf("error = %q, want it to name the cycle", err)
	}
}

func TestOrder_SelfConsumptionIsNotACycle(t *testing.T) {
	mods := []Module{&mockModule{name: "a", produces: []string{"x"}, consumes: []string{"x"}}}
	if _, err := Order(mods); err != nil {
		t.Errorf("Order() error = %v", err)
	}
}
