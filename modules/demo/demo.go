// ABOUTME: Demo practice module: the hand-curated patients, schedule, leads, and inbox.
// ABOUTME: Clears every demo table in dependency order and rebuilds a consistent snapshot around now.

package demo

import (
	"context"
	"fmt"
	"log"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/modules/core"
)

func init() {
	core.Register(&Module{})
}

// Doctor is the treating dentist named on appointments, plans, and approvals.
const Doctor = "Dr. Alex Khachaturian"

// PatientID returns the fixed id of the n-th demo patient (1-based).
func PatientID(n int) string {
	return fmt.Sprintf("a0000001-0000-0000-0000-%012d", n)
}

// LeadID returns the fixed id of the n-th demo lead (1-based).
func LeadID(n int) string {
	return fmt.Sprintf("b0000001-0000-0000-0000-%012d", n)
}

// clearOrder lists tables children first so foreign keys never block a delete.
var clearOrder = []string{
	"ai_actions", "outreach_messages", "insurance_verifications",
	"billing_claims", "treatment_plans", "appointments",
	"lead_nurture_sequences", "patient_reactivation_sequences",
	"leads", "patients", "daily_metrics",
}

// Module seeds the demo snapshot.
type Module struct{}

func (m *Module) Name() string        { return "demo" }
func (m *Module) Description() string { return "Demo patients, today's schedule, leads, approvals, and inbox" }

func (m *Module) Produces() []string {
	return []string{
		"patients", "appointments", "leads", "ai_actions",
		"insurance_verifications", "outreach_messages", "daily_metrics",
	}
}

func (m *Module) Consumes() []string { return nil }
func (m *Module) Clears() []string   { return clearOrder }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	f := newFixtures(env.Now)
	metrics := make([]records.DailyMetric, 0, len(f.metrics))
	for _, dm := range f.metrics {
		v, err := records.NewDailyMetric(dm)
		if err != nil {
			return res, err
		}
		metrics = append(metrics, v)
	}

	writes := []struct {
		table string
		rows  []records.Record
	}{
		{"patients", asRecords(f.patients)},
		{"appointments", asRecords(f.appointments)},
		{"leads", asRecords(f.leads)},
		{"ai_actions", asRecords(f.actions)},
		{"insurance_verifications", asRecords(f.verifications)},
		{"outreach_messages", asRecords(f.inbox)},
		{"daily_metrics", asRecords(metrics)},
	}
	for _, table := range clearOrder {
		env.Clear(ctx, &res, table)
	}
	for _, w := range writes {
		if err := env.Write(ctx, &res, w.table, records.Rows(w.rows), ""); err != nil {
			return res, err
		}
	}

	log.Printf("Seeded demo practice: %d patients, %d appointments, %d leads", res.Inserted["patients"], res.Inserted["appointments"], res.Inserted["leads"])
	return res, nil
}

func asRecords[T records.Record](in []T) []records.Record {
	out := make([]records.Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}
