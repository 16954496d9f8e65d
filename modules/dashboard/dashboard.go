// ABOUTME: Dashboard module: billing claims, six months of daily metrics, expenses, and payables.
// ABOUTME: Every table is cleared and regenerated from the injected random source.

package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/internal/temporal"
	"github.com/2389/demoseed/modules/core"
)

func init() {
	core.Register(&Module{})
}

const (
	// HistoryDays is how far back claims and metrics reach; today is included.
	HistoryDays = 180
	// ExpenseMonths is the number of calendar months of expense lines.
	ExpenseMonths = 6
	// metricGrowth is the daily production growth rate.
	metricGrowth = 0.001
)

// Module seeds the practice dashboard.
type Module struct{}

func (m *Module) Name() string        { return "dashboard" }
func (m *Module) Description() string { return "Billing claims, daily metrics, monthly expenses, and accounts payable" }

func (m *Module) Produces() []string {
	return []string{"billing_claims", "daily_metrics", "monthly_expenses", "accounts_payable"}
}

func (m *Module) Consumes() []string { return []string{"patients"} }
func (m *Module) Clears() []string   { return m.Produces() }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()
	patients := env.PatientIDs(ctx, &res, 50)

	claims, err := newClaims(env.Rand, env.Now, patients, ClaimCount)
	if err != nil {
		return res, err
	}
	metrics, err := dailyMetrics(env.Rand, env.Now)
	if err != nil {
		return res, err
	}

	writes := []struct {
		table string
		rows  []store.Row
	}{
		{"billing_claims", records.Rows(claims)},
		{"daily_metrics", records.Rows(metrics)},
		{"monthly_expenses", records.Rows(monthlyExpenses(env.Rand, env.Now))},
		{"accounts_payable", records.Rows(payables(env.Now))},
	}
	for _, w := range writes {
		env.Clear(ctx, &res, w.table)
		if err := env.Write(ctx, &res, w.table, w.rows, ""); err != nil {
			return res, err
		}
	}
	return res, nil
}

// openDay reports whether the practice reports metrics on wd (Monday to Thursday).
func openDay(wd time.Weekday) bool {
	return wd >= time.Monday && wd <= time.Thursday
}

func dailyMetrics(src rng.Source, now time.Time) ([]records.DailyMetric, error) {
	var out []records.DailyMetric
	for d := HistoryDays; d >= 0; d-- {
		date := temporal.DaysAgo(now, d)
		if !openDay(date.Weekday()) {
			continue
		}
		growth := temporal.Growth(HistoryDays-d, metricGrowth)
		newLeads := rng.Between(src, 1, 5)
		scheduled := rng.Between(src, 4, 10)
		production := int(math.Round(float64(rng.Between(src, 3500, 9000)) * growth))
		actions := rng.Between(src, 4, 15)
		submitted := rng.Between(src, 2, 6)

		m, err := records.NewDailyMetric(records.DailyMetric{
			Date:                    date,
			NewLeads:                newLeads,
			LeadsConverted:          rng.Between(src, 0, min(newLeads, 2)),
			AppointmentsScheduled:   scheduled,
			AppointmentsCompleted:   rng.Between(src, int(math.Round(float64(scheduled)*0.7)), scheduled),
			NoShows:                 rng.Between(src, 0, 2),
			Cancellations:           rng.Between(src, 0, 1),
			Production:              production,
			Collections:             int(math.Round(float64(production) * rng.Float(src, 0.85, 0.98))),
			ClaimsSubmitted:         submitted,
			ClaimsPaid:              rng.Between(src, 1, submitted),
			ClaimsDenied:            rng.Between(src, 0, 1),
			AIActionsTaken:          actions,
			AIActionsApproved:       rng.Between(src, int(math.Round(float64(actions)*0.8)), actions),
			AvgLeadResponseSeconds:  rng.Between(src, 20, 120),
			PatientMessagesSent:     rng.Between(src, 5, 20),
			PatientMessagesReceived: rng.Between(src, 2, 10),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
