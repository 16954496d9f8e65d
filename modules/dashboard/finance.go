// ABOUTME: Monthly expense lines and accounts payable for the dashboard module.
// ABOUTME: Fixed expenses repeat exactly each month; variable ones move within five percent.

package dashboard

import (
	"time"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/temporal"
)

type expenseItem struct {
	label    string
	category string
	base     float64
	fixed    bool
}

var expenseTemplate = []expenseItem{
	{"Payroll & Benefits", "Labor", 18500, false},
	{"Dental Supplies", "Clinical", 3200, false},
	{"Lab Fees", "Clinical", 4800, false},
	{"Rent / Lease", "Overhead", 5500, true},
	{"Equipment Leases", "Overhead", 1200, true},
	{"Insurance (Practice)", "Overhead", 800, true},
	{"Marketing", "Growth", 1500, false},
	{"Utilities", "Overhead", 650, false},
	{"Other / Miscellaneous", "Other", 450, false},
}

func monthlyExpenses(src rng.Source, now time.Time) []records.MonthlyExpense {
	var out []records.MonthlyExpense
	for _, m := range temporal.Months(now, ExpenseMonths) {
		for _, item := range expenseTemplate {
			variance := 1.0
			if !item.fixed {
				variance = 0.95 + src.Float64()*0.10
			}
			out = append(out, records.MonthlyExpense{
				ID:       records.NewID(),
				Month:    m.Start,
				Label:    item.label,
				Category: item.category,
				Amount:   records.ToCents(item.base * variance),
			})
		}
	}
	return out
}

func payables(now time.Time) []records.Payable {
	bills := []struct {
		vendor, description string
		amount              float64
		dueIn               int
		status              string
	}{
		{"Henry Schein", "Dental Supplies - Monthly Order", 2340, 5, "due_soon"},
		{"Patterson Dental", "Lab Fees - Crown/Bridge", 1850, 13, "upcoming"},
		{"Nevada Power Co.", "Utilities - Current Month", 650, 2, "due_soon"},
		{"Benco Dental", "Gloves & PPE Restock", 780, 20, "upcoming"},
		{"Google Ads", "Marketing - Monthly PPC", 1200, 15, "upcoming"},
		{"Dentsply Sirona", "CEREC Materials", 1420, 10, "upcoming"},
		{"ADP", "Payroll Processing", 385, 15, "upcoming"},
		{"Yelp Business", "Advertising - Monthly", 600, 25, "upcoming"},
	}
	out := make([]records.Payable, len(bills))
	for i, b := range bills {
		out[i] = records.Payable{
			ID:          records.NewID(),
			Vendor:      b.vendor,
			Description: b.description,
			Amount:      records.ToCents(b.amount),
			DueDate:     temporal.DaysAgo(now, -b.dueIn),
			Status:      b.status,
		}
	}
	return out
}
