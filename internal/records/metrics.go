// ABOUTME: Daily practice metrics, monthly expenses, and payables.
// ABOUTME: NewDailyMetric rejects dependent counts that exceed the counts they derive from.

package records

import (
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// DailyMetric is one day of practice performance.
type DailyMetric struct {
	ID                      string
	Date                    time.Time
	NewLeads                int
	LeadsConverted          int
	AppointmentsScheduled   int
	AppointmentsCompleted   int
	NoShows                 int
	Cancellations           int
	Production              int
	Collections             int
	ClaimsSubmitted         int
	ClaimsPaid              int
	ClaimsDenied            int
	AIActionsTaken          int
	AIActionsApproved       int
	AvgLeadResponseSeconds  int
	PatientMessagesSent     int
	PatientMessagesReceived int
}

// NewDailyMetric assigns an id and checks the dependent counts.
func NewDailyMetric(m DailyMetric) (DailyMetric, error) {
	pairs := []struct {
		field     string
		dependent int
		base      int
	}{
		{"leads_converted", m.LeadsConverted, m.NewLeads},
		{"appointments_completed", m.AppointmentsCompleted, m.AppointmentsScheduled},
		{"claims_paid", m.ClaimsPaid, m.ClaimsSubmitted},
		{"ai_actions_approved", m.AIActionsApproved, m.AIActionsTaken},
	}
	for _, p := range pairs {
		if p.dependent < 0 || p.base < 0 {
			return DailyMetric{}, seederrors.Invalid(p.field, "counts must be non-negative")
		}
		if p.dependent > p.base {
			return DailyMetric{}, seederrors.Invalid(p.field, "%d exceeds its base count %d", p.dependent, p.base)
		}
	}
	if m.Collections < 0 || m.Production < 0 {
		return DailyMetric{}, seederrors.Invalid("production", "amounts must be non-negative")
	}
	m.ID = NewID()
	return m, nil
}

func (DailyMetric) Table() string { return "daily_metrics" }

func (m DailyMetric) Row() store.Row {
	return store.Row{
		"id":                        m.ID,
		"date":                      Date(m.Date),
		"new_leads":                 m.NewLeads,
		"leads_converted":           m.LeadsConverted,
		"appointments_scheduled":    m.AppointmentsScheduled,
		"appointments_completed":    m.AppointmentsCompleted,
		"no_shows":                  m.NoShows,
		"cancellations":             m.Cancellations,
		"production":                m.Production,
		"collections":               m.Collections,
		"claims_submitted":          m.ClaimsSubmitted,
		"claims_paid":               m.ClaimsPaid,
		"claims_denied":             m.ClaimsDenied,
		"ai_actions_taken":          m.AIActionsTaken,
		"ai_actions_approved":       m.AIActionsApproved,
		"avg_lead_response_seconds": m.AvgLeadResponseSeconds,
		"patient_messages_sent":     m.PatientMessagesSent,
		"patient_messages_received": m.PatientMessagesReceived,
	}
}

// MonthlyExpense is one expense line for a month.
type MonthlyExpense struct {
	ID       string
	Month    time.Time
	Label    string
	Category string
	Amount   Cents
}

func (MonthlyExpense) Table() string { return "monthly_expenses" }

func (e MonthlyExpense) Row() store.Row {
	return store.Row{
		"id":       e.ID,
		"month":    Date(e.Month),
		"label":    e.Label,
		"category": e.Category,
		"amount":   e.Amount.Dollars(),
	}
}

// Payable is an upcoming vendor bill.
type Payable struct {
	ID          string
	Vendor      string
	Description string
	Amount      Cents
	DueDate     time.Time
	Status      string
}

func (Payable) Table() string { return "accounts_payable" }

func (p Payable) Row() store.Row {
	return store.Row{
		"id":          p.ID,
		"vendor":      p.Vendor,
		"description": p.Description,
		"amount":      p.Amount.Dollars(),
		"due_date":    Date(p.DueDate),
		"status":      p.Status,
	}
}
