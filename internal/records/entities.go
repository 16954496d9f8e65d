// ABOUTME: Supporting entity records that other records reference.
// ABOUTME: Patients, leads, appointments, AI actions, insurance checks, and treatment plans.

package records

import (
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// Patient is a person on the practice roster.
type Patient struct {
	ID                   string
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	DateOfBirth          string
	Address              string
	City                 string
	State                string
	Zip                  string
	InsuranceProvider    string
	InsuranceMemberID    string
	InsuranceGroupNumber string
	Status               string
	LastVisit            *time.Time
	Tags                 []string
}

// Name is "First Last".
func (p Patient) Name() string { return p.FirstName + " " + p.LastName }

func (Patient) Table() string { return "patients" }

func (p Patient) Row() store.Row {
	return store.Row{
		"id":                     p.ID,
		"first_name":             p.FirstName,
		"last_name":              p.LastName,
		"email":                  OptString(p.Email),
		"phone":                  OptString(p.Phone),
		"date_of_birth":          OptString(p.DateOfBirth),
		"address":                OptString(p.Address),
		"city":                   OptString(p.City),
		"state":                  OptString(p.State),
		"zip":                    OptString(p.Zip),
		"insurance_provider":     OptString(p.InsuranceProvider),
		"insurance_member_id":    OptString(p.InsuranceMemberID),
		"insurance_group_number": OptString(p.InsuranceGroupNumber),
		"status":                 p.Status,
		"last_visit":             OptDate(p.LastVisit),
		"tags":                   p.Tags,
		"deleted_at":             nil,
	}
}

// Appointment is a scheduled visit.
type Appointment struct {
	ID                string
	PatientID         string
	ProviderName      string
	Date              time.Time
	Time              string
	DurationMinutes   int
	Type              string
	Status            string
	ConfirmationSent  bool
	Reminder24hSent   bool
	Reminder2hSent    bool
	InsuranceVerified bool
}

func (Appointment) Table() string { return "appointments" }

func (a Appointment) Row() store.Row {
	return store.Row{
		"id":                 a.ID,
		"patient_id":         a.PatientID,
		"provider_name":      a.ProviderName,
		"appointment_date":   Date(a.Date),
		"appointment_time":   a.Time,
		"duration_minutes":   a.DurationMinutes,
		"type":               a.Type,
		"status":             a.Status,
		"confirmation_sent":  a.ConfirmationSent,
		"reminder_24h_sent":  a.Reminder24hSent,
		"reminder_2h_sent":   a.Reminder2hSent,
		"insurance_verified": a.InsuranceVerified,
	}
}

// Lead is an inbound prospective patient inquiry.
type Lead struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Source          string
	Status          string
	InquiryType     string
	Message         string
	Urgency         string
	AIResponseDraft string
	CreatedAt       time.Time
}

// Name is "First Last".
func (l Lead) Name() string { return l.FirstName + " " + l.LastName }

func (Lead) Table() string { return "leads" }

func (l Lead) Row() store.Row {
	return store.Row{
		"id":                l.ID,
		"first_name":        l.FirstName,
		"last_name":         l.LastName,
		"email":             OptString(l.Email),
		"phone":             OptString(l.Phone),
		"source":            l.Source,
		"status":            l.Status,
		"inquiry_type":      l.InquiryType,
		"message":           l.Message,
		"urgency":           l.Urgency,
		"ai_response_draft": OptString(l.AIResponseDraft),
		"created_at":        l.CreatedAt.UTC(),
	}
}

// AIAction is an entry in the AI approval queue.
type AIAction struct {
	ID          string
	ActionType  string
	Module      string
	Description string
	Input       map[string]string
	Output      map[string]string
	Status      string
	LeadID      string
	PatientID   string
	Confidence  float64
	ApprovedBy  string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
}

func (AIAction) Table() string { return "ai_actions" }

func (a AIAction) Row() store.Row {
	in, out := a.Input, a.Output
	if in == nil {
		in = map[string]string{}
	}
	if out == nil {
		out = map[string]string{}
	}
	return store.Row{
		"id":               a.ID,
		"action_type":      a.ActionType,
		"module":           a.Module,
		"description":      a.Description,
		"input_data":       in,
		"output_data":      out,
		"status":           a.Status,
		"lead_id":          OptString(a.LeadID),
		"patient_id":       OptString(a.PatientID),
		"confidence_score": a.Confidence,
		"approved_by":      OptString(a.ApprovedBy),
		"approved_at":      OptTime(a.ApprovedAt),
		"created_at":       a.CreatedAt.UTC(),
	}
}

// Coverage is the benefit breakdown returned by a completed verification.
type Coverage struct {
	Type          string
	Deductible    int
	DeductibleMet int
	AnnualMaximum int
	AnnualUsed    int
	Preventive    int
	Basic         int
	Major         int
	Orthodontic   int
}

// InsuranceVerification is an eligibility check. Pending checks have no
// coverage and no verifier.
type InsuranceVerification struct {
	ID                string
	PatientID         string
	InsuranceProvider string
	MemberID          string
	GroupNumber       string
	Status            string
	Coverage          *Coverage
	VerifiedBy        string
	VerifiedAt        *time.Time
}

func (InsuranceVerification) Table() string { return "insurance_verifications" }

func (v InsuranceVerification) Row() store.Row {
	r := store.Row{
		"id":                   v.ID,
		"patient_id":           v.PatientID,
		"insurance_provider":   v.InsuranceProvider,
		"member_id":            v.MemberID,
		"group_number":         v.GroupNumber,
		"status":               v.Status,
		"coverage_type":        nil,
		"deductible":           nil,
		"deductible_met":       nil,
		"annual_maximum":       nil,
		"annual_used":          nil,
		"preventive_coverage":  nil,
		"basic_coverage":       nil,
		"major_coverage":       nil,
		"orthodontic_coverage": nil,
		"verified_by":          OptString(v.VerifiedBy),
		"verified_at":          OptTime(v.VerifiedAt),
	}
	if c := v.Coverage; c != nil {
		r["coverage_type"] = c.Type
		r["deductible"] = c.Deductible
		r["deductible_met"] = c.DeductibleMet
		r["annual_maximum"] = c.AnnualMaximum
		r["annual_used"] = c.AnnualUsed
		r["preventive_coverage"] = c.Preventive
		r["basic_coverage"] = c.Basic
		r["major_coverage"] = c.Major
		r["orthodontic_coverage"] = c.Orthodontic
	}
	return r
}

// PlannedProcedure is one line of a treatment plan.
type PlannedProcedure struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// TreatmentPlan is a proposed course of treatment for one patient.
type TreatmentPlan struct {
	ID                string
	PatientID         string
	ProviderName      string
	Title             string
	Status            string
	Procedures        []PlannedProcedure
	InsuranceEstimate int
	AISummary         string
}

// TotalCost sums the procedure costs.
func (t TreatmentPlan) TotalCost() int {
	total := 0
	for _, p := range t.Procedures {
		total += p.Cost
	}
	return total
}

// PatientEstimate is what insurance leaves to the patient.
func (t TreatmentPlan) PatientEstimate() int {
	return t.TotalCost() - t.InsuranceEstimate
}

// Validate rejects plans without procedures and insurance estimates larger
// than the plan.
func (t TreatmentPlan) Validate() error {
	if len(t.Procedures) == 0 {
		return seederrors.Invalid("procedures", "plan %q has no procedures", t.Title)
	}
	for _, p := range t.Procedures {
		if p.Cost < 0 {
			return seederrors.Invalid("cost", "%s has negative cost %d", p.Code, p.Cost)
		}
	}
	if t.InsuranceEstimate < 0 || t.InsuranceEstimate > t.TotalCost() {
		return seederrors.Invalid("insurance_estimate", "%d is outside 0..%d", t.InsuranceEstimate, t.TotalCost())
	}
	return nil
}

func (TreatmentPlan) Table() string { return "treatment_plans" }

func (t TreatmentPlan) Row() store.Row {
	return store.Row{
		"id":                 t.ID,
		"patient_id":         t.PatientID,
		"provider_name":      t.ProviderName,
		"title":              t.Title,
		"status":             t.Status,
		"procedures":         t.Procedures,
		"total_cost":         t.TotalCost(),
		"insurance_estimate": t.InsuranceEstimate,
		"patient_estimate":   t.PatientEstimate(),
		"ai_summary":         t.AISummary,
	}
}
