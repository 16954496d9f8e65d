// ABOUTME: Employee benefit enrollments, business insurance policies, and corporate filings.
// ABOUTME: These are keyed by natural keys so reseeding updates rows in place.

package records

import (
	"github.com/2389/demoseed/internal/store"
)

// Enrollment is one employee's election for one benefit type.
// Its id is derived from (employee, benefit type).
type Enrollment struct {
	EmployeeID            string
	BenefitType           string
	PlanName              string
	CarrierName           string
	PolicyNumber          string
	MonthlyPremium        Cents
	EmployerContribution  Cents
	EmployeeContribution  Cents
	CoverageTier          string
	Status                string
	EffectiveDate         string
	ICHRAAllowanceMonthly *Cents
}

// ID is stable across reseeds.
func (e Enrollment) ID() string { return StableID("enrollment", e.EmployeeID, e.BenefitType) }

func (Enrollment) Table() string { return "benefit_enrollments" }

func (e Enrollment) Row() store.Row {
	var allowance any
	if e.ICHRAAllowanceMonthly != nil {
		allowance = e.ICHRAAllowanceMonthly.Dollars()
	}
	return store.Row{
		"id":                      e.ID(),
		"employee_id":             e.EmployeeID,
		"benefit_type":            e.BenefitType,
		"plan_name":               e.PlanName,
		"carrier_name":            e.CarrierName,
		"policy_number":           OptString(e.PolicyNumber),
		"monthly_premium":         e.MonthlyPremium.Dollars(),
		"employer_contribution":   e.EmployerContribution.Dollars(),
		"employee_contribution":   e.EmployeeContribution.Dollars(),
		"coverage_tier":           e.CoverageTier,
		"enrollment_status":       e.Status,
		"effective_date":          e.EffectiveDate,
		"ichra_allowance_monthly": allowance,
	}
}

// Agent is the broker contact on a policy.
type Agent struct {
	Name    string
	Phone   string
	Email   string
	Company string
}

// Policy is a business insurance policy, unique by policy number.
type Policy struct {
	PolicyType     string
	CarrierName    string
	PolicyNumber   string
	CoverageAmount Cents
	Deductible     Cents
	AnnualPremium  Cents
	MonthlyPremium Cents
	EffectiveDate  string
	ExpirationDate string
	RenewalDate    string
	Status         string
	Agent          Agent
	AutoRenew      bool
	Notes          string
}

// ID is stable across reseeds.
func (p Policy) ID() string { return StableID("policy", p.PolicyNumber) }

func (Policy) Table() string { return "insurance_policies" }

func (p Policy) Row() store.Row {
	return store.Row{
		"id":              p.ID(),
		"policy_type":     p.PolicyType,
		"carrier_name":    p.CarrierName,
		"policy_number":   p.PolicyNumber,
		"coverage_amount": p.CoverageAmount.Dollars(),
		"deductible":      p.Deductible.Dollars(),
		"annual_premium":  p.AnnualPremium.Dollars(),
		"monthly_premium": p.MonthlyPremium.Dollars(),
		"effective_date":  OptString(p.EffectiveDate),
		"expiration_date": OptString(p.ExpirationDate),
		"renewal_date":    OptString(p.RenewalDate),
		"status":          p.Status,
		"agent_name":      p.Agent.Name,
		"agent_phone":     p.Agent.Phone,
		"agent_email":     p.Agent.Email,
		"broker_company":  p.Agent.Company,
		"auto_renew":      p.AutoRenew,
		"notes":           OptString(p.Notes),
	}
}

// Filing is a corporate registration or report. Its id is derived from the title.
type Filing struct {
	FilingType       string
	Title            string
	Entity           string
	Jurisdiction     string
	FilingNumber     string
	Status           string
	EffectiveDate    string
	ExpirationDate   string
	RenewalFrequency string
	Cost             Cents
	ResponsibleParty string
	Notes            string
}

// ID is stable across reseeds.
func (f Filing) ID() string { return StableID("filing", f.Title) }

func (Filing) Table() string { return "corporate_filings" }

func (f Filing) Row() store.Row {
	return store.Row{
		"id":                f.ID(),
		"filing_type":       f.FilingType,
		"title":             f.Title,
		"filing_entity":     f.Entity,
		"jurisdiction":      f.Jurisdiction,
		"filing_number":     OptString(f.FilingNumber),
		"status":            f.Status,
		"effective_date":    OptString(f.EffectiveDate),
		"expiration_date":   OptString(f.ExpirationDate),
		"renewal_frequency": f.RenewalFrequency,
		"cost":              f.Cost.Dollars(),
		"responsible_party": f.ResponsibleParty,
		"notes":             OptString(f.Notes),
	}
}
