// ABOUTME: Benefits module: employee enrollments, business insurance, and corporate filings.
// ABOUTME: Every row upserts on a natural key so the module can be rerun safely.

package benefits

import (
	"context"
	"fmt"
	"strings"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/core"
	"github.com/2389/demoseed/modules/demo"
)

func init() {
	core.Register(&Module{})
}

// MaxEmployees caps how many active employees get enrollments.
const MaxEmployees = 10

// Module seeds benefits and corporate compliance records.
type Module struct{}

func (m *Module) Name() string        { return "benefits" }
func (m *Module) Description() string { return "ICHRA, dental, and vision enrollments plus business policies and filings" }

func (m *Module) Produces() []string {
	return []string{"benefit_enrollments", "insurance_policies", "corporate_filings"}
}

func (m *Module) Consumes() []string { return []string{"employees"} }
func (m *Module) Clears() []string   { return nil }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	staff, err := env.Store.Select(ctx, "employees", []string{"id", "first_name", "last_name"},
		store.Filter{store.Eq("status", "active")}, MaxEmployees)
	if err != nil {
		res.Errorf("Employees: %v", err)
		return res, nil
	}
	if len(staff) == 0 {
		res.Errorf("No employees found, run hr seed first")
		return res, nil
	}

	var enrollments []records.Enrollment
	for i, e := range staff {
		id, _ := e["id"].(string)
		first, _ := e["first_name"].(string)
		enrollments = append(enrollments, enroll(id, first, i < 3)...)
	}
	if err := env.Write(ctx, &res, "benefit_enrollments", records.Rows(enrollments), "id"); err != nil {
		return res, err
	}
	if err := env.Write(ctx, &res, "insurance_policies", records.Rows(policies()), "policy_number"); err != nil {
		return res, err
	}
	if err := env.Write(ctx, &res, "corporate_filings", records.Rows(filings()), "id"); err != nil {
		return res, err
	}
	return res, nil
}

// enroll returns an employee's health, dental, and vision elections. Vision
// is waived unless takesVision.
func enroll(employeeID, firstName string, takesVision bool) []records.Enrollment {
	allowance := records.ToCents(400)
	prefix := strings.ToUpper(firstName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	vision := "waived"
	if takesVision {
		vision = "enrolled"
	}
	return []records.Enrollment{
		{
			EmployeeID: employeeID, BenefitType: "ichra_health",
			PlanName: "Silver HMO 3000", CarrierName: "Health Plan of Nevada",
			PolicyNumber:   fmt.Sprintf("HPN-%s-2026", prefix),
			MonthlyPremium: records.ToCents(485), EmployerContribution: records.ToCents(400), EmployeeContribution: records.ToCents(85),
			CoverageTier: "employee", Status: "enrolled", EffectiveDate: "2026-01-01",
			ICHRAAllowanceMonthly: &allowance,
		},
		{
			EmployeeID: employeeID, BenefitType: "dental",
			PlanName: "Delta Dental PPO", CarrierName: "Delta Dental", PolicyNumber: "DD-AK-2026-GRP",
			MonthlyPremium: records.ToCents(45), EmployerContribution: records.ToCents(45),
			CoverageTier: "employee", Status: "enrolled", EffectiveDate: "2026-01-01",
		},
		{
			EmployeeID: employeeID, BenefitType: "vision",
			PlanName: "VSP Choice", CarrierName: "VSP Vision Care",
			MonthlyPremium: records.ToCents(18), EmployerContribution: records.ToCents(18),
			CoverageTier: "employee", Status: vision, EffectiveDate: "2026-01-01",
		},
	}
}

func policies() []records.Policy {
	broker := records.Agent{Name: "Mark Stevens", Phone: "(702) 555-0180", Email: "mstevens@hartfordagent.com", Company: "Nevada Business Insurance Group"}
	return []records.Policy{
		{PolicyType: "general_liability", CarrierName: "The Hartford", PolicyNumber: "GL-NV-2025-4521",
			CoverageAmount: records.ToCents(2000000), Deductible: records.ToCents(1000), AnnualPremium: records.ToCents(3200), MonthlyPremium: records.ToCents(266.67),
			EffectiveDate: "2025-06-01", ExpirationDate: "2026-06-01", Status: "active", Agent: broker, AutoRenew: true},
		{PolicyType: "professional_liability", CarrierName: "TDIC - The Dentists Insurance Company", PolicyNumber: "PL-TDIC-2025-8892",
			CoverageAmount: records.ToCents(1000000), Deductible: records.ToCents(5000), AnnualPremium: records.ToCents(4800), MonthlyPremium: records.ToCents(400),
			EffectiveDate: "2025-03-15", ExpirationDate: "2026-03-15", Status: "active", Agent: broker, AutoRenew: true},
		{PolicyType: "workers_comp", CarrierName: "Employers Holdings Inc", PolicyNumber: "WC-NV-2025-3301",
			CoverageAmount: records.ToCents(500000), AnnualPremium: records.ToCents(5200), MonthlyPremium: records.ToCents(433.33),
			EffectiveDate: "2025-01-01", ExpirationDate: "2026-01-01", RenewalDate: "2026-01-01", Status: "expired", Agent: broker,
			Notes: "Renewal quote requested, awaiting updated payroll data from ADP."},
		{PolicyType: "cyber_liability", CarrierName: "Coalition Inc", PolicyNumber: "CY-COA-2025-1147",
			CoverageAmount: records.ToCents(1000000), Deductible: records.ToCents(2500), AnnualPremium: records.ToCents(1800), MonthlyPremium: records.ToCents(150),
			EffectiveDate: "2025-09-01", ExpirationDate: "2026-09-01", Status: "active", AutoRenew: true,
			Agent: records.Agent{Name: "Sarah Lin", Phone: "(415) 555-0220", Email: "slin@coalition.com", Company: "Coalition Inc"}},
		{PolicyType: "property", CarrierName: "State Farm", PolicyNumber: "PR-SF-2025-7789",
			CoverageAmount: records.ToCents(750000), Deductible: records.ToCents(2500), AnnualPremium: records.ToCents(2400), MonthlyPremium: records.ToCents(200),
			EffectiveDate: "2025-04-01", ExpirationDate: "2026-04-01", Status: "active", AutoRenew: true,
			Agent: records.Agent{Name: "David Chen", Phone: "(702) 555-0199", Email: "dchen@statefarm.com", Company: "State Farm"}},
	}
}

func filings() []records.Filing {
	const entity = "AK Ultimate Dental LLC"
	const sos = "Nevada Secretary of State"
	fs := []records.Filing{
		{FilingType: "state_business_registration", Title: "Nevada LLC Annual List", Jurisdiction: sos, FilingNumber: "NV20231234567",
			Status: "current", EffectiveDate: "2023-05-15", ExpirationDate: "2026-05-15", RenewalFrequency: "Annual", Cost: records.ToCents(150)},
		{FilingType: "business_license", Title: "City of Las Vegas Business License", Jurisdiction: "City of Las Vegas", FilingNumber: "BL-LV-2025-08821",
			Status: "current", EffectiveDate: "2025-07-01", ExpirationDate: "2026-06-30", RenewalFrequency: "Annual", Cost: records.ToCents(200)},
		{FilingType: "tax_registration", Title: "Nevada State Business License", Jurisdiction: "Nevada Department of Taxation", FilingNumber: "NV-TAX-2023-88901",
			Status: "current", EffectiveDate: "2023-05-15", RenewalFrequency: "Annual renewal", Cost: records.ToCents(200)},
		{FilingType: "annual_report", Title: "Nevada Annual Report 2026", Jurisdiction: sos,
			Status: "pending", ExpirationDate: "2026-05-15", RenewalFrequency: "Annual", Cost: records.ToCents(150),
			Notes: "Due May 15, file online via SilverFlume."},
	}
	for i := range fs {
		fs[i].Entity = entity
		fs[i].ResponsibleParty = demo.Doctor
	}
	return fs
}
