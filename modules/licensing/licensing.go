// ABOUTME: Licensing module: provider, staff, team, and practice credentials.
// ABOUTME: Status and days until expiry are computed against the run clock on every seed.

package licensing

import (
	"context"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/modules/core"
	"github.com/2389/demoseed/modules/demo"
)

func init() {
	core.Register(&Module{})
}

const (
	dentalBoard = "Nevada State Board of Dental Examiners"
	practice    = "AK Ultimate Dental"
)

var credentials = []records.LicenseInput{
	{HolderType: "provider", HolderName: demo.Doctor, LicenseType: "DDS License", LicenseNumber: "DEN-12345-NV", IssuedBy: dentalBoard, IssueDate: "2021-06-15", ExpirationDate: "2027-06-15", Category: "state_license"},
	{HolderType: "provider", HolderName: demo.Doctor, LicenseType: "DEA Registration", LicenseNumber: "BK1234567", IssuedBy: "U.S. Drug Enforcement Administration", IssueDate: "2023-03-28", ExpirationDate: "2026-03-28", Category: "dea"},
	{HolderType: "provider", HolderName: demo.Doctor, LicenseType: "NPI Number", LicenseNumber: "1234567890", IssuedBy: "CMS / NPPES", IssueDate: "2018-01-01", Category: "npi"},
	{HolderType: "provider", HolderName: demo.Doctor, LicenseType: "Radiation Safety Certificate", LicenseNumber: "RAD-NV-5678", IssuedBy: "Nevada Radiation Control Program", IssueDate: "2022-02-10", ExpirationDate: "2026-02-10", Category: "certification"},
	{HolderType: "provider", HolderName: demo.Doctor, LicenseType: "Conscious Sedation Permit", LicenseNumber: "SED-NV-9012", IssuedBy: dentalBoard, IssueDate: "2024-08-01", ExpirationDate: "2027-08-01", Category: "permit"},
	{HolderType: "provider", HolderName: demo.Doctor, LicenseType: "Malpractice Insurance", LicenseNumber: "MP-NV-2024-001", IssuedBy: "TDIC / The Dentists Insurance Co", IssueDate: "2024-01-01", ExpirationDate: "2027-01-01", Category: "insurance"},
	{HolderType: "staff", HolderName: "Maria Santos", LicenseType: "RDH License", LicenseNumber: "HYG-54321-NV", IssuedBy: dentalBoard, IssueDate: "2022-12-01", ExpirationDate: "2026-12-01", Category: "state_license"},
	{HolderType: "staff", HolderName: "Maria Santos", LicenseType: "Local Anesthesia Permit", LicenseNumber: "LA-NV-6789", IssuedBy: dentalBoard, IssueDate: "2022-12-01", ExpirationDate: "2026-12-01", Category: "permit"},
	{HolderType: "staff", HolderName: "Jessica Chen", LicenseType: "DA Certification", LicenseNumber: "DA-98765-NV", IssuedBy: "DANB / Nevada Board", IssueDate: "2023-08-15", ExpirationDate: "2026-08-15", Category: "certification"},
	{HolderType: "staff", HolderName: "Jessica Chen", LicenseType: "Radiology Certificate", LicenseNumber: "XR-NV-3456", IssuedBy: "Nevada Board", IssueDate: "2023-08-15", ExpirationDate: "2026-08-15", Category: "certification"},
	{HolderType: "team", HolderName: "All Staff", LicenseType: "CPR/BLS Certification", LicenseNumber: "AHA-GRP-2024", IssuedBy: "American Heart Association", IssueDate: "2024-09-15", ExpirationDate: "2026-09-15", Category: "certification"},
	{HolderType: "team", HolderName: "All Staff", LicenseType: "OSHA Training", LicenseNumber: "OSHA-2025", IssuedBy: "OSHA / Compliance Provider", IssueDate: "2025-01-10", ExpirationDate: "2027-01-10", Category: "training"},
	{HolderType: "team", HolderName: "All Staff", LicenseType: "HIPAA Training", LicenseNumber: "HIPAA-2025", IssuedBy: "Compliance Provider", IssueDate: "2025-01-10", ExpirationDate: "2026-01-10", Category: "training"},
	{HolderType: "practice", HolderName: practice, LicenseType: "Business License", LicenseNumber: "BL-LV-2024-8901", IssuedBy: "City of Las Vegas", IssueDate: "2024-07-01", ExpirationDate: "2026-06-30", Category: "business"},
	{HolderType: "practice", HolderName: practice, LicenseType: "DEA Registration (Practice)", LicenseNumber: "AP1234567", IssuedBy: "U.S. DEA", IssueDate: "2023-05-01", ExpirationDate: "2026-05-01", Category: "dea"},
	{HolderType: "practice", HolderName: practice, LicenseType: "Facility Permit", LicenseNumber: "FP-NV-2024-001", IssuedBy: dentalBoard, IssueDate: "2024-01-15", ExpirationDate: "2027-01-15", Category: "permit"},
}

// Module seeds the credential tracker.
type Module struct{}

func (m *Module) Name() string        { return "licensing" }
func (m *Module) Description() string { return "Licenses, permits, and certifications with expiry status" }
func (m *Module) Produces() []string  { return []string{"licenses"} }
func (m *Module) Consumes() []string  { return nil }
func (m *Module) Clears() []string    { return []string{"licenses"} }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	licenses := make([]records.License, 0, len(credentials))
	for _, in := range credentials {
		l, err := records.NewLicense(in, env.Now)
		if err != nil {
			return res, err
		}
		licenses = append(licenses, l)
	}
	env.Clear(ctx, &res, "licenses")
	if err := env.Write(ctx, &res, "licenses", records.Rows(licenses), ""); err != nil {
		return res, err
	}
	return res, nil
}
