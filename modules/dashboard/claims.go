// ABOUTME: Billing claim generation for the dashboard module.
// ABOUTME: Draws a status per claim and builds the matching paid, open, or denied variant.

package dashboard

import (
	"fmt"
	"time"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/sampler"
)

// ClaimCount is the number of claims generated per run.
const ClaimCount = 35

var carriers = []string{"Delta Dental", "Cigna Dental", "MetLife Dental", "Aetna Dental", "Guardian Dental", "United Healthcare"}

var denialReasons = []string{
	"Missing information", "Pre-authorization required", "Exceeds frequency limitation",
	"Not a covered benefit", "Patient not eligible",
}

var procedures = []records.Procedure{
	{Code: "D0150", Description: "Comprehensive oral evaluation"},
	{Code: "D0120", Description: "Periodic oral evaluation"},
	{Code: "D1110", Description: "Prophylaxis - adult"},
	{Code: "D2740", Description: "Crown - porcelain/ceramic"},
	{Code: "D6010", Description: "Surgical placement - endosteal implant"},
	{Code: "D4341", Description: "Periodontal scaling and root planing"},
	{Code: "D0274", Description: "Bitewings - four radiographic images"},
	{Code: "D7210", Description: "Extraction - surgical"},
}

var claimStatuses = sampler.Weighted(
	[]string{records.ClaimPaid, records.ClaimPending, records.ClaimSubmitted, records.ClaimDenied, records.ClaimAppealed, records.ClaimDraft},
	[]float64{4, 1, 1, 1, 1, 1},
)

// newClaims builds n claims created within the last HistoryDays days. Patients
// are drawn from patientIDs; an empty list leaves claims unassigned.
func newClaims(src rng.Source, now time.Time, patientIDs []string, n int) ([]records.Claim, error) {
	out := make([]records.Claim, 0, n)
	for i := 0; i < n; i++ {
		daysBack := rng.Between(src, 0, HistoryDays)
		h := records.ClaimHeader{
			ClaimNumber:       fmt.Sprintf("CLM-%07d", 2026000+i),
			InsuranceProvider: rng.Choice(src, carriers),
			Procedures:        []records.Procedure{rng.Choice(src, procedures)},
			CreatedAt:         now.Add(-time.Duration(daysBack) * 24 * time.Hour),
		}
		if len(patientIDs) > 0 {
			h.PatientID = rng.Choice(src, patientIDs)
		}
		status := sampler.MustSample(src, claimStatuses)
		billed := records.ToCents(rng.Float(src, 120, 3500))

		var (
			c   records.Claim
			err error
		)
		switch status {
		case records.ClaimPaid:
			c, err = paidClaim(src, now, h, billed, daysBack)
		case records.ClaimDenied, records.ClaimAppealed:
			c, err = records.NewDeniedClaim(h, status, billed, rng.Choice(src, denialReasons), now)
		default:
			c, err = records.NewOpenClaim(h, status, billed, now)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// paidClaim splits billed into an insurance share of 60-95%, a patient share
// of the remainder, and an adjustment for whatever is left. Payment lands
// between creation and now.
func paidClaim(src rng.Source, now time.Time, h records.ClaimHeader, billed records.Cents, daysBack int) (records.PaidClaim, error) {
	b := billed.Dollars()
	insurance := records.ToCents(rng.Float(src, b*0.6, b*0.95))
	patient := records.ToCents(rng.Float(src, 0, (billed - insurance).Dollars()))
	paidAt := now.Add(-time.Duration(rng.Between(src, 0, daysBack)) * 24 * time.Hour)
	return records.NewPaidClaim(h, billed, insurance, patient, paidAt)
}
