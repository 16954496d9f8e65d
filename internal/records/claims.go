// ABOUTME: Billing claim records as tagged variants.
// ABOUTME: PaidClaim carries amounts that reconcile exactly; open and denied claims carry none.

package records

import (
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/internal/temporal"
)

// Claim statuses.
const (
	ClaimDraft     = "draft"
	ClaimPending   = "pending"
	ClaimSubmitted = "submitted"
	ClaimPaid      = "paid"
	ClaimDenied    = "denied"
	ClaimAppealed  = "appealed"
)

// Procedure is one billed procedure code.
type Procedure struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ClaimHeader holds the fields every claim variant shares.
type ClaimHeader struct {
	PatientID         string
	ClaimNumber       string
	InsuranceProvider string
	Procedures        []Procedure
	CreatedAt         time.Time
}

// Claim is implemented by every claim variant.
type Claim interface {
	Record
	Status() string
	Billed() Cents
}

func (h ClaimHeader) validate() error {
	if h.ClaimNumber == "" {
		return seederrors.Invalid("claim_number", "required")
	}
	return nil
}

func (h ClaimHeader) row(id, status string, billed Cents, agingDays int) store.Row {
	if agingDays < 0 {
		agingDays = 0
	}
	return store.Row{
		"id":                 id,
		"patient_id":         OptString(h.PatientID),
		"claim_number":       h.ClaimNumber,
		"insurance_provider": h.InsuranceProvider,
		"status":             status,
		"procedure_codes":    h.Procedures,
		"billed_amount":      billed.Dollars(),
		"aging_days":         agingDays,
		"created_at":         h.CreatedAt.UTC(),
	}
}

// PaidClaim is a settled claim. Its amounts always satisfy
// billed = insurance + patient + adjustment.
type PaidClaim struct {
	id         string
	header     ClaimHeader
	billed     Cents
	insurance  Cents
	patient    Cents
	adjustment Cents
	paidAt     time.Time
}

// NewPaidClaim computes the adjustment as the remainder of the billed amount.
// It fails if any amount is negative, if insurance and patient together exceed
// the billed amount, or if payment precedes creation.
func NewPaidClaim(h ClaimHeader, billed, insurance, patient Cents, paidAt time.Time) (PaidClaim, error) {
	if err := h.validate(); err != nil {
		return PaidClaim{}, err
	}
	if billed <= 0 || insurance < 0 || patient < 0 {
		return PaidClaim{}, seederrors.Invalid("amounts", "billed must be positive and payments non-negative")
	}
	if insurance+patient > billed {
		return PaidClaim{}, seederrors.Invalid("amounts", "insurance %d + patient %d exceeds billed %d cents", insurance, patient, billed)
	}
	if paidAt.Before(h.CreatedAt) {
		return PaidClaim{}, seederrors.Invalid("paid_at", "payment precedes claim creation")
	}
	return PaidClaim{
		id:         NewID(),
		header:     h,
		billed:     billed,
		insurance:  insurance,
		patient:    patient,
		adjustment: billed - insurance - patient,
		paidAt:     paidAt,
	}, nil
}

func (PaidClaim) Table() string       { return "billing_claims" }
func (PaidClaim) Status() string      { return ClaimPaid }
func (c PaidClaim) Billed() Cents     { return c.billed }
func (c PaidClaim) Insurance() Cents  { return c.insurance }
func (c PaidClaim) Patient() Cents    { return c.patient }
func (c PaidClaim) Adjustment() Cents { return c.adjustment }
func (c PaidClaim) PaidAt() time.Time { return c.paidAt }

// AgingDays is the number of days from creation to payment.
func (c PaidClaim) AgingDays() int {
	return temporal.DaysBetween(c.header.CreatedAt, c.paidAt)
}

func (c PaidClaim) Row() store.Row {
	r := c.header.row(c.id, ClaimPaid, c.billed, c.AgingDays())
	r["insurance_paid"] = c.insurance.Dollars()
	r["patient_responsibility"] = c.patient.Dollars()
	r["adjustment"] = c.adjustment.Dollars()
	r["submitted_at"] = c.header.CreatedAt.UTC()
	r["paid_at"] = c.paidAt.UTC()
	r["denial_reason"] = nil
	return r
}

// OpenClaim is a draft, pending, or submitted claim with no payment.
type OpenClaim struct {
	id     string
	header ClaimHeader
	status string
	billed Cents
	now    time.Time
}

// NewOpenClaim builds an unpaid, undenied claim. Aging runs from creation to now.
func NewOpenClaim(h ClaimHeader, status string, billed Cents, now time.Time) (OpenClaim, error) {
	if err := h.validate(); err != nil {
		return OpenClaim{}, err
	}
	switch status {
	case ClaimDraft, ClaimPending, ClaimSubmitted:
	default:
		return OpenClaim{}, seederrors.Invalid("status", "%q is not an open claim status", status)
	}
	if billed <= 0 {
		return OpenClaim{}, seederrors.Invalid("billed_amount", "must be positive")
	}
	return OpenClaim{id: NewID(), header: h, status: status, billed: billed, now: now}, nil
}

func (OpenClaim) Table() string    { return "billing_claims" }
func (c OpenClaim) Status() string { return c.status }
func (c OpenClaim) Billed() Cents  { return c.billed }

func (c OpenClaim) Row() store.Row {
	r := c.header.row(c.id, c.status, c.billed, temporal.DaysBetween(c.header.CreatedAt, c.now))
	r["insurance_paid"] = 0.0
	r["patient_responsibility"] = 0.0
	r["adjustment"] = 0.0
	r["paid_at"] = nil
	r["denial_reason"] = nil
	if c.status == ClaimDraft {
		r["submitted_at"] = nil
	} else {
		r["submitted_at"] = c.header.CreatedAt.UTC()
	}
	return r
}

// DeniedClaim is a denied or appealed claim; it always has a reason.
type DeniedClaim struct {
	id     string
	header ClaimHeader
	status string
	billed Cents
	reason string
	now    time.Time
}

// NewDeniedClaim builds a denied or appealed claim.
func NewDeniedClaim(h ClaimHeader, status string, billed Cents, reason string, now time.Time) (DeniedClaim, error) {
	if err := h.validate(); err != nil {
		return DeniedClaim{}, err
	}
	if status != ClaimDenied && status != ClaimAppealed {
		return DeniedClaim{}, seederrors.Invalid("status", "%q is not a denial status", status)
	}
	if reason == "" {
		return DeniedClaim{}, seederrors.Invalid("denial_reason", "required for %s claims", status)
	}
	if billed <= 0 {
		return DeniedClaim{}, seederrors.Invalid("billed_amount", "must be positive")
	}
	return DeniedClaim{id: NewID(), header: h, status: status, billed: billed, reason: reason, now: now}, nil
}

func (DeniedClaim) Table() string    { return "billing_claims" }
func (c DeniedClaim) Status() string { return c.status }
func (c DeniedClaim) Billed() Cents  { return c.billed }
func (c DeniedClaim) Reason() string { return c.reason }

func (c DeniedClaim) Row() store.Row {
	r := c.header.row(c.id, c.status, c.billed, temporal.DaysBetween(c.header.CreatedAt, c.now))
	r["insurance_paid"] = 0.0
	r["patient_responsibility"] = 0.0
	r["adjustment"] = 0.0
	r["submitted_at"] = c.header.CreatedAt.UTC()
	r["paid_at"] = nil
	r["denial_reason"] = c.reason
	return r
}
