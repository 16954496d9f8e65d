// ABOUTME: Provider, schedule, and referral records.
// ABOUTME: NewReferral derives sent and completed timestamps from the referral status.

package records

import (
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// Provider is a clinician or staff member who sees patients.
type Provider struct {
	ID                   string
	FirstName            string
	LastName             string
	Title                string
	Specialty            string
	NPINumber            string
	LicenseNumber        string
	LicenseState         string
	Email                string
	Phone                string
	Bio                  string
	AcceptingNewPatients bool
	Active               bool
	Color                string
}

// Name is "First Last".
func (p Provider) Name() string { return p.FirstName + " " + p.LastName }

func (Provider) Table() string { return "providers" }

func (p Provider) Row() store.Row {
	return store.Row{
		"id":                     p.ID,
		"first_name":             p.FirstName,
		"last_name":              p.LastName,
		"title":                  p.Title,
		"specialty":              p.Specialty,
		"npi_number":             OptString(p.NPINumber),
		"license_number":         p.LicenseNumber,
		"license_state":          p.LicenseState,
		"email":                  p.Email,
		"phone":                  p.Phone,
		"bio":                    p.Bio,
		"accepting_new_patients": p.AcceptingNewPatients,
		"is_active":              p.Active,
		"color":                  p.Color,
	}
}

// Availability is a weekly working window for a provider.
type Availability struct {
	ID         string
	ProviderID string
	Weekday    time.Weekday
	Start      string
	End        string
	Location   string
}

func (Availability) Table() string { return "provider_availability" }

func (a Availability) Row() store.Row {
	return store.Row{
		"id":           a.ID,
		"provider_id":  a.ProviderID,
		"day_of_week":  int(a.Weekday),
		"start_time":   a.Start,
		"end_time":     a.End,
		"is_available": true,
		"location":     a.Location,
	}
}

// ProviderBlock is time off or a meeting. Partial-day blocks carry times.
type ProviderBlock struct {
	ID         string
	ProviderID string
	BlockType  string
	Title      string
	StartDate  string
	EndDate    string
	StartTime  string
	EndTime    string
}

// AllDay reports whether the block spans whole days.
func (b ProviderBlock) AllDay() bool { return b.StartTime == "" && b.EndTime == "" }

func (ProviderBlock) Table() string { return "provider_blocks" }

func (b ProviderBlock) Row() store.Row {
	return store.Row{
		"id":          b.ID,
		"provider_id": b.ProviderID,
		"block_type":  b.BlockType,
		"title":       b.Title,
		"start_date":  b.StartDate,
		"end_date":    b.EndDate,
		"start_time":  OptString(b.StartTime),
		"end_time":    OptString(b.EndTime),
		"all_day":     b.AllDay(),
	}
}

// Referral statuses.
const (
	ReferralPending   = "pending"
	ReferralSent      = "sent"
	ReferralAccepted  = "accepted"
	ReferralCompleted = "completed"
	ReferralDeclined  = "declined"
	ReferralCancelled = "cancelled"
)

// Delays from referral creation.
const (
	ReferralSendDelay     = 24 * time.Hour
	ReferralCompleteDelay = 14 * 24 * time.Hour
)

// ReferralTarget is the outside specialist a patient is referred to.
type ReferralTarget struct {
	Name      string
	Specialty string
	Phone     string
	Fax       string
	Address   string
}

// ReferralInput is everything a generator decides about a referral.
type ReferralInput struct {
	PatientID           string
	ReferringProviderID string
	To                  ReferralTarget
	Reason              string
	Urgency             string
	Status              string
	Notes               string
	CreatedAt           time.Time
}

// Referral is a validated outbound referral.
type Referral struct {
	ID string
	ReferralInput
	SentAt      *time.Time
	CompletedAt *time.Time
}

// NewReferral sets sent_at one day after creation once the referral has left
// the practice, and completed_at fourteen days after creation when completed.
func NewReferral(in ReferralInput) (Referral, error) {
	r := Referral{ID: NewID(), ReferralInput: in}
	switch in.Status {
	case ReferralPending, ReferralCancelled:
	case ReferralSent, ReferralAccepted, ReferralDeclined, ReferralCompleted:
		sent := in.CreatedAt.Add(ReferralSendDelay)
		r.SentAt = &sent
		if in.Status == ReferralCompleted {
			done := in.CreatedAt.Add(ReferralCompleteDelay)
			r.CompletedAt = &done
		}
	default:
		return Referral{}, seederrors.Invalid("status", "unknown referral status %q", in.Status)
	}
	return r, nil
}

func (Referral) Table() string { return "referrals" }

func (r Referral) Row() store.Row {
	return store.Row{
		"id":                    r.ID,
		"patient_id":            OptString(r.PatientID),
		"referring_provider_id": OptString(r.ReferringProviderID),
		"referred_to_name":      r.To.Name,
		"referred_to_specialty": r.To.Specialty,
		"referred_to_phone":     r.To.Phone,
		"referred_to_fax":       r.To.Fax,
		"referred_to_address":   r.To.Address,
		"reason":                r.Reason,
		"urgency":               r.Urgency,
		"status":                r.Status,
		"notes":                 OptString(r.Notes),
		"sent_at":               OptTime(r.SentAt),
		"completed_at":          OptTime(r.CompletedAt),
		"created_at":            r.CreatedAt.UTC(),
	}
}
