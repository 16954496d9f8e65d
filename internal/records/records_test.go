// ABOUTME: Tests for record constructors and row rendering.
// ABOUTME: Covers claim amount identity, call consistency, license status, and engagement rules.

package records

import (
	"testing"
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
)

func header(created time.Time) ClaimHeader {
	return ClaimHeader{
		PatientID:         "p1",
		ClaimNumber:       "CLM-100001",
		InsuranceProvider: "Delta Dental",
		Procedures:        []Procedure{{Code: "D1110", Description: "Prophylaxis - Adult"}},
		CreatedAt:         created,
	}
}

func TestNewPaidClaim_AmountsReconcile(t *testing.T) {
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	paid := created.AddDate(0, 0, 30)

	c, err := NewPaidClaim(header(created), ToCents(1234.56), ToCents(987.65), ToCents(123.45), paid)
	if err != nil {
		t.Fatalf("NewPaidClaim() error = %v", err)
	}
	if got := c.Insurance() + c.Patient() + c.Adjustment(); got != c.Billed() {
		t.Errorf("insurance + patient + adjustment = %d, want %d", got, c.Billed())
	}
	if c.Adjustment() != ToCents(123.46) {
		t.Errorf("Adjustment() = %d, want %d", c.Adjustment(), ToCents(123.46))
	}
	if c.AgingDays() != 30 {
		t.Errorf("AgingDays() = %d, want 30", c.AgingDays())
	}

	row := c.Row()
	if row["status"] != ClaimPaid {
		t.Errorf("status = %v, want paid", row["status"])
	}
	if row["denial_reason"] != nil {
		t.Errorf("denial_reason = %v, want nil", row["denial_reason"])
	}
	if row["paid_at"] == nil || row["submitted_at"] == nil {
		t.Error("paid claim should carry submitted_at and paid_at")
	}
}

func TestNewPaidClaim_Rejects(t *testing.T) {
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		billed    Cents
		insurance Cents
		patient   Cents
		paidAt    time.Time
	}{
		{"payments exceed billed", 10000, 8000, 2001, created},
		{"negative patient", 10000, 8000, -1, created},
		{"zero billed", 0, 0, 0, created},
		{"paid before created", 10000, 8000, 1000, created.Add(-time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPaidClaim(header(created), tt.billed, tt.insurance, tt.patient, tt.paidAt)
			if !seederrors.IsValidation(err) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestOpenAndDeniedClaims(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -10)

	draft, err := NewOpenClaim(header(created), ClaimDraft, 5000, now)
	if err != nil {
		t.Fatalf("NewOpenClaim(draft) error = %v", err)
	}
	if draft.Row()["submitted_at"] != nil {
		t.Error("draft claim should not be submitted")
	}
	if draft.Row()["aging_days"] != 10 {
		t.Errorf("aging_days = %v, want 10", draft.Row()["aging_days"])
	}

	pending, err := NewOpenClaim(header(created), ClaimPending, 5000, now)
	if err != nil {
		t.Fatalf("NewOpenClaim(pending) error = %v", err)
	}
	if pending.Row()["submitted_at"] == nil {
		t.Error("pending claim should carry submitted_at")
	}

	if _, err := NewOpenClaim(header(created), ClaimPaid, 5000, now); !seederrors.IsValidation(err) {
		t.Errorf("NewOpenClaim(paid) error = %v, want ValidationError", err)
	}
	if _, err := NewDeniedClaim(header(created), ClaimDenied, 5000, "", now); !seederrors.IsValidation(err) {
		t.Errorf("NewDeniedClaim without reason error = %v, want ValidationError", err)
	}

	denied, err := NewDeniedClaim(header(created), ClaimAppealed, 5000, "Missing X-ray documentation", now)
	if err != nil {
		t.Fatalf("NewDeniedClaim() error = %v", err)
	}
	if denied.Row()["denial_reason"] != "Missing X-ray documentation" {
		t.Errorf("denial_reason = %v", denied.Row()["denial_reason"])
	}
}

func TestNewCall_AfterHoursBoundaries(t *testing.T) {
	dur := 120
	tests := []struct {
		hour, minute int
		want         bool
	}{
		{7, 59, true},
		{8, 0, false},
		{16, 59, false},
		{17, 0, true},
		{19, 30, true},
	}
	for _, tt := range tests {
		at := time.Date(2026, 2, 3, tt.hour, tt.minute, 0, 0, time.UTC)
		c, err := NewCall(CallInput{At: at, Status: CallAnswered, DurationSeconds: &dur, Direction: "inbound"})
		if err != nil {
			t.Fatalf("NewCall() error = %v", err)
		}
		if c.AfterHours != tt.want {
			t.Errorf("%02d:%02d after_hours = %v, want %v", tt.hour, tt.minute, c.AfterHours, tt.want)
		}
	}
}

func TestNewCall_RejectsInconsistentOutcomes(t *testing.T) {
	dur := 60
	zero := 0
	at := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   CallInput
	}{
		{"missed with duration", CallInput{At: at, Status: CallMissed, DurationSeconds: &dur}},
		{"answered without duration", CallInput{At: at, Status: CallAnswered}},
		{"voicemail zero duration", CallInput{At: at, Status: CallVoicemail, DurationSeconds: &zero}},
		{"ai handled voicemail", CallInput{At: at, Status: CallVoicemail, DurationSeconds: &dur, AIHandled: true}},
		{"action on abandoned", CallInput{At: at, Status: CallAbandoned, ActionTaken: "Scheduled appointment"}},
		{"summary without ai", CallInput{At: at, Status: CallAnswered, DurationSeconds: &dur, AISummary: "x"}},
		{"unknown status", CallInput{At: at, Status: "busy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCall(tt.in); !seederrors.IsValidation(err) {
				t.Errorf("NewCall() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestNewCall_RowShape(t *testing.T) {
	dur := 95
	c, err := NewCall(CallInput{
		At:              time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
		Status:          CallAnswered,
		DurationSeconds: &dur,
		AIHandled:       true,
		AISummary:       "Patient booked a cleaning.",
	})
	if err != nil {
		t.Fatalf("NewCall() error = %v", err)
	}
	row := c.Row()
	if row["call_type"] != "ai" {
		t.Errorf("call_type = %v, want ai", row["call_type"])
	}
	if row["duration_seconds"] != 95 {
		t.Errorf("duration_seconds = %v, want 95", row["duration_seconds"])
	}
	if row["action_taken"] != nil {
		t.Errorf("action_taken = %v, want nil", row["action_taken"])
	}
}

func TestNewLicense_Status(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		expires  string
		status   string
		wantDays int
	}{
		{"2026-10-14", LicenseExpired, -1},
		{"2026-10-15", LicenseExpiringSoon, 0},
		{"2027-01-13", LicenseExpiringSoon, 90},
		{"2027-01-14", LicenseCurrent, 91},
	}
	for _, tt := range tests {
		t.Run(tt.expires, func(t *testing.T) {
			l, err := NewLicense(LicenseInput{LicenseType: "DDS License", ExpirationDate: tt.expires}, now)
			if err != nil {
				t.Fatalf("NewLicense() error = %v", err)
			}
			if l.Status != tt.status {
				t.Errorf("Status = %q, want %q", l.Status, tt.status)
			}
			if l.DaysUntilExpiry == nil || *l.DaysUntilExpiry != tt.wantDays {
				t.Errorf("DaysUntilExpiry = %v, want %d", l.DaysUntilExpiry, tt.wantDays)
			}
		})
	}

	l, err := NewLicense(LicenseInput{LicenseType: "NPI Number"}, now)
	if err != nil {
		t.Fatalf("NewLicense() error = %v", err)
	}
	if l.Status != LicenseNotApplicable || l.DaysUntilExpiry != nil {
		t.Errorf("no expiry: status %q days %v, want not_applicable and nil", l.Status, l.DaysUntilExpiry)
	}
	if l.Row()["days_until_expiry"] != nil {
		t.Errorf("row days_until_expiry = %v, want nil", l.Row()["days_until_expiry"])
	}

	if _, err := NewLicense(LicenseInput{ExpirationDate: "06/15/2027"}, now); !seederrors.IsValidation(err) {
		t.Errorf("bad date error = %v, want ValidationError", err)
	}
}

func TestNewCampaignMessage_Engagement(t *testing.T) {
	sent := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	opened := sent.Add(time.Hour)

	tests := []struct {
		name    string
		in      CampaignInput
		wantErr bool
	}{
		{"delivered and opened", CampaignInput{Channel: ChannelEmail, Status: MessageDelivered, Subject: "Hi", Engagement: Engagement{Opened: true, OpenedAt: &opened}, SentAt: sent}, false},
		{"bounced and opened", CampaignInput{Channel: ChannelEmail, Status: MessageBounced, Engagement: Engagement{Opened: true, OpenedAt: &opened}, SentAt: sent}, true},
		{"failed and unsubscribed", CampaignInput{Channel: ChannelSMS, Status: MessageFailed, Unsubscribed: true, SentAt: sent}, true},
		{"opened without time", CampaignInput{Channel: ChannelEmail, Status: MessageDelivered, Engagement: Engagement{Opened: true}, SentAt: sent}, true},
		{"clicked without open", CampaignInput{Channel: ChannelEmail, Status: MessageDelivered, Engagement: Engagement{Clicked: true, ClickedAt: &opened}, SentAt: sent}, true},
		{"phone with subject", CampaignInput{Channel: ChannelPhone, Status: MessageDelivered, Subject: "Hi", SentAt: sent}, true},
		{"ai without automation", CampaignInput{Channel: ChannelSMS, Status: MessageDelivered, AIGenerated: true, SentAt: sent}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCampaignMessage(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCampaignMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDailyMetric_DependentCounts(t *testing.T) {
	if _, err := NewDailyMetric(DailyMetric{ClaimsSubmitted: 2, ClaimsPaid: 3}); !seederrors.IsValidation(err) {
		t.Errorf("claims_paid > claims_submitted error = %v, want ValidationError", err)
	}
	if _, err := NewDailyMetric(DailyMetric{AppointmentsScheduled: 4, AppointmentsCompleted: 5}); !seederrors.IsValidation(err) {
		t.Errorf("completed > scheduled error = %v, want ValidationError", err)
	}
	m, err := NewDailyMetric(DailyMetric{NewLeads: 3, LeadsConverted: 3, AIActionsTaken: 6, AIActionsApproved: 3})
	if err != nil {
		t.Fatalf("NewDailyMetric() error = %v", err)
	}
	if m.ID == "" {
		t.Error("NewDailyMetric() should assign an id")
	}
}

func TestNewReferral_DerivedTimestamps(t *testing.T) {
	created := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	done, err := NewReferral(ReferralInput{Status: ReferralCompleted, Urgency: "routine", CreatedAt: created})
	if err != nil {
		t.Fatalf("NewReferral() error = %v", err)
	}
	if done.SentAt == nil || !done.SentAt.Equal(created.Add(24*time.Hour)) {
		t.Errorf("SentAt = %v, want one day after creation", done.SentAt)
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(created.AddDate(0, 0, 14)) {
		t.Errorf("CompletedAt = %v, want fourteen days after creation", done.CompletedAt)
	}

	pending, err := NewReferral(ReferralInput{Status: ReferralPending, CreatedAt: created})
	if err != nil {
		t.Fatalf("NewReferral() error = %v", err)
	}
	if pending.SentAt != nil || pending.CompletedAt != nil {
		t.Error("pending referral should have no timestamps")
	}

	declined, _ := NewReferral(ReferralInput{Status: ReferralDeclined, CreatedAt: created})
	if declined.SentAt == nil || declined.CompletedAt != nil {
		t.Error("declined referral should be sent but not completed")
	}

	if _, err := NewReferral(ReferralInput{Status: "lost"}); !seederrors.IsValidation(err) {
		t.Errorf("unknown status error = %v, want ValidationError", err)
	}
}

func TestStableID(t *testing.T) {
	a := StableID("enrollment", "e1", "dental")
	if a != StableID("enrollment", "e1", "dental") {
		t.Error("StableID should be deterministic")
	}
	if a == StableID("enrollment", "e1", "vision") {
		t.Error("StableID should differ for different keys")
	}
	if StableID("ab", "c") == StableID("a", "bc") {
		t.Error("StableID should not collide across part boundaries")
	}
}

func TestTreatmentPlan_Totals(t *testing.T) {
	p := TreatmentPlan{
		Procedures: []PlannedProcedure{
			{Code: "D2740", Cost: 1200},
			{Code: "D2950", Cost: 350},
			{Code: "D9210", Cost: 0},
		},
		InsuranceEstimate: 775,
	}
	if p.TotalCost() != 1550 {
		t.Errorf("TotalCost() = %d, want 1550", p.TotalCost())
	}
	if p.PatientEstimate() != 775 {
		t.Errorf("PatientEstimate() = %d, want 775", p.PatientEstimate())
	}
}
