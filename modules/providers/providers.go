// ABOUTME: Provider roster module: clinicians, weekly availability, time off, and referrals.
// ABOUTME: Clears the provider tables children first and rebuilds them with referrals to outside specialists.

package providers

import (
	"context"
	"time"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/sampler"
	"github.com/2389/demoseed/modules/core"
)

func init() {
	core.Register(&Module{})
}

// ReferralCount is the number of referrals generated per run.
const ReferralCount = 14

// ReferralWindowDays bounds how far back a referral can be created.
const ReferralWindowDays = 90

const informedNote = "Patient has been informed about the referral."

var (
	referralStatuses = sampler.Weighted(
		[]string{records.ReferralPending, records.ReferralSent, records.ReferralAccepted, records.ReferralCompleted, records.ReferralDeclined, records.ReferralCancelled},
		[]float64{25, 20, 20, 20, 10, 5},
	)
	referralUrgencies = sampler.Weighted(
		[]string{"routine", "urgent", "emergency"},
		[]float64{70, 25, 5},
	)
)

// clearOrder deletes referrals and schedules before the providers they reference.
var clearOrder = []string{"referrals", "provider_blocks", "provider_availability", "providers"}

// Module seeds providers and referrals.
type Module struct{}

func (m *Module) Name() string        { return "providers" }
func (m *Module) Description() string { return "Providers, weekly schedules, time off, and specialist referrals" }
func (m *Module) Produces() []string  { return clearOrder }
func (m *Module) Consumes() []string  { return []string{"patients"} }
func (m *Module) Clears() []string    { return clearOrder }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	roster := staff()
	ids := make(map[string]string, len(roster))
	providerIDs := make([]string, len(roster))
	for i := range roster {
		roster[i].ID = records.NewID()
		ids[roster[i].Name()] = roster[i].ID
		providerIDs[i] = roster[i].ID
	}

	var slots []records.Availability
	for _, p := range roster {
		for _, w := range weeklySchedule[p.Name()] {
			slots = append(slots, records.Availability{
				ID:         records.NewID(),
				ProviderID: p.ID,
				Weekday:    w.day,
				Start:      w.start,
				End:        w.end,
				Location:   "Main Office",
			})
		}
	}

	var blocks []records.ProviderBlock
	for _, nb := range timeOff() {
		b := nb.block
		b.ID = records.NewID()
		b.ProviderID = ids[nb.provider]
		blocks = append(blocks, b)
	}

	patientIDs := env.PatientIDs(ctx, &res, 50)
	referrals := make([]records.Referral, 0, ReferralCount)
	for i := 0; i < ReferralCount; i++ {
		r, err := newReferral(env.Rand, env.Now, patientIDs, providerIDs)
		if err != nil {
			return res, err
		}
		referrals = append(referrals, r)
	}

	for _, table := range clearOrder {
		env.Clear(ctx, &res, table)
	}
	if err := env.Write(ctx, &res, "providers", records.Rows(roster), ""); err != nil {
		return res, err
	}
	if res.Inserted["providers"] != len(roster) {
		res.Errorf("Providers: roster not written, skipping schedules and referrals")
		return res, nil
	}
	if err := env.Write(ctx, &res, "provider_availability", records.Rows(slots), ""); err != nil {
		return res, err
	}
	if err := env.Write(ctx, &res, "provider_blocks", records.Rows(blocks), ""); err != nil {
		return res, err
	}
	if err := env.Write(ctx, &res, "referrals", records.Rows(referrals), ""); err != nil {
		return res, err
	}
	return res, nil
}

func newReferral(src rng.Source, now time.Time, patientIDs, providerIDs []string) (records.Referral, error) {
	in := records.ReferralInput{
		CreatedAt: now.AddDate(0, 0, -rng.Intn(src, ReferralWindowDays)),
		To:        rng.Choice(src, specialists),
		Status:    sampler.MustSample(src, referralStatuses),
		Urgency:   sampler.MustSample(src, referralUrgencies),
	}
	if len(patientIDs) > 0 {
		in.PatientID = rng.Choice(src, patientIDs)
	}
	in.ReferringProviderID = rng.Choice(src, providerIDs)
	in.Reason = rng.Choice(src, referralReasons)
	if rng.Chance(src, 0.3) {
		in.Notes = informedNote
	}
	return records.NewReferral(in)
}
