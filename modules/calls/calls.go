// ABOUTME: Phone call history module.
// ABOUTME: Replaces the calls table with six months of weekday-shaped inbound and outbound calls.

package calls

import (
	"context"
	"fmt"
	"time"

	"github.com/2389/demoseed/internal/narrative"
	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/sampler"
	"github.com/2389/demoseed/internal/temporal"
	"github.com/2389/demoseed/modules/core"
)

func init() {
	core.Register(&Module{})
}

// HistoryDays is how many days back the call log reaches; today is included.
const HistoryDays = 180

var (
	weekdayCalls  = temporal.Range{Min: 20, Max: 34}
	saturdayCalls = temporal.Range{Min: 8, Max: 17}
)

var callerNames = []string{
	"Maria Garcia", "John Smith", "David Lee", "Sarah Johnson", "Robert Chen",
	"Lisa Patel", "Michael Brown", "Jennifer Kim", "James Wilson", "Emily Davis",
	"Carlos Martinez", "Amanda White", "Thomas Anderson", "Rachel Green", "Daniel Taylor",
}

var actionsTaken = []string{
	"Appointment scheduled", "Information provided", "Voicemail recorded",
	"Transferred to staff", "Follow-up task created", "Callback scheduled",
	"Insurance verified", "Payment arranged",
}

var (
	intents = sampler.Weighted(
		[]string{"appointment", "billing", "emergency", "information", "prescription", "follow_up", "insurance", "other"},
		[]float64{35, 15, 5, 15, 5, 10, 10, 5},
	)
	statuses = sampler.Weighted(
		[]string{records.CallAnswered, records.CallMissed, records.CallVoicemail, records.CallAbandoned},
		[]float64{82, 8, 7, 3},
	)
	urgencies = sampler.Weighted(
		[]string{"low", "medium", "high", "emergency"},
		[]float64{50, 30, 15, 5},
	)
)

// Module seeds the phone call log.
type Module struct{}

func (m *Module) Name() string        { return "calls" }
func (m *Module) Description() string { return "Six months of front-desk and AI-handled phone calls" }
func (m *Module) Produces() []string  { return []string{"calls"} }
func (m *Module) Consumes() []string  { return nil }
func (m *Module) Clears() []string    { return []string{"calls"} }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	plan := temporal.Plan{
		Start:  temporal.DaysAgo(env.Now, HistoryDays),
		Days:   HistoryDays + 1,
		Ranges: temporal.Weekdays(weekdayCalls, saturdayCalls, temporal.Closed),
	}
	days, err := plan.Counts(env.Rand)
	if err != nil {
		return res, err
	}

	summaries := env.Text.Pool(ctx, narrative.CallSummary, "")
	calls := make([]records.Call, 0, temporal.Total(days))
	for _, day := range days {
		for i := 0; i < day.Count; i++ {
			c, err := newCall(env.Rand, day.Date, summaries)
			if err != nil {
				return res, err
			}
			calls = append(calls, c)
		}
	}

	env.Clear(ctx, &res, "calls")
	if err := env.Write(ctx, &res, "calls", records.Rows(calls), ""); err != nil {
		return res, err
	}
	return res, nil
}

// newCall draws one call during office hours on date.
func newCall(src rng.Source, date time.Time, summaries []string) (records.Call, error) {
	hour := records.OpenHour + rng.Intn(src, 10)
	at := date.Add(time.Duration(hour)*time.Hour +
		time.Duration(rng.Intn(src, 60))*time.Minute +
		time.Duration(rng.Intn(src, 60))*time.Second)

	status := sampler.MustSample(src, statuses)
	var duration *int
	switch status {
	case records.CallAnswered:
		d := rng.Intn(src, 300) + 30
		duration = &d
	case records.CallVoicemail:
		d := rng.Intn(src, 60) + 15
		duration = &d
	}
	answered := status == records.CallAnswered
	aiHandled := answered && rng.Chance(src, 0.6)

	in := records.CallInput{
		At:              at,
		Status:          status,
		DurationSeconds: duration,
		AIHandled:       aiHandled,
		Intent:          sampler.MustSample(src, intents),
		Urgency:         sampler.MustSample(src, urgencies),
		CallerName:      rng.Choice(src, callerNames),
		CallerPhone:     phone(src),
		Direction:       "outbound",
	}
	if rng.Chance(src, 0.7) {
		in.Direction = "inbound"
	}
	if aiHandled {
		in.AISummary = rng.Choice(src, summaries)
	}
	if answered {
		in.ActionTaken = rng.Choice(src, actionsTaken)
	}
	in.FollowUpRequired = rng.Chance(src, 0.15)
	return records.NewCall(in)
}

// phone returns a local number in the practice's area code.
func phone(src rng.Source) string {
	return fmt.Sprintf("(702) %d-%d", rng.Between(src, 100, 999), rng.Between(src, 1000, 9999))
}
