// ABOUTME: Outreach module: campaign workflows and six months of campaign message history.
// ABOUTME: Workflows upsert by type; campaign messages are replaced while inbox threads are kept.

package outreach

import (
	"context"
	"log"
	"time"

	"github.com/2389/demoseed/internal/narrative"
	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/internal/temporal"
	"github.com/2389/demoseed/modules/core"
)

func init() {
	core.Register(&Module{})
}

const (
	// HistoryMonths is the number of calendar months of campaigns, ending with
	// the current month.
	HistoryMonths = 6

	baseVolume   = 1200
	volumeStep   = 120
	volumeJitter = 60

	// sundaySkip is the share of messages drawn on a Sunday that are dropped.
	sundaySkip      = 0.85
	unsubscribeRate = 0.004
)

var workflowNames = map[string]string{
	"welcome":            "New Patient Welcome",
	"recall":             "Hygiene Recall",
	"treatment_followup": "Treatment Follow-Up",
	"reactivation":       "Patient Reactivation",
	"no_show":            "No-Show Recovery",
	"review_request":     "Review Request",
	"birthday":           "Birthday Greetings",
}

// WorkflowID returns the fixed id of the workflow for a campaign type.
func WorkflowID(campaignType string) string {
	return records.StableID("workflow", campaignType)
}

// Module seeds outreach campaigns.
type Module struct{}

func (m *Module) Name() string        { return "outreach" }
func (m *Module) Description() string { return "Campaign workflows and six months of email, SMS, and phone outreach" }

func (m *Module) Produces() []string {
	return []string{"outreach_workflows", "outreach_messages"}
}

func (m *Module) Consumes() []string { return []string{"patients"} }
func (m *Module) Clears() []string   { return []string{"outreach_messages"} }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	flows := make([]records.Workflow, len(campaignTypes))
	for i, t := range campaignTypes {
		flows[i] = records.Workflow{ID: WorkflowID(t), Type: t, Name: workflowNames[t], Active: true}
	}
	if err := env.Write(ctx, &res, "outreach_workflows", records.Rows(flows), "type"); err != nil {
		return res, err
	}
	workflows := existingWorkflows(ctx, env, &res)
	patients := env.PatientIDs(ctx, &res, 50)

	subjects := make(map[string][]string, len(campaignTypes))
	for _, t := range campaignTypes {
		subjects[t] = env.Text.Pool(ctx, narrative.CampaignSubject, t)
	}

	var messages []records.CampaignMessage
	for _, month := range temporal.Months(env.Now, HistoryMonths) {
		c := campaign{
			autoRate: temporal.Ramp(month, HistoryMonths, 0.34, 0.73),
			aiRate:   temporal.Ramp(month, HistoryMonths, 0.15, 0.29),
		}
		volume := temporal.MonthlyVolume(env.Rand, month, baseVolume, volumeStep, volumeJitter)
		for i := 0; i < volume; i++ {
			sentAt, ok := sendTime(env.Rand, month)
			if !ok || sentAt.After(env.Now) {
				continue
			}
			msg, err := newMessage(env.Rand, c, sentAt, patients, workflows, subjects)
			if err != nil {
				return res, err
			}
			messages = append(messages, msg)
		}
	}

	env.Clear(ctx, &res, "outreach_messages", store.NotNull("campaign_type"))
	if err := env.Write(ctx, &res, "outreach_messages", records.Rows(messages), ""); err != nil {
		return res, err
	}
	log.Printf("Seeded %d outreach messages over %d months", res.Inserted["outreach_messages"], HistoryMonths)
	return res, nil
}

// existingWorkflows maps campaign type to workflow id as stored, so messages
// reference whatever rows the table actually holds.
func existingWorkflows(ctx context.Context, env core.Env, res *core.Result) map[string]string {
	rows, err := env.Store.Select(ctx, "outreach_workflows", []string{"id", "type"}, nil, 0)
	if err != nil {
		res.Errorf("Workflows: %v", err)
		return nil
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		id, _ := r["id"].(string)
		t, _ := r["type"].(string)
		out[t] = id
	}
	return out
}

// sendTime draws a day of month and a time within office hours. Most Sunday
// draws are dropped, reported by ok=false.
func sendTime(src rng.Source, m temporal.Month) (time.Time, bool) {
	day := m.Start.AddDate(0, 0, rng.Intn(src, m.Days))
	if day.Weekday() == time.Sunday && rng.Chance(src, sundaySkip) {
		return time.Time{}, false
	}
	at := day.Add(time.Duration(records.OpenHour+rng.Intn(src, 10))*time.Hour +
		time.Duration(rng.Intn(src, 60))*time.Minute +
		time.Duration(rng.Intn(src, 60))*time.Second)
	return at, true
}
