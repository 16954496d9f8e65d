// ABOUTME: Campaign message generation: type and channel mix, engagement funnels, and timing.
// ABOUTME: Written channels run delivered, opened, clicked, converted; phone converts off a response.

package outreach

import (
	"time"

	"github.com/2389/demoseed/internal/funnel"
	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/sampler"
)

// Campaign types.
var campaignTypes = []string{"welcome", "recall", "treatment_followup", "reactivation", "no_show", "review_request", "birthday"}

var (
	typeMix    = sampler.Weighted(campaignTypes, []float64{15, 25, 12, 18, 8, 15, 7})
	channelMix = sampler.Weighted(
		[]string{records.ChannelEmail, records.ChannelSMS, records.ChannelPhone},
		[]float64{58, 32, 10},
	)
)

// engagement holds the end-to-end rates of one campaign type on email.
type engagement struct {
	delivery, open, click, conversion, response float64
}

var engagementByType = map[string]engagement{
	"welcome":            {0.97, 0.68, 0.32, 0.18, 0.12},
	"recall":             {0.96, 0.52, 0.24, 0.14, 0.08},
	"treatment_followup": {0.97, 0.45, 0.19, 0.11, 0.06},
	"reactivation":       {0.94, 0.38, 0.15, 0.08, 0.05},
	"no_show":            {0.96, 0.56, 0.28, 0.16, 0.10},
	"review_request":     {0.97, 0.42, 0.35, 0.22, 0.15},
	"birthday":           {0.98, 0.72, 0.28, 0.10, 0.08},
}

// channelMultipliers scale the funnel stages per channel. Phone calls are
// never opened or clicked.
var channelMultipliers = map[string]map[string]float64{
	records.ChannelEmail: {"opened": 1, "clicked": 1, "responded": 1},
	records.ChannelSMS:   {"opened": 1.6, "clicked": 1.5, "responded": 2.2},
	records.ChannelPhone: {"opened": 0, "clicked": 0, "responded": 5.5},
}

var writtenFunnel = funnel.Definition{Stages: []funnel.Stage{
	{Name: "delivered", MinDelay: time.Second, MaxDelay: time.Minute},
	{Name: "opened", After: "delivered", MinDelay: time.Second, MaxDelay: 24 * time.Hour},
	{Name: "clicked", After: "opened", MinDelay: time.Second, MaxDelay: time.Hour},
	{Name: "converted", After: "clicked", MinDelay: time.Second, MaxDelay: 48 * time.Hour},
	{Name: "responded", After: "delivered", MinDelay: time.Minute, MaxDelay: 24 * time.Hour},
}}

var phoneFunnel = funnel.Definition{Stages: []funnel.Stage{
	{Name: "delivered", MinDelay: time.Second, MaxDelay: time.Minute},
	{Name: "opened", After: "delivered", MinDelay: time.Second, MaxDelay: time.Hour},
	{Name: "clicked", After: "opened", MinDelay: time.Second, MaxDelay: time.Hour},
	{Name: "responded", After: "delivered", MinDelay: time.Minute, MaxDelay: 24 * time.Hour},
	{Name: "converted", After: "responded", MinDelay: time.Minute, MaxDelay: 48 * time.Hour},
}}

// stageRates turns end-to-end rates into per-stage conditional rates.
func stageRates(e engagement, channel string) map[string]float64 {
	rates := map[string]float64{
		"delivered": e.delivery,
		"opened":    e.open,
		"clicked":   e.click / e.open,
		"converted": e.conversion / e.click,
		"responded": e.response,
	}
	if channel == records.ChannelPhone {
		rates["converted"] = e.conversion * 2
	}
	return rates
}

// campaign carries the month-level rates a message is drawn under.
type campaign struct {
	autoRate float64
	aiRate   float64
}

// newMessage simulates one campaign message sent at sentAt.
func newMessage(src rng.Source, c campaign, sentAt time.Time, patientIDs []string, workflows map[string]string, subjects map[string][]string) (records.CampaignMessage, error) {
	kind := sampler.MustSample(src, typeMix)
	channel := sampler.MustSample(src, channelMix)

	def := writtenFunnel
	if channel == records.ChannelPhone {
		def = phoneFunnel
	}
	out, err := funnel.Simulate(src, def, stageRates(engagementByType[kind], channel), channelMultipliers[channel], sentAt)
	if err != nil {
		return records.CampaignMessage{}, err
	}

	in := records.CampaignInput{
		WorkflowID:   workflows[kind],
		Channel:      channel,
		CampaignType: kind,
		SentAt:       sentAt,
		Automated:    rng.Chance(src, c.autoRate),
	}
	in.AIGenerated = in.Automated && rng.Chance(src, c.aiRate/c.autoRate)
	if len(patientIDs) > 0 {
		in.PatientID = rng.Choice(src, patientIDs)
	}
	if channel != records.ChannelPhone {
		in.Subject = rng.Choice(src, subjects[kind])
	}

	if out.Reached("delivered") {
		in.Status = records.MessageDelivered
		in.Engagement = records.Engagement{
			Opened:      out.Reached("opened"),
			Clicked:     out.Reached("clicked"),
			Converted:   out.Reached("converted"),
			Responded:   out.Reached("responded"),
			OpenedAt:    out.At("opened"),
			ClickedAt:   out.At("clicked"),
			ConvertedAt: out.At("converted"),
		}
		in.Unsubscribed = rng.Chance(src, unsubscribeRate)
	} else if rng.Chance(src, 0.6) {
		in.Status = records.MessageBounced
	} else {
		in.Status = records.MessageFailed
	}
	return records.NewCampaignMessage(in)
}
