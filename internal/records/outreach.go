// ABOUTME: Outreach message and workflow records.
// ABOUTME: Campaign messages only carry engagement when delivered; inbox messages carry conversation text.

package records

import (
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// Message statuses.
const (
	MessageDelivered = "delivered"
	MessageBounced   = "bounced"
	MessageFailed    = "failed"
	MessageOpened    = "opened"
)

// Channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPhone = "phone"
)

// Engagement is the funnel result for one delivered campaign message. Each
// timestamp is set exactly when its flag is.
type Engagement struct {
	Opened      bool
	Clicked     bool
	Converted   bool
	Responded   bool
	OpenedAt    *time.Time
	ClickedAt   *time.Time
	ConvertedAt *time.Time
}

// CampaignInput is everything a generator decides about a campaign message.
type CampaignInput struct {
	WorkflowID   string
	PatientID    string
	Channel      string
	CampaignType string
	Status       string
	Subject      string
	Engagement   Engagement
	Unsubscribed bool
	Automated    bool
	AIGenerated  bool
	SentAt       time.Time
}

// CampaignMessage is a validated outbound campaign message.
type CampaignMessage struct {
	ID string
	CampaignInput
}

// NewCampaignMessage checks that undelivered messages have no engagement,
// that engagement flags follow the funnel order, that phone messages have no
// subject, and that AI-generated messages are automated.
func NewCampaignMessage(in CampaignInput) (CampaignMessage, error) {
	switch in.Status {
	case MessageDelivered, MessageBounced, MessageFailed:
	default:
		return CampaignMessage{}, seederrors.Invalid("status", "unknown campaign status %q", in.Status)
	}
	e := in.Engagement
	delivered := in.Status == MessageDelivered
	if !delivered && (e.Opened || e.Clicked || e.Converted || e.Responded || in.Unsubscribed) {
		return CampaignMessage{}, seederrors.Invalid("engagement", "%s message cannot have engagement", in.Status)
	}
	if e.Clicked && !e.Opened {
		return CampaignMessage{}, seederrors.Invalid("clicked", "click without open")
	}
	if e.Opened != (e.OpenedAt != nil) || e.Clicked != (e.ClickedAt != nil) || e.Converted != (e.ConvertedAt != nil) {
		return CampaignMessage{}, seederrors.Invalid("engagement", "timestamps must be set exactly for reached stages")
	}
	if in.Channel == ChannelPhone && in.Subject != "" {
		return CampaignMessage{}, seederrors.Invalid("subject", "phone messages have no subject")
	}
	if in.AIGenerated && !in.Automated {
		return CampaignMessage{}, seederrors.Invalid("ai_generated", "AI-generated messages must be automated")
	}
	return CampaignMessage{ID: NewID(), CampaignInput: in}, nil
}

func (CampaignMessage) Table() string { return "outreach_messages" }

func (m CampaignMessage) Row() store.Row {
	return store.Row{
		"id":            m.ID,
		"workflow_id":   OptString(m.WorkflowID),
		"patient_id":    OptString(m.PatientID),
		"channel":       m.Channel,
		"direction":     "outbound",
		"campaign_type": m.CampaignType,
		"status":        m.Status,
		"subject":       OptString(m.Subject),
		"opened":        m.Engagement.Opened,
		"clicked":       m.Engagement.Clicked,
		"converted":     m.Engagement.Converted,
		"responded":     m.Engagement.Responded,
		"unsubscribed":  m.Unsubscribed,
		"ai_generated":  m.AIGenerated,
		"automated":     m.Automated,
		"sent_at":       m.SentAt.UTC(),
		"opened_at":     OptTime(m.Engagement.OpenedAt),
		"clicked_at":    OptTime(m.Engagement.ClickedAt),
		"converted_at":  OptTime(m.Engagement.ConvertedAt),
		"created_at":    m.SentAt.UTC(),
	}
}

// InboxMessage is a one-to-one patient conversation message.
type InboxMessage struct {
	ID        string
	PatientID string
	Channel   string
	Direction string
	Status    string
	Content   string
	CreatedAt time.Time
}

func (InboxMessage) Table() string { return "outreach_messages" }

func (m InboxMessage) Row() store.Row {
	return store.Row{
		"id":            m.ID,
		"patient_id":    m.PatientID,
		"channel":       m.Channel,
		"direction":     m.Direction,
		"campaign_type": nil,
		"status":        m.Status,
		"content":       m.Content,
		"created_at":    m.CreatedAt.UTC(),
	}
}

// Workflow is an outreach automation keyed by campaign type.
type Workflow struct {
	ID          string
	Type        string
	Name        string
	Description string
	Active      bool
}

func (Workflow) Table() string { return "outreach_workflows" }

func (w Workflow) Row() store.Row {
	return store.Row{
		"id":          w.ID,
		"type":        w.Type,
		"name":        w.Name,
		"description": OptString(w.Description),
		"is_active":   w.Active,
	}
}
