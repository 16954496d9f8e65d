// ABOUTME: Phone call records.
// ABOUTME: NewCall derives after-hours and call type and rejects inconsistent call outcomes.

package records

import (
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// Call statuses.
const (
	CallAnswered  = "answered"
	CallMissed    = "missed"
	CallVoicemail = "voicemail"
	CallAbandoned = "abandoned"
)

// Office hours: a call before OpenHour or at/after CloseHour is after hours.
const (
	OpenHour  = 8
	CloseHour = 17
)

// CallInput is everything a generator decides about a call.
type CallInput struct {
	At               time.Time
	CallerPhone      string
	CallerName       string
	Direction        string
	Status           string
	DurationSeconds  *int
	Intent           string
	Urgency          string
	AIHandled        bool
	AISummary        string
	ActionTaken      string
	FollowUpRequired bool
}

// Call is a validated phone call.
type Call struct {
	ID               string
	CreatedAt        time.Time
	CallerPhone      string
	CallerName       string
	Direction        string
	Status           string
	DurationSeconds  *int
	AfterHours       bool
	Intent           string
	Urgency          string
	AIHandled        bool
	AISummary        string
	ActionTaken      string
	FollowUpRequired bool
	CallType         string
}

// NewCall validates in and derives the dependent fields:
//   - only answered and voicemail calls carry a duration, and they must;
//   - only answered calls can be AI-handled or have an action taken;
//   - an AI summary requires AI handling.
func NewCall(in CallInput) (Call, error) {
	switch in.Status {
	case CallAnswered, CallVoicemail:
		if in.DurationSeconds == nil || *in.DurationSeconds <= 0 {
			return Call{}, seederrors.Invalid("duration_seconds", "%s call needs a positive duration", in.Status)
		}
	case CallMissed, CallAbandoned:
		if in.DurationSeconds != nil {
			return Call{}, seederrors.Invalid("duration_seconds", "%s call cannot have a duration", in.Status)
		}
	default:
		return Call{}, seederrors.Invalid("status", "unknown call status %q", in.Status)
	}
	if in.AIHandled && in.Status != CallAnswered {
		return Call{}, seederrors.Invalid("ai_handled", "only answered calls can be AI-handled, got %s", in.Status)
	}
	if in.ActionTaken != "" && in.Status != CallAnswered {
		return Call{}, seederrors.Invalid("action_taken", "only answered calls have an action, got %s", in.Status)
	}
	if in.AISummary != "" && !in.AIHandled {
		return Call{}, seederrors.Invalid("ai_summary", "summary requires an AI-handled call")
	}

	hour := in.At.Hour()
	callType := "human"
	if in.AIHandled {
		callType = "ai"
	}
	return Call{
		ID:               NewID(),
		CreatedAt:        in.At,
		CallerPhone:      in.CallerPhone,
		CallerName:       in.CallerName,
		Direction:        in.Direction,
		Status:           in.Status,
		DurationSeconds:  in.DurationSeconds,
		AfterHours:       hour < OpenHour || hour >= CloseHour,
		Intent:           in.Intent,
		Urgency:          in.Urgency,
		AIHandled:        in.AIHandled,
		AISummary:        in.AISummary,
		ActionTaken:      in.ActionTaken,
		FollowUpRequired: in.FollowUpRequired,
		CallType:         callType,
	}, nil
}

func (Call) Table() string { return "calls" }

func (c Call) Row() store.Row {
	var duration any
	if c.DurationSeconds != nil {
		duration = *c.DurationSeconds
	}
	return store.Row{
		"id":                  c.ID,
		"created_at":          c.CreatedAt.UTC(),
		"caller_phone":        c.CallerPhone,
		"caller_name":         c.CallerName,
		"direction":           c.Direction,
		"status":              c.Status,
		"duration_seconds":    duration,
		"after_hours":         c.AfterHours,
		"intent":              c.Intent,
		"urgency":             c.Urgency,
		"ai_handled":          c.AIHandled,
		"ai_summary":          OptString(c.AISummary),
		"action_taken":        OptString(c.ActionTaken),
		"follow_up_required":  c.FollowUpRequired,
		"follow_up_completed": false,
		"call_type":           c.CallType,
	}
}
