// ABOUTME: Static fallback text when OpenAI is not configured.
// ABOUTME: Call summaries and campaign subject lines for a dental practice.

package narrative

var callSummaries = []string{
	"Patient called to schedule a cleaning appointment. AI booked for next available slot.",
	"Billing inquiry about recent crown procedure. AI provided itemized breakdown.",
	"Patient requesting prescription refill for pain medication. Transferred to provider.",
	"Insurance eligibility question. AI verified coverage and explained benefits.",
	"Follow-up call regarding post-op care instructions after extraction.",
	"New patient inquiry about dental implant costs and insurance coverage.",
	"Appointment confirmation call. Patient confirmed attendance.",
	"Patient called about tooth sensitivity. AI recommended scheduling exam.",
	"Billing question about outstanding balance. AI provided payment options.",
	"Emergency call - severe tooth pain. Transferred to on-call provider.",
}

var campaignSubjects = map[string][]string{
	"welcome":            {"Welcome to AK Ultimate Dental!", "Your New Patient Guide", "Getting Started With Your Dental Care"},
	"recall":             {"Time for Your Cleaning!", "Your 6-Month Checkup is Due", "Don't Forget Your Dental Visit"},
	"treatment_followup": {"How Are You Feeling?", "Post-Treatment Care Reminder", "Follow-Up: Your Recent Visit"},
	"reactivation":       {"We Miss You!", "It's Been a While - Schedule Today", "Your Smile Needs Attention"},
	"no_show":            {"We Missed You Today", "Reschedule Your Appointment", "Let's Find a Better Time"},
	"review_request":     {"How Was Your Visit?", "Share Your Experience", "We'd Love Your Feedback"},
	"birthday":           {"Happy Birthday from AK Dental!", "A Special Birthday Gift for You", "Celebrating Your Special Day"},
}

func staticPool(kind Kind, key string) []string {
	switch kind {
	case CallSummary:
		return callSummaries
	case CampaignSubject:
		if s, ok := campaignSubjects[key]; ok {
			return s
		}
	}
	return []string{"Outreach Message"}
}
