// ABOUTME: Fixture data for the demo practice.
// ABOUTME: Relative timestamps are resolved against the run's clock.

package demo

import (
	"time"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/internal/temporal"
)

type fixtures struct {
	patients      []records.Patient
	appointments  []records.Appointment
	leads         []records.Lead
	actions       []records.AIAction
	verifications []records.InsuranceVerification
	inbox         []records.InboxMessage
	metrics       []records.DailyMetric
}

func newFixtures(now time.Time) fixtures {
	hoursAgo := func(h float64) time.Time { return now.Add(-time.Duration(h * float64(time.Hour))) }
	minutesAgo := func(m int) time.Time { return now.Add(-time.Duration(m) * time.Minute) }
	day := func(n int) time.Time { return temporal.DaysAgo(now, n) }
	visit := func(n int) *time.Time { t := day(n); return &t }
	at := func(t time.Time) *time.Time { return &t }

	p := []records.Patient{
		{FirstName: "Maria", LastName: "Gonzalez", Email: "maria.g@email.com", Phone: "(702) 555-0101", DateOfBirth: "1985-03-15", Address: "4521 Spring Mountain Rd", Zip: "89102", InsuranceProvider: "Delta Dental", InsuranceMemberID: "DD-892341", InsuranceGroupNumber: "GRP-4401", Status: "active", LastVisit: visit(14), Tags: []string{"cleaning", "loyal"}},
		{FirstName: "James", LastName: "Rodriguez", Email: "james.rod@email.com", Phone: "(702) 555-0102", DateOfBirth: "1978-07-22", Address: "8891 W Flamingo Rd", Zip: "89147", InsuranceProvider: "Cigna Dental", InsuranceMemberID: "CG-110234", InsuranceGroupNumber: "GRP-8800", Status: "active", LastVisit: visit(45), Tags: []string{"implant-candidate"}},
		{FirstName: "Sarah", LastName: "Chen", Email: "sarah.chen@email.com", Phone: "(702) 555-0103", DateOfBirth: "1992-11-08", Address: "3200 S Jones Blvd", Zip: "89146", InsuranceProvider: "MetLife Dental", InsuranceMemberID: "ML-556712", InsuranceGroupNumber: "GRP-2200", Status: "active", LastVisit: visit(3), Tags: []string{"cosmetic", "vip"}},
		{FirstName: "Robert", LastName: "Thompson", Email: "rthompson@email.com", Phone: "(702) 555-0104", DateOfBirth: "1965-01-30", Address: "7100 W Sahara Ave", Zip: "89117", InsuranceProvider: "Aetna Dental", InsuranceMemberID: "AE-334521", InsuranceGroupNumber: "GRP-1100", Status: "active", LastVisit: visit(180), Tags: []string{"recall-overdue"}},
		{FirstName: "Lisa", LastName: "Williams", Email: "lisa.w@email.com", Phone: "(702) 555-0105", DateOfBirth: "1990-06-14", Address: "9500 W Tropicana Ave", Zip: "89147", InsuranceProvider: "Delta Dental", InsuranceMemberID: "DD-778123", InsuranceGroupNumber: "GRP-4401", Status: "active", LastVisit: visit(7), Tags: []string{"orthodontics"}},
		{FirstName: "Michael", LastName: "Kim", Email: "mkim@email.com", Phone: "(702) 555-0106", DateOfBirth: "1988-09-03", Address: "6200 W Charleston Blvd", Zip: "89146", InsuranceProvider: "Guardian Dental", InsuranceMemberID: "GD-443211", InsuranceGroupNumber: "GRP-5500", Status: "active", LastVisit: visit(30), Tags: []string{"crown-needed"}},
		{FirstName: "Jennifer", LastName: "Davis", Email: "jdavis@email.com", Phone: "(702) 555-0107", DateOfBirth: "1975-12-19", Address: "2100 N Rancho Dr", Zip: "89106", InsuranceProvider: "Cigna Dental", InsuranceMemberID: "CG-221567", InsuranceGroupNumber: "GRP-8800", Status: "active", LastVisit: visit(60), Tags: []string{"periodontics"}},
		{FirstName: "David", LastName: "Martinez", Email: "dmartinez@email.com", Phone: "(702) 555-0108", DateOfBirth: "1995-04-25", Address: "5500 W Sunset Rd", Zip: "89118", Status: "active", LastVisit: visit(21), Tags: []string{"cash-pay"}},
		{FirstName: "Emily", LastName: "Nguyen", Email: "emily.n@email.com", Phone: "(702) 555-0109", DateOfBirth: "1983-08-11", Address: "3800 S Hualapai Way", Zip: "89147", InsuranceProvider: "MetLife Dental", InsuranceMemberID: "ML-889034", InsuranceGroupNumber: "GRP-2200", Status: "active", LastVisit: visit(90), Tags: []string{"whitening"}},
		{FirstName: "Anthony", LastName: "Brown", Email: "abrown@email.com", Phone: "(702) 555-0110", DateOfBirth: "1970-02-28", Address: "1800 E Sahara Ave", Zip: "89104", InsuranceProvider: "Delta Dental", InsuranceMemberID: "DD-112890", InsuranceGroupNumber: "GRP-4401", Status: "inactive", LastVisit: visit(400), Tags: []string{"lapsed"}},
		{FirstName: "Rachel", LastName: "Taylor", Email: "rtaylor@email.com", Phone: "(702) 555-0111", DateOfBirth: "1998-05-17", Address: "4200 S Durango Dr", Zip: "89147", InsuranceProvider: "Aetna Dental", InsuranceMemberID: "AE-567890", InsuranceGroupNumber: "GRP-1100", Status: "prospect", Tags: []string{"new-patient"}},
		{FirstName: "Carlos", LastName: "Reyes", Email: "creyes@email.com", Phone: "(702) 555-0112", DateOfBirth: "1980-10-05", Address: "6800 W Cheyenne Ave", Zip: "89129", InsuranceProvider: "Guardian Dental", InsuranceMemberID: "GD-998877", InsuranceGroupNumber: "GRP-5500", Status: "active", LastVisit: visit(10), Tags: []string{"family"}},
	}
	for i := range p {
		p[i].ID = PatientID(i + 1)
		p[i].City = "Las Vegas"
		p[i].State = "NV"
	}

	appt := func(patient int, date time.Time, tm string, minutes int, kind, status string, flags ...bool) records.Appointment {
		a := records.Appointment{
			ID: records.NewID(), PatientID: p[patient].ID, ProviderName: Doctor,
			Date: date, Time: tm, DurationMinutes: minutes, Type: kind, Status: status,
		}
		a.ConfirmationSent, a.Reminder24hSent, a.Reminder2hSent, a.InsuranceVerified = flags[0], flags[1], flags[2], flags[3]
		return a
	}
	today := day(0)
	appointments := []records.Appointment{
		appt(0, today, "09:00", 60, "Cleaning & Exam", "confirmed", true, true, true, true),
		appt(2, today, "10:30", 90, "Cosmetic Consultation", "confirmed", true, true, false, true),
		appt(5, today, "13:00", 90, "Crown Prep", "scheduled", true, true, false, true),
		appt(4, today, "14:30", 60, "Orthodontic Check", "scheduled", true, false, false, false),
		appt(7, today, "16:00", 60, "Emergency - Toothache", "confirmed", true, true, true, false),
		appt(1, day(-2), "09:00", 120, "Implant Consultation", "scheduled", false, false, false, false),
		appt(8, day(-3), "11:00", 60, "Teeth Whitening", "scheduled", false, false, false, true),
		appt(6, day(-5), "10:00", 90, "Periodontal Scaling", "scheduled", false, false, false, true),
	}

	leads := []records.Lead{
		{FirstName: "Amanda", LastName: "Foster", Email: "amanda.foster@email.com", Phone: "(702) 555-0201", Source: "website", Status: "new", InquiryType: "cosmetic", Urgency: "medium", CreatedAt: minutesAgo(25),
			Message:         "Hi, I'm interested in veneers. I have a wedding coming up in April and want my smile to look perfect.",
			AIResponseDraft: "Hi Amanda! Congratulations on your upcoming wedding! We'd love to help you achieve the perfect smile. Our cosmetic consultation with Dr. Alex is complimentary. Would you like to schedule this week?"},
		{FirstName: "Kevin", LastName: "Marshall", Email: "kevin.m@email.com", Phone: "(702) 555-0202", Source: "google", Status: "new", InquiryType: "implants", Urgency: "high", CreatedAt: hoursAgo(2),
			Message:         "I lost a tooth playing basketball and need to get it replaced. Do you do implants?",
			AIResponseDraft: "Hi Kevin, sorry to hear about your tooth! Yes, we specialize in dental implants. We'd like to get you in quickly for an evaluation. Can we schedule you this week?"},
		{FirstName: "Stephanie", LastName: "Park", Email: "spark@email.com", Phone: "(702) 555-0203", Source: "website", Status: "contacted", InquiryType: "cleaning", Urgency: "low", CreatedAt: hoursAgo(24),
			Message:         "New to Las Vegas, looking for a family dentist. We have two kids. Do you accept MetLife?",
			AIResponseDraft: "Welcome to Las Vegas, Stephanie! We'd love to be your family's dental home. We do accept MetLife dental insurance."},
		{FirstName: "Marcus", LastName: "Rivera", Phone: "(702) 555-0204", Source: "phone", Status: "new", InquiryType: "emergency", Urgency: "emergency", CreatedAt: minutesAgo(15),
			Message:         "Severe tooth pain, upper right side. Pain started last night, can't sleep. Needs to be seen ASAP.",
			AIResponseDraft: "Marcus, we understand you're in a lot of pain. We have an emergency opening today. Please come in as soon as possible."},
	}
	for i := range leads {
		leads[i].ID = LeadID(i + 1)
	}

	draft := func(l records.Lead, desc string, confidence float64, created time.Time) records.AIAction {
		return records.AIAction{
			ID: records.NewID(), ActionType: "lead_response_draft", Module: "lead_response", Description: desc,
			Input: map[string]string{"lead_id": l.ID}, Output: map[string]string{"response": l.AIResponseDraft},
			Status: "pending_approval", LeadID: l.ID, Confidence: confidence, CreatedAt: created,
		}
	}
	nudge := func(kind, module string, patient int, desc, message string, confidence float64, created time.Time) records.AIAction {
		return records.AIAction{
			ID: records.NewID(), ActionType: kind, Module: module, Description: desc,
			Input: map[string]string{"patient_id": p[patient].ID}, Output: map[string]string{"message": message},
			Status: "pending_approval", PatientID: p[patient].ID, Confidence: confidence, CreatedAt: created,
		}
	}
	processed := func(kind, module, desc, status string, confidence float64, approved, created time.Time) records.AIAction {
		return records.AIAction{
			ID: records.NewID(), ActionType: kind, Module: module, Description: desc, Status: status,
			Confidence: confidence, ApprovedBy: Doctor, ApprovedAt: at(approved), CreatedAt: created,
		}
	}
	actions := []records.AIAction{
		draft(leads[0], "Drafted response for lead: Amanda Foster - Cosmetic/Veneers inquiry", 0.92, minutesAgo(24)),
		draft(leads[1], "Drafted response for lead: Kevin Marshall - Dental implant inquiry (HIGH URGENCY)", 0.88, hoursAgo(1.9)),
		draft(leads[3], "Drafted EMERGENCY response for lead: Marcus Rivera - Severe tooth pain", 0.95, minutesAgo(14)),
		nudge("appointment_reminder", "scheduling", 5, "Send 2-hour reminder to Michael Kim for Crown Prep at 1:00 PM",
			"Hi Michael! Reminder - your Crown Prep is today at 1:00 PM.", 0.97, minutesAgo(10)),
		nudge("insurance_followup", "insurance", 4, "Follow up on pending insurance verification for Lisa Williams",
			"Insurance verification needed for Lisa Williams (Delta Dental).", 0.82, minutesAgo(45)),
		nudge("patient_recall", "recall", 3, "Recall outreach for Robert Thompson - 6 months overdue",
			"Hi Robert! It's been a while since your last visit.", 0.78, hoursAgo(3)),
		processed("lead_response_draft", "lead_response", "Drafted response for lead: Stephanie Park", "executed", 0.91, hoursAgo(20), hoursAgo(24)),
		processed("appointment_confirmation", "scheduling", "Sent confirmation to Maria Gonzalez for Cleaning & Exam", "executed", 0.96, hoursAgo(48), hoursAgo(48)),
		processed("appointment_confirmation", "scheduling", "Sent confirmation to Sarah Chen for Cosmetic Consultation", "approved", 0.94, hoursAgo(24), hoursAgo(24)),
		processed("patient_recall", "recall", "Recall outreach for inactive patient: Anthony Brown", "rejected", 0.65, hoursAgo(72), hoursAgo(72)),
	}

	verified := func(patient int, c records.Coverage, when time.Time) records.InsuranceVerification {
		return records.InsuranceVerification{
			ID: records.NewID(), PatientID: p[patient].ID, InsuranceProvider: p[patient].InsuranceProvider,
			MemberID: p[patient].InsuranceMemberID, GroupNumber: p[patient].InsuranceGroupNumber,
			Status: "verified", Coverage: &c, VerifiedBy: "System", VerifiedAt: at(when),
		}
	}
	pending := func(patient int) records.InsuranceVerification {
		return records.InsuranceVerification{
			ID: records.NewID(), PatientID: p[patient].ID, InsuranceProvider: p[patient].InsuranceProvider,
			MemberID: p[patient].InsuranceMemberID, GroupNumber: p[patient].InsuranceGroupNumber, Status: "pending",
		}
	}
	verifications := []records.InsuranceVerification{
		verified(0, records.Coverage{Type: "PPO", Deductible: 50, DeductibleMet: 50, AnnualMaximum: 2000, AnnualUsed: 320, Preventive: 100, Basic: 80, Major: 50}, hoursAgo(48)),
		verified(2, records.Coverage{Type: "PPO", Deductible: 75, DeductibleMet: 75, AnnualMaximum: 1500, Preventive: 100, Basic: 80, Major: 50, Orthodontic: 50}, hoursAgo(24)),
		verified(5, records.Coverage{Type: "HMO", AnnualMaximum: 1000, AnnualUsed: 450, Preventive: 100, Basic: 70, Major: 50}, hoursAgo(72)),
		pending(4),
		pending(1),
	}

	msg := func(patient int, channel, direction, status, content string, created time.Time) records.InboxMessage {
		return records.InboxMessage{
			ID: records.NewID(), PatientID: p[patient].ID, Channel: channel, Direction: direction,
			Status: status, Content: content, CreatedAt: created,
		}
	}
	inbox := []records.InboxMessage{
		msg(0, "sms", "outbound", "delivered", "Hi Maria! Reminder - your cleaning is tomorrow at 9:00 AM. Reply CONFIRM.", hoursAgo(24)),
		msg(0, "sms", "inbound", "delivered", "CONFIRM - see you tomorrow!", hoursAgo(23)),
		msg(2, "email", "outbound", "opened", "Dear Sarah, Your cosmetic consultation is confirmed for today at 10:30 AM.", hoursAgo(48)),
		msg(5, "sms", "outbound", "delivered", "Hi Michael, your crown prep is today at 1:00 PM. Reply C to confirm.", hoursAgo(24)),
		msg(5, "sms", "inbound", "delivered", "C", hoursAgo(22)),
		msg(3, "sms", "outbound", "delivered", "Hi Robert, it's been a while! Would you like to schedule a cleaning?", hoursAgo(120)),
		msg(8, "email", "outbound", "delivered", "Hi Emily, you're due for your 6-month cleaning. Book online or call us!", hoursAgo(72)),
		msg(7, "sms", "inbound", "delivered", "Hey, I have a really bad toothache. Can I come in today?", hoursAgo(3)),
		msg(7, "sms", "outbound", "delivered", "Hi David, we can see you today at 4:00 PM. Does that work?", hoursAgo(2.75)),
		msg(7, "sms", "inbound", "delivered", "Yes please! Thank you so much", hoursAgo(2.5)),
	}

	metrics := []records.DailyMetric{
		{Date: day(6), NewLeads: 3, LeadsConverted: 1, AppointmentsScheduled: 6, AppointmentsCompleted: 5, NoShows: 1, Production: 4200, Collections: 3800, ClaimsSubmitted: 4, ClaimsPaid: 2, AIActionsTaken: 8, AIActionsApproved: 7, AvgLeadResponseSeconds: 45, PatientMessagesSent: 12, PatientMessagesReceived: 6},
		{Date: day(5), NewLeads: 2, LeadsConverted: 1, AppointmentsScheduled: 5, AppointmentsCompleted: 5, Cancellations: 1, Production: 3800, Collections: 3500, ClaimsSubmitted: 3, ClaimsPaid: 3, AIActionsTaken: 6, AIActionsApproved: 6, AvgLeadResponseSeconds: 38, PatientMessagesSent: 10, PatientMessagesReceived: 4},
		{Date: day(4), NewLeads: 4, LeadsConverted: 2, AppointmentsScheduled: 7, AppointmentsCompleted: 6, Cancellations: 1, Production: 5100, Collections: 4800, ClaimsSubmitted: 5, ClaimsPaid: 2, AIActionsTaken: 11, AIActionsApproved: 10, AvgLeadResponseSeconds: 52, PatientMessagesSent: 15, PatientMessagesReceived: 8},
		{Date: day(3), NewLeads: 1, AppointmentsScheduled: 4, AppointmentsCompleted: 4, Production: 2900, Collections: 2600, ClaimsSubmitted: 2, ClaimsPaid: 2, AIActionsTaken: 5, AIActionsApproved: 5, AvgLeadResponseSeconds: 30, PatientMessagesSent: 8, PatientMessagesReceived: 3},
		{Date: day(2), NewLeads: 3, LeadsConverted: 1, AppointmentsScheduled: 6, AppointmentsCompleted: 5, NoShows: 1, Production: 4500, Collections: 4100, ClaimsSubmitted: 4, ClaimsPaid: 1, AIActionsTaken: 9, AIActionsApproved: 8, AvgLeadResponseSeconds: 41, PatientMessagesSent: 14, PatientMessagesReceived: 7},
		{Date: day(1), NewLeads: 2, LeadsConverted: 1, AppointmentsScheduled: 5, AppointmentsCompleted: 4, Cancellations: 1, Production: 3200, Collections: 3000, ClaimsSubmitted: 3, ClaimsPaid: 3, AIActionsTaken: 7, AIActionsApproved: 6, AvgLeadResponseSeconds: 35, PatientMessagesSent: 11, PatientMessagesReceived: 5},
		{Date: day(0), NewLeads: 4, AppointmentsScheduled: 5, AIActionsTaken: 6, AIActionsApproved: 3, AvgLeadResponseSeconds: 22, PatientMessagesSent: 6, PatientMessagesReceived: 4},
	}

	return fixtures{
		patients:      p,
		appointments:  appointments,
		leads:         leads,
		actions:       actions,
		verifications: verifications,
		inbox:         inbox,
		metrics:       metrics,
	}
}
