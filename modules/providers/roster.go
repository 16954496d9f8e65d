// ABOUTME: Fixed provider roster, weekly schedules, time off, and referral targets.
// ABOUTME: Schedules and time off are keyed by provider name until ids are assigned at seed time.

package providers

import (
	"time"

	"github.com/2389/demoseed/internal/records"
)

// staff returns the roster. Everyone is active and licensed in Nevada.
func staff() []records.Provider {
	ps := []records.Provider{
		{FirstName: "Alex", LastName: "Khachaturian", Title: "DDS", Specialty: "General Dentistry", NPINumber: "1234567890", LicenseNumber: "NV-DDS-2015-4821", Email: "dr.alex@akultimatedental.com", Phone: "(702) 555-0100", Bio: "Dr. Khachaturian is the founder and lead dentist at AK Ultimate Dental with over 15 years of experience.", AcceptingNewPatients: true, Color: "#2563EB"},
		{FirstName: "Sarah", LastName: "Chen", Title: "DMD", Specialty: "Cosmetic Dentistry", NPINumber: "2345678901", LicenseNumber: "NV-DMD-2018-7293", Email: "dr.chen@akultimatedental.com", Phone: "(702) 555-0101", Bio: "Dr. Chen specializes in cosmetic and restorative dentistry.", AcceptingNewPatients: true, Color: "#7C3AED"},
		{FirstName: "Michael", LastName: "Torres", Title: "DDS", Specialty: "Oral Surgery & Implants", NPINumber: "3456789012", LicenseNumber: "NV-DDS-2016-5547", Email: "dr.torres@akultimatedental.com", Phone: "(702) 555-0102", Bio: "Dr. Torres is a board-certified oral surgeon specializing in dental implants.", AcceptingNewPatients: true, Color: "#059669"},
		{FirstName: "Maria", LastName: "Lopez", Title: "RDH", Specialty: "Hygienist", LicenseNumber: "NV-RDH-2019-3381", Email: "maria.lopez@akultimatedental.com", Phone: "(702) 555-0103", Bio: "Maria is a registered dental hygienist with 8 years of experience.", AcceptingNewPatients: true, Color: "#D97706"},
		{FirstName: "Jennifer", LastName: "Park", Title: "RDH", Specialty: "Hygienist", LicenseNumber: "NV-RDH-2020-4412", Email: "jennifer.park@akultimatedental.com", Phone: "(702) 555-0104", Bio: "Jennifer specializes in pediatric and geriatric dental hygiene.", AcceptingNewPatients: true, Color: "#DC2626"},
		{FirstName: "David", LastName: "Kim", Title: "DA", Specialty: "Dental Assistant", LicenseNumber: "NV-DA-2021-6678", Email: "david.kim@akultimatedental.com", Phone: "(702) 555-0105", Bio: "David is a certified dental assistant with expertise in chairside assisting.", Color: "#0891B2"},
	}
	for i := range ps {
		ps[i].Active = true
		ps[i].LicenseState = "NV"
	}
	return ps
}

type window struct {
	day        time.Weekday
	start, end string
}

// days repeats one window across consecutive weekdays from Monday.
func days(n int, start, end string) []window {
	out := make([]window, n)
	for i := range out {
		out[i] = window{day: time.Monday + time.Weekday(i), start: start, end: end}
	}
	return out
}

var weeklySchedule = map[string][]window{
	"Alex Khachaturian": append(days(4, "08:00", "17:00"), window{time.Friday, "08:00", "14:00"}),
	"Sarah Chen": {
		{time.Monday, "09:00", "18:00"},
		{time.Tuesday, "09:00", "18:00"},
		{time.Wednesday, "09:00", "13:00"},
		{time.Thursday, "09:00", "18:00"},
		{time.Friday, "09:00", "18:00"},
	},
	"Michael Torres": days(4, "07:00", "15:00"),
	"Maria Lopez":    days(5, "08:00", "16:00"),
	"Jennifer Park": {
		{time.Monday, "08:00", "16:00"},
		{time.Tuesday, "10:00", "18:00"},
		{time.Wednesday, "08:00", "16:00"},
		{time.Thursday, "10:00", "18:00"},
		{time.Friday, "08:00", "14:00"},
	},
	"David Kim": append(days(4, "07:30", "16:30"), window{time.Friday, "07:30", "12:00"}),
}

type namedBlock struct {
	provider string
	block    records.ProviderBlock
}

func timeOff() []namedBlock {
	return []namedBlock{
		{"Alex Khachaturian", records.ProviderBlock{BlockType: "vacation", Title: "Family Vacation", StartDate: "2026-03-15", EndDate: "2026-03-22"}},
		{"Sarah Chen", records.ProviderBlock{BlockType: "meeting", Title: "Cosmetic Dentistry Conference", StartDate: "2026-03-05", EndDate: "2026-03-07"}},
		{"Michael Torres", records.ProviderBlock{BlockType: "personal", Title: "Personal Day", StartDate: "2026-02-28", EndDate: "2026-02-28"}},
		{"Maria Lopez", records.ProviderBlock{BlockType: "sick", Title: "Sick Day", StartDate: "2026-02-10", EndDate: "2026-02-10"}},
		{"Alex Khachaturian", records.ProviderBlock{BlockType: "meeting", Title: "Staff Meeting", StartDate: "2026-02-20", EndDate: "2026-02-20", StartTime: "12:00", EndTime: "13:00"}},
		{"Jennifer Park", records.ProviderBlock{BlockType: "holiday", Title: "Presidents Day", StartDate: "2026-02-16", EndDate: "2026-02-16"}},
		{"Sarah Chen", records.ProviderBlock{BlockType: "vacation", Title: "Spring Break", StartDate: "2026-04-06", EndDate: "2026-04-10"}},
	}
}

var specialists = []records.ReferralTarget{
	{Name: "Dr. James Mitchell", Specialty: "Orthodontics", Phone: "(702) 555-2001", Fax: "(702) 555-2002", Address: "3500 S Las Vegas Blvd, Suite 200"},
	{Name: "Dr. Linda Nguyen", Specialty: "Endodontics", Phone: "(702) 555-2003", Fax: "(702) 555-2004", Address: "4200 W Flamingo Rd, Suite 110"},
	{Name: "Dr. Robert Patel", Specialty: "Periodontics", Phone: "(702) 555-2005", Fax: "(702) 555-2006", Address: "2800 E Desert Inn Rd, Suite 300"},
	{Name: "Dr. Amanda Foster", Specialty: "Oral Surgery", Phone: "(702) 555-2007", Fax: "(702) 555-2008", Address: "5100 W Sahara Ave, Suite 150"},
	{Name: "Dr. Kevin Yamamoto", Specialty: "Pediatric Dentistry", Phone: "(702) 555-2009", Fax: "(702) 555-2010", Address: "1900 N Rainbow Blvd, Suite 250"},
	{Name: "Dr. Rachel Green", Specialty: "Prosthodontics", Phone: "(702) 555-2011", Fax: "(702) 555-2012", Address: "6000 S Eastern Ave, Suite 180"},
}

var referralReasons = []string{
	"Complex root canal treatment needed", "Wisdom teeth extraction referral",
	"Orthodontic evaluation and braces consultation", "Periodontal disease - advanced treatment required",
	"TMJ evaluation and treatment", "Pediatric dental care for anxious child",
	"Complex implant case - bone graft needed", "Oral lesion biopsy required",
}
