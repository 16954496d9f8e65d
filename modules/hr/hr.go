// ABOUTME: HR module: staff roster, HR documents, and signed acknowledgments.
// ABOUTME: Upserts on stable ids so reseeding never duplicates employees or their paperwork.

package hr

import (
	"context"
	"fmt"

	"github.com/2389/demoseed/internal/records"
	"github.com/2389/demoseed/modules/core"
	"github.com/2389/demoseed/modules/demo"
)

func init() {
	core.Register(&Module{})
}

// EmployeeID returns the fixed id of the n-th employee (1-based).
func EmployeeID(n int) string {
	return fmt.Sprintf("e0000001-0000-0000-0000-%012d", n)
}

// Module seeds employees and HR paperwork.
type Module struct{}

func (m *Module) Name() string        { return "hr" }
func (m *Module) Description() string { return "Employees, coaching notes, warnings, reviews, and signatures" }

func (m *Module) Produces() []string {
	return []string{"employees", "hr_documents", "document_acknowledgments"}
}

func (m *Module) Consumes() []string { return nil }
func (m *Module) Clears() []string   { return nil }

func (m *Module) Seed(ctx context.Context, env core.Env) (core.Result, error) {
	res := core.NewResult()

	staff := employees()
	if err := env.Write(ctx, &res, "employees", records.Rows(staff), "id"); err != nil {
		return res, err
	}
	if res.Inserted["employees"] != len(staff) {
		return res, nil
	}
	byID := make(map[string]records.Employee, len(staff))
	for _, e := range staff {
		byID[e.ID] = e
	}

	docs := documents(staff)
	var acks []records.Acknowledgment
	for i := range docs {
		docs[i].ID = records.StableID("hr_document", docs[i].EmployeeID, docs[i].Title)
		docs[i].CreatedBy = demo.Doctor
		if docs[i].Acknowledged() {
			acks = append(acks, records.Acknowledgment{
				ID:         records.StableID("acknowledgment", docs[i].ID),
				DocumentID: docs[i].ID,
				EmployeeID: docs[i].EmployeeID,
				Type:       "signature",
				StepLabel:  "Final Acknowledgment",
				TypedName:  byID[docs[i].EmployeeID].Name(),
			})
		}
	}

	before := res.Inserted["hr_documents"]
	if err := env.Write(ctx, &res, "hr_documents", records.Rows(docs), "id"); err != nil {
		return res, err
	}
	if res.Inserted["hr_documents"]-before != len(docs) {
		return res, nil
	}
	if err := env.Write(ctx, &res, "document_acknowledgments", records.Rows(acks), "id"); err != nil {
		return res, err
	}
	return res, nil
}

func employees() []records.Employee {
	staff := []records.Employee{
		{FirstName: "Jessica", LastName: "Ramirez", Email: "jessica.r@akultimatedental.com", Phone: "(702) 555-0301", Role: "hygienist", HireDate: "2023-03-15"},
		{FirstName: "Tyler", LastName: "Brooks", Email: "tyler.b@akultimatedental.com", Phone: "(702) 555-0302", Role: "assistant", HireDate: "2024-01-08"},
		{FirstName: "Maria", LastName: "Santos", Email: "maria.s@akultimatedental.com", Phone: "(702) 555-0303", Role: "front_desk", HireDate: "2022-09-01"},
		{FirstName: "Brandon", LastName: "Lee", Email: "brandon.l@akultimatedental.com", Phone: "(702) 555-0304", Role: "assistant", HireDate: "2024-06-15"},
		{FirstName: "Samantha", LastName: "Wright", Email: "samantha.w@akultimatedental.com", Phone: "(702) 555-0305", Role: "office_manager", HireDate: "2021-11-01"},
	}
	for i := range staff {
		staff[i].ID = EmployeeID(i + 1)
		staff[i].Status = "active"
	}
	return staff
}

func documents(staff []records.Employee) []records.HRDocument {
	jessica, tyler, brandon := staff[0], staff[1], staff[3]
	return []records.HRDocument{
		{
			EmployeeID: tyler.ID,
			Type:       "coaching_note",
			Title:      "Coaching: Sterilization Protocol Reminder",
			Content: "On February 3, 2026, Tyler was observed not following the full instrument sterilization protocol between patients. " +
				"This was addressed immediately. Tyler acknowledged the oversight and committed to following the complete protocol going forward.\n\n" +
				"Action Required: Tyler will complete a refresher on sterilization procedures by February 14, 2026.",
			Severity: "info",
			Status:   "acknowledged",
		},
		{
			EmployeeID: brandon.ID,
			Type:       "disciplinary",
			Title:      "Written Warning: Repeated Tardiness",
			Content: "This is a formal written warning regarding repeated tardiness.\n\n" +
				"Brandon has been late on:\n" +
				"- January 15, 2026: 12 minutes late\n" +
				"- January 22, 2026: 8 minutes late\n" +
				"- January 29, 2026: 15 minutes late\n" +
				"- February 5, 2026: 20 minutes late\n\n" +
				"Continued tardiness may result in further disciplinary action up to and including termination.",
			Severity: "warning",
			Status:   "pending_signature",
		},
		{
			EmployeeID: jessica.ID,
			Type:       "performance_review",
			Title:      "Annual Performance Review - 2025",
			Content: "Employee: Jessica Ramirez\nRole: Hygienist\nOverall Rating: Exceeds Expectations\n\n" +
				"Strengths:\n- Patient satisfaction scores consistently above 95%\n- Completed additional CE credits\n- Outstanding team collaboration\n\n" +
				"Goals for 2026:\n- Mentor new hygienist during onboarding\n- Pursue advanced periodontal certification",
			Severity: "info",
			Status:   "acknowledged",
		},
	}
}
