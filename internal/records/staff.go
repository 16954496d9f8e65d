// ABOUTME: Staff, HR document, and license records.
// ABOUTME: NewLicense derives status and days until expiry from the expiration date.

package records

import (
	"math"
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/store"
)

// Employee is a member of the practice staff.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
	HireDate  string
	Status    string
}

// Name is "First Last".
func (e Employee) Name() string { return e.FirstName + " " + e.LastName }

func (Employee) Table() string { return "employees" }

func (e Employee) Row() store.Row {
	return store.Row{
		"id":         e.ID,
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"email":      e.Email,
		"phone":      e.Phone,
		"role":       e.Role,
		"hire_date":  e.HireDate,
		"status":     e.Status,
	}
}

// HRDocument is a coaching note, warning, or review filed for an employee.
type HRDocument struct {
	ID         string
	EmployeeID string
	Type       string
	Title      string
	Content    string
	Severity   string
	Status     string
	CreatedBy  string
}

// Acknowledged reports whether the employee has signed the document.
func (d HRDocument) Acknowledged() bool { return d.Status == "acknowledged" }

func (HRDocument) Table() string { return "hr_documents" }

func (d HRDocument) Row() store.Row {
	return store.Row{
		"id":          d.ID,
		"employee_id": d.EmployeeID,
		"type":        d.Type,
		"title":       d.Title,
		"content":     d.Content,
		"severity":    d.Severity,
		"status":      d.Status,
		"created_by":  d.CreatedBy,
	}
}

// Acknowledgment is an employee's signature on an HR document.
type Acknowledgment struct {
	ID         string
	DocumentID string
	EmployeeID string
	Type       string
	StepLabel  string
	TypedName  string
}

func (Acknowledgment) Table() string { return "document_acknowledgments" }

func (a Acknowledgment) Row() store.Row {
	return store.Row{
		"id":                  a.ID,
		"document_id":         a.DocumentID,
		"employee_id":         a.EmployeeID,
		"acknowledgment_type": a.Type,
		"step_label":          a.StepLabel,
		"typed_name":          a.TypedName,
	}
}

// License statuses.
const (
	LicenseCurrent       = "current"
	LicenseExpiringSoon  = "expiring_soon"
	LicenseExpired       = "expired"
	LicenseNotApplicable = "not_applicable"
)

// ExpiringWindowDays is how close to expiry a license counts as expiring soon.
const ExpiringWindowDays = 90

// LicenseInput describes a credential as it appears on paper.
type LicenseInput struct {
	HolderType     string
	HolderName     string
	LicenseType    string
	LicenseNumber  string
	IssuedBy       string
	IssueDate      string
	ExpirationDate string
	Category       string
}

// License is a credential with its status computed against a reference time.
type License struct {
	ID string
	LicenseInput
	Status          string
	DaysUntilExpiry *int
}

// NewLicense computes days until expiry from noon on the expiration date,
// floored, and maps it to a status. A license without an expiration date is
// not applicable.
func NewLicense(in LicenseInput, now time.Time) (License, error) {
	l := License{ID: NewID(), LicenseInput: in, Status: LicenseNotApplicable}
	if in.ExpirationDate == "" {
		return l, nil
	}
	exp, err := time.ParseInLocation(DateLayout, in.ExpirationDate, now.Location())
	if err != nil {
		return License{}, seederrors.Invalid("expiration_date", "%q is not a date", in.ExpirationDate)
	}
	noon := exp.Add(12 * time.Hour)
	days := int(math.Floor(noon.Sub(now).Hours() / 24))
	l.DaysUntilExpiry = &days
	switch {
	case days < 0:
		l.Status = LicenseExpired
	case days <= ExpiringWindowDays:
		l.Status = LicenseExpiringSoon
	default:
		l.Status = LicenseCurrent
	}
	return l, nil
}

func (License) Table() string { return "licenses" }

func (l License) Row() store.Row {
	var days any
	if l.DaysUntilExpiry != nil {
		days = *l.DaysUntilExpiry
	}
	return store.Row{
		"id":                l.ID,
		"holder_type":       l.HolderType,
		"holder_name":       l.HolderName,
		"license_type":      l.LicenseType,
		"license_number":    l.LicenseNumber,
		"issued_by":         l.IssuedBy,
		"issue_date":        OptString(l.IssueDate),
		"expiration_date":   OptString(l.ExpirationDate),
		"category":          l.Category,
		"status":            l.Status,
		"days_until_expiry": days,
		"is_required":       true,
	}
}
