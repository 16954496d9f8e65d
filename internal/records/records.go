// ABOUTME: Typed synthetic records shared by the seeding modules.
// ABOUTME: Each record knows its table and renders itself as a store row.

package records

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2389/demoseed/internal/store"
)

// Record is any value that can be persisted as one row.
type Record interface {
	Table() string
	Row() store.Row
}

// Rows renders a slice of records.
func Rows[T Record](recs []T) []store.Row {
	out := make([]store.Row, len(recs))
	for i, r := range recs {
		out[i] = r.Row()
	}
	return out
}

// NewID returns a random primary key.
func NewID() string {
	return uuid.NewString()
}

var stableNamespace = uuid.MustParse("6f1d7c1e-2b1a-4c55-9a57-7c0f5d1a3e21")

// StableID derives a deterministic primary key from natural-key parts, so that
// reseeding the same entity upserts instead of duplicating it.
func StableID(parts ...string) string {
	return uuid.NewSHA1(stableNamespace, []byte(strings.Join(parts, "\x1f"))).String()
}

// DateLayout is the storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date formats t as a calendar date.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// OptDate formats a nullable date.
func OptDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return Date(*t)
}

// OptTime returns a nullable UTC timestamp.
func OptTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// OptString returns nil for the empty string.
func OptString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Cents is a money amount in integer cents.
type Cents int64

// ToCents rounds a dollar amount to the nearest cent.
func ToCents(dollars float64) Cents {
	return Cents(math.Round(dollars * 100))
}

// Dollars converts back to a float for storage.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}
