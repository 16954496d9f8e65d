// ABOUTME: Storage contract used by the seeding engine.
// ABOUTME: Defines rows, filter conditions, and the insert/upsert/delete/select primitives.

package store

import (
	"context"
	"fmt"
	"regexp"
	"sort"
)

// SentinelID is the id that a soft clear never deletes. Clearing a table means
// deleting every row whose id differs from it.
const SentinelID = "00000000-0000-0000-0000-000000000000"

// Row is one record keyed by column name.
type Row map[string]any

// Columns returns the row's column names in sorted order.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for c := range r {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// Op is a filter comparison.
type Op int

const (
	OpEq Op = iota
	OpNeq
	OpIsNull
	OpNotNull
)

// Condition compares one column. Value is ignored for the null checks.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Filter is a conjunction of conditions. An empty filter matches every row.
type Filter []Condition

func Eq(column string, value any) Condition  { return Condition{Column: column, Op: OpEq, Value: value} }
func Neq(column string, value any) Condition { return Condition{Column: column, Op: OpNeq, Value: value} }
func IsNull(column string) Condition         { return Condition{Column: column, Op: OpIsNull} }
func NotNull(column string) Condition        { return Condition{Column: column, Op: OpNotNull} }

// SoftClear is the filter used to clear a table: every row except the sentinel.
func SoftClear(extra ...Condition) Filter {
	return append(Filter{Neq("id", SentinelID)}, extra...)
}

// Store is the set of primitives the seeding engine persists through.
// Insert and Upsert return the number of rows written; Delete returns the
// number of rows removed.
type Store interface {
	Insert(ctx context.Context, table string, rows []Row) (int, error)
	Upsert(ctx context.Context, table string, rows []Row, conflictKey string) (int, error)
	Delete(ctx context.Context, table string, filter Filter) (int64, error)
	Select(ctx context.Context, table string, columns []string, filter Filter, limit int) ([]Row, error)
}

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// checkIdent rejects anything that is not a plain lower-case identifier, so
// table and column names can be interpolated into SQL.
func checkIdent(kind, name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("invalid %s name %q", kind, name)
	}
	return nil
}

// unionColumns returns the sorted union of every row's columns.
func unionColumns(rows []Row) []string {
	seen := map[string]bool{}
	var cols []string
	for _, r := range rows {
		for c := range r {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
