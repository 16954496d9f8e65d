// ABOUTME: In-memory Store used for dry runs and tests.
// ABOUTME: Applies the same filter and upsert semantics as the SQL store without a database.

package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Memory keeps rows per table in insertion order. Values are normalized the
// same way the SQL store binds them, so nil pointers read back as NULL and
// slices read back as JSON text.
type Memory struct {
	mu     sync.Mutex
	tables map[string][]Row
	runs   []*SeedRun

	// Fail, when set, is consulted before every write. A non-nil error fails
	// that call without storing anything.
	Fail func(table string, rows []Row) error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tables: map[string][]Row{}}
}

func (m *Memory) Insert(ctx context.Context, table string, rows []Row) (int, error) {
	return m.write(ctx, table, rows, "")
}

func (m *Memory) Upsert(ctx context.Context, table string, rows []Row, conflictKey string) (int, error) {
	if conflictKey == "" {
		return 0, fmt.Errorf("upsert into %s: conflict key is required", table)
	}
	return m.write(ctx, table, rows, conflictKey)
}

func (m *Memory) write(ctx context.Context, table string, rows []Row, conflictKey string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := checkIdent("table", table); err != nil {
		return 0, err
	}
	if m.Fail != nil {
		if err := m.Fail(table, rows); err != nil {
			return 0, err
		}
	}

	normalized := make([]Row, 0, len(rows))
	for _, r := range rows {
		n, err := normalizeRow(r)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", table, err)
		}
		normalized = append(normalized, n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tables == nil {
		m.tables = map[string][]Row{}
	}
	existing := m.tables[table]
	for _, r := range normalized {
		if conflictKey != "" {
			if i := indexOf(existing, conflictKey, r[conflictKey]); i >= 0 {
				merged := make(Row, len(existing[i])+len(r))
				for k, v := range existing[i] {
					merged[k] = v
				}
				for k, v := range r {
					merged[k] = v
				}
				existing[i] = merged
				continue
			}
		}
		existing = append(existing, r)
	}
	m.tables[table] = existing
	return len(rows), nil
}

func (m *Memory) Delete(ctx context.Context, table string, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := checkIdent("table", table); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.tables[table][:0:0]
	var removed int64
	for _, r := range m.tables[table] {
		ok, err := matches(r, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if m.tables != nil {
		m.tables[table] = kept
	}
	return removed, nil
}

func (m *Memory) Select(ctx context.Context, table string, columns []string, filter Filter, limit int) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("select from %s: no columns", table)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Row
	for _, r := range m.tables[table] {
		ok, err := matches(r, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		sel := make(Row, len(columns))
		for _, c := range columns {
			sel[c] = r[c]
		}
		out = append(out, sel)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Rows returns a copy of every row currently stored in table.
func (m *Memory) Rows(table string) []Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Row, len(m.tables[table]))
	copy(out, m.tables[table])
	return out
}

// Count returns the number of rows in table.
func (m *Memory) Count(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tables[table])
}

func (m *Memory) RecordRun(ctx context.Context, run *SeedRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *run
	m.runs = append(m.runs, &cp)
	return nil
}

func (m *Memory) ListRuns(ctx context.Context, q RunQuery) ([]*SeedRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*SeedRun
	for _, r := range m.runs {
		if q.Module == "" || r.Module == q.Module {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func normalizeRow(r Row) (Row, error) {
	out := make(Row, len(r))
	for k, v := range r {
		if err := checkIdent("column", k); err != nil {
			return nil, err
		}
		b, err := bindValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = b
	}
	return out, nil
}

func indexOf(rows []Row, column string, value any) int {
	if value == nil {
		return -1
	}
	for i, r := range rows {
		if reflect.DeepEqual(r[column], value) {
			return i
		}
	}
	return -1
}

// matches applies SQL comparison semantics: a NULL column never satisfies
// = or <>.
func matches(r Row, filter Filter) (bool, error) {
	for _, c := range filter {
		v := r[c.Column]
		switch c.Op {
		case OpEq, OpNeq:
			want, err := bindValue(c.Value)
			if err != nil {
				return false, err
			}
			if v == nil || want == nil {
				return false, nil
			}
			eq := reflect.DeepEqual(v, want)
			if (c.Op == OpEq) != eq {
				return false, nil
			}
		case OpIsNull:
			if v != nil {
				return false, nil
			}
		case OpNotNull:
			if v == nil {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unknown filter op %d", c.Op)
		}
	}
	return true, nil
}
