// ABOUTME: database/sql implementation of Store for SQLite and Postgres.
// ABOUTME: Handles connection setup, pragmas, schema migrations, and statement building per dialect.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect names accepted by Open.
const (
	SQLite   = "sqlite3"
	Postgres = "postgres"
)

// SQL is a Store backed by a database/sql connection pool.
type SQL struct {
	db      *sql.DB
	dialect string
}

// New opens (or creates) a SQLite database file and migrates it.
func New(dbPath string) (*SQL, error) {
	return Open(SQLite, dbPath)
}

// NewPostgres connects to a Postgres database URL and migrates it.
func NewPostgres(url string) (*SQL, error) {
	return Open(Postgres, url)
}

// Open connects using the given dialect and data source and runs migrations.
func Open(dialect, dsn string) (*SQL, error) {
	if dialect != SQLite && dialect != Postgres {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(0)

	if dialect == SQLite {
		pragmas := []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA busy_timeout = 5000",
		}
		for _, pragma := range pragmas {
			if _, err := db.Exec(pragma); err != nil {
				db.Close()
				return nil, err
			}
		}
	}

	s := &SQL{db: db, dialect: dialect}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// wrap builds a SQL store around an existing connection without migrating.
func wrap(db *sql.DB, dialect string) *SQL {
	return &SQL{db: db, dialect: dialect}
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// DB returns the underlying connection.
func (s *SQL) DB() *sql.DB {
	return s.db
}

// Dialect reports which SQL dialect statements are built for.
func (s *SQL) Dialect() string {
	return s.dialect
}

// placeholder returns the n-th (1-based) bind parameter.
func (s *SQL) placeholder(n int) string {
	if s.dialect == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// rebind rewrites ? placeholders for the active dialect.
func (s *SQL) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQL) Insert(ctx context.Context, table string, rows []Row) (int, error) {
	return s.write(ctx, table, rows, "")
}

func (s *SQL) Upsert(ctx context.Context, table string, rows []Row, conflictKey string) (int, error) {
	if conflictKey == "" {
		return 0, fmt.Errorf("upsert into %s: conflict key is required", table)
	}
	return s.write(ctx, table, rows, conflictKey)
}

func (s *SQL) write(ctx context.Context, table string, rows []Row, conflictKey string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	query, args, err := s.buildInsert(table, rows, conflictKey)
	if err != nil {
		return 0, err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// buildInsert renders one multi-row INSERT. Columns are the sorted union of
// all rows' keys; a row missing a column binds NULL. With a conflict key the
// statement updates every other column from the excluded row.
func (s *SQL) buildInsert(table string, rows []Row, conflictKey string) (string, []any, error) {
	if err := checkIdent("table", table); err != nil {
		return "", nil, err
	}
	cols := unionColumns(rows)
	for _, c := range cols {
		if err := checkIdent("column", c); err != nil {
			return "", nil, err
		}
	}
	if conflictKey != "" {
		if err := checkIdent("column", conflictKey); err != nil {
			return "", nil, err
		}
	}

	var b strings.Builder
	args := make([]any, 0, len(rows)*len(cols))
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", table, strings.Join(cols, ", "))
	n := 0
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for j, c := range cols {
			if j > 0 {
				b.WriteString(", ")
			}
			n++
			b.WriteString(s.placeholder(n))
			v, err := bindValue(r[c])
			if err != nil {
				return "", nil, fmt.Errorf("%s.%s: %w", table, c, err)
			}
			args = append(args, v)
		}
		b.WriteString(")")
	}

	if conflictKey != "" {
		var sets []string
		for _, c := range cols {
			if c != conflictKey {
				sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
			}
		}
		if len(sets) == 0 {
			fmt.Fprintf(&b, " ON CONFLICT (%s) DO NOTHING", conflictKey)
		} else {
			fmt.Fprintf(&b, " ON CONFLICT (%s) DO UPDATE SET %s", conflictKey, strings.Join(sets, ", "))
		}
	}
	return b.String(), args, nil
}

func (s *SQL) Delete(ctx context.Context, table string, filter Filter) (int64, error) {
	if err := checkIdent("table", table); err != nil {
		return 0, err
	}
	where, args, err := s.buildWhere(filter, 0)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+where, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Select(ctx context.Context, table string, columns []string, filter Filter, limit int) ([]Row, error) {
	if err := checkIdent("table", table); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("select from %s: no columns", table)
	}
	for _, c := range columns {
		if err := checkIdent("column", c); err != nil {
			return nil, err
		}
	}
	where, args, err := s.buildWhere(filter, 0)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s", strings.Join(columns, ", "), table, where, columns[0])
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		vals := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		r := make(Row, len(columns))
		for i, c := range columns {
			if b, ok := vals[i].([]byte); ok {
				r[c] = string(b)
			} else {
				r[c] = vals[i]
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// buildWhere renders a filter as a WHERE clause. offset is the number of bind
// parameters already used by the statement.
func (s *SQL) buildWhere(filter Filter, offset int) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	parts := make([]string, 0, len(filter))
	var args []any
	for _, c := range filter {
		if err := checkIdent("column", c.Column); err != nil {
			return "", nil, err
		}
		switch c.Op {
		case OpEq, OpNeq:
			op := "="
			if c.Op == OpNeq {
				op = "<>"
			}
			v, err := bindValue(c.Value)
			if err != nil {
				return "", nil, err
			}
			args = append(args, v)
			parts = append(parts, fmt.Sprintf("%s %s %s", c.Column, op, s.placeholder(offset+len(args))))
		case OpIsNull:
			parts = append(parts, c.Column+" IS NULL")
		case OpNotNull:
			parts = append(parts, c.Column+" IS NOT NULL")
		default:
			return "", nil, fmt.Errorf("unknown filter op %d", c.Op)
		}
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

// bindValue converts a row value into something database/sql can bind.
// Slices, maps and structs other than time.Time are stored as JSON text.
func bindValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, int, int32, int64, float64, []byte, time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		return *t, nil
	case *string:
		if t == nil {
			return nil, nil
		}
		return *t, nil
	case *int:
		if t == nil {
			return nil, nil
		}
		return *t, nil
	case *float64:
		if t == nil {
			return nil, nil
		}
		return *t, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return bindValue(rv.Elem().Interface())
	}
	return v, nil
}

// migrate runs all pending migrations
func (s *SQL) migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			description TEXT
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	log.Printf("Database schema version: %d, target version: %d", current, CurrentSchemaVersion)

	for _, m := range migrations {
		if current >= m.version {
			continue
		}
		for _, stmt := range m.statements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("migration v%d failed: %w", m.version, err)
			}
		}
		if _, err := s.db.Exec(s.rebind(`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`), m.version, m.description); err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.version, err)
		}
		log.Printf("Applied migration v%d: %s", m.version, m.description)
	}
	return nil
}
