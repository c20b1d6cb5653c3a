package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// DefaultSlowQueryMs is the default threshold for slow query warnings.
const DefaultSlowQueryMs = 50

// TimedDB wraps a *sql.DB to log slow queries via slog.
// Satisfies the SQLDB interface so it can be passed to any store constructor.
type TimedDB struct {
	db        *sql.DB
	threshold time.Duration
}

// Compile-time check that *TimedDB satisfies SQLDB.
var _ SQLDB = (*TimedDB)(nil)

// NewTimedDB wraps a *sql.DB with slow-query logging.
// The threshold is BIOSFERA_SLOW_QUERY_MS when set, DefaultSlowQueryMs otherwise.
// PRE: db is a valid database connection
func NewTimedDB(db *sql.DB) *TimedDB {
	ms := DefaultSlowQueryMs
	if v := os.Getenv("BIOSFERA_SLOW_QUERY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ms = n
		}
	}
	return &TimedDB{db: db, threshold: time.Duration(ms) * time.Millisecond}
}

// ExecContext executes a statement, logging it if slow.
func (t *TimedDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := t.db.ExecContext(ctx, query, args...)
	t.observe(query, time.Since(start))
	return res, err
}

// QueryContext runs a query, logging it if slow.
func (t *TimedDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.db.QueryContext(ctx, query, args...)
	t.observe(query, time.Since(start))
	return rows, err
}

// QueryRowContext runs a single-row query, logging it if slow.
func (t *TimedDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := t.db.QueryRowContext(ctx, query, args...)
	t.observe(query, time.Since(start))
	return row
}

func (t *TimedDB) observe(query string, elapsed time.Duration) {
	if elapsed >= t.threshold {
		slog.Warn("slow_query", "query", query, "elapsed_ms", elapsed.Milliseconds())
	}
}
