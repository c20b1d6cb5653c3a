package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"biosfera/internal/adapters/storage"
	domain "biosfera/internal/domain/event"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema applied
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEvent maps one row to the Event shape. Date and start_time are scanned
// loosely and normalized here so every read path produces the same canonical
// YYYY-MM-DD / HH:MM forms regardless of how the driver surfaces them.
func scanEvent(s scanner) (domain.Event, error) {
	var e domain.Event
	var date, startTime any
	if err := s.Scan(&e.ID, &e.Status, &e.Type, &date, &startTime, &e.Title, &e.Venue, &e.City); err != nil {
		return domain.Event{}, err
	}
	e.Date = domain.NormalizeDate(date)
	e.StartTime = domain.NormalizeStartTime(startTime)
	return e, nil
}

// ListUpcoming returns events on or after today, ordered by date then start time.
// PRE: today is a YYYY-MM-DD string in the site's reference zone
func (s *SQLiteStore) ListUpcoming(ctx context.Context, today string) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, status, type, date, start_time, title, venue, city
		 FROM events
		 WHERE date >= ?
		 ORDER BY date ASC, start_time ASC`, today,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Insert persists a new event. The store assigns the id, exactly once.
// POST: the returned Event is the persisted row, round-tripped through the
// same row mapping used by ListUpcoming
func (s *SQLiteStore) Insert(ctx context.Context, e domain.Event) (domain.Event, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, status, type, date, start_time, title, venue, city, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.Status, e.Type, e.Date, e.StartTime, e.Title, e.Venue, e.City,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return domain.Event{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, status, type, date, start_time, title, venue, city
		 FROM events WHERE id = ?`, id,
	)
	return scanEvent(row)
}

// DeleteByID removes the event with the given id.
// POST: returns true only if a row was actually removed
func (s *SQLiteStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
