package event

import (
	"context"

	domain "biosfera/internal/domain/event"
)

// Store persists Event state.
type Store interface {
	// ListUpcoming returns events with date >= today, ordered by (date, start_time).
	ListUpcoming(ctx context.Context, today string) ([]domain.Event, error)
	// Insert persists a new event, assigns its id and returns the persisted row.
	Insert(ctx context.Context, e domain.Event) (domain.Event, error)
	// DeleteByID removes the event and reports whether a row was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
