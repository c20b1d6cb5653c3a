package projections

import (
	"context"
	"log/slog"

	eventStore "biosfera/internal/adapters/storage/event"
	"biosfera/internal/clock"
	domain "biosfera/internal/domain/event"
)

// AgendaDeps holds dependencies for GetAgenda.
type AgendaDeps struct {
	EventStore eventStore.Store
	Clock      clock.Clock
}

// GetAgenda returns the public agenda: events on or after today in the site's
// reference zone, ordered by (date, start time) ascending.
// PRE: deps.Clock yields time in the reference zone
// POST: never returns events dated strictly before today
func GetAgenda(ctx context.Context, deps AgendaDeps) ([]domain.Event, error) {
	today := deps.Clock.Now().Format("2006-01-02")
	events, err := deps.EventStore.ListUpcoming(ctx, today)
	if err != nil {
		slog.Error("agenda_list_failed", "error", err, "today", today)
		return nil, err
	}
	return events, nil
}
