package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	eventStore "biosfera/internal/adapters/storage/event"
	domain "biosfera/internal/domain/event"
)

// Generic store-failure reasons returned to clients. Full detail is logged
// server-side only.
var (
	ErrSaveFailed   = errors.New("Error guardando evento")
	ErrListFailed   = errors.New("Error consultando eventos")
	ErrDeleteFailed = errors.New("Error eliminando evento")
)

// CreateEventInput carries the raw creation payload.
type CreateEventInput struct {
	Status    string
	Type      string
	Date      string
	StartTime string
	Title     string
	Venue     string
	City      string
}

// CreateEventDeps holds dependencies for ExecuteCreateEvent.
type CreateEventDeps struct {
	EventStore eventStore.Store
}

// ExecuteCreateEvent validates the payload and persists the event.
// POST: on success the returned Event is the persisted row with its
// store-assigned id; on rejection the error is a domain.ValidationError
func ExecuteCreateEvent(ctx context.Context, input CreateEventInput, deps CreateEventDeps) (domain.Event, error) {
	normalized, err := domain.CreateInput{
		Status:    input.Status,
		Type:      input.Type,
		Date:      input.Date,
		StartTime: input.StartTime,
		Title:     input.Title,
		Venue:     input.Venue,
		City:      input.City,
	}.Normalize()
	if err != nil {
		return domain.Event{}, err
	}

	created, err := deps.EventStore.Insert(ctx, normalized)
	if err != nil {
		slog.Error("event_save_failed", "error", err, "type", normalized.Type, "date", normalized.Date)
		return domain.Event{}, ErrSaveFailed
	}

	slog.Info("event_created", "event_id", created.ID, "type", created.Type, "date", created.Date, "city", created.City)
	return created, nil
}
