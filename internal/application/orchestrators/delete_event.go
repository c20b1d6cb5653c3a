package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	eventStore "biosfera/internal/adapters/storage/event"
)

var (
	ErrIDRequired    = errors.New("ID requerido")
	ErrEventNotFound = errors.New("Evento no encontrado")
)

// DeleteEventDeps holds dependencies for ExecuteDeleteEvent.
type DeleteEventDeps struct {
	EventStore eventStore.Store
}

// ExecuteDeleteEvent removes the event with the given id.
// Deleting an id that does not exist is reported as ErrEventNotFound, not a
// silent no-op; a concurrent delete of the same id resolves the same way.
// POST: on success returns the trimmed id that was removed
func ExecuteDeleteEvent(ctx context.Context, id string, deps DeleteEventDeps) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrIDRequired
	}

	removed, err := deps.EventStore.DeleteByID(ctx, id)
	if err != nil {
		slog.Error("event_delete_failed", "error", err, "event_id", id)
		return "", ErrDeleteFailed
	}
	if !removed {
		return "", ErrEventNotFound
	}

	slog.Info("event_deleted", "event_id", id)
	return id, nil
}
