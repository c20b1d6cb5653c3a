package orchestrators

import (
	"context"
	"errors"
	"testing"

	domain "biosfera/internal/domain/event"
)

// TestExecuteDeleteEvent_Success verifies delete by id, including id trimming.
func TestExecuteDeleteEvent_Success(t *testing.T) {
	store := &mockEventStore{events: []domain.Event{{ID: "e1"}}}

	id, err := ExecuteDeleteEvent(context.Background(), " e1 ", DeleteEventDeps{EventStore: store})
	if err != nil {
		t.Fatalf("ExecuteDeleteEvent failed: %v", err)
	}
	if id != "e1" {
		t.Errorf("id = %q, want e1", id)
	}
	if len(store.events) != 0 {
		t.Error("event not removed")
	}
}

// TestExecuteDeleteEvent_ThenNotFound verifies delete then re-delete yields
// success then not-found.
func TestExecuteDeleteEvent_ThenNotFound(t *testing.T) {
	store := &mockEventStore{events: []domain.Event{{ID: "e1"}}}
	deps := DeleteEventDeps{EventStore: store}

	if _, err := ExecuteDeleteEvent(context.Background(), "e1", deps); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	_, err := ExecuteDeleteEvent(context.Background(), "e1", deps)
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrEventNotFound)
	}
}

// TestExecuteDeleteEvent_IDRequired verifies blank ids are rejected before
// the store is consulted.
func TestExecuteDeleteEvent_IDRequired(t *testing.T) {
	store := &mockEventStore{deleteErr: errors.New("must not be called")}
	_, err := ExecuteDeleteEvent(context.Background(), "   ", DeleteEventDeps{EventStore: store})
	if !errors.Is(err, ErrIDRequired) {
		t.Fatalf("err = %v, want %v", err, ErrIDRequired)
	}
}

// TestExecuteDeleteEvent_StoreFailure verifies store errors collapse to the
// generic delete-failed reason.
func TestExecuteDeleteEvent_StoreFailure(t *testing.T) {
	store := &mockEventStore{deleteErr: errors.New("disk on fire")}
	_, err := ExecuteDeleteEvent(context.Background(), "e1", DeleteEventDeps{EventStore: store})
	if !errors.Is(err, ErrDeleteFailed) {
		t.Fatalf("err = %v, want %v", err, ErrDeleteFailed)
	}
}
