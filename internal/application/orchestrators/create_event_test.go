package orchestrators

import (
	"context"
	"errors"
	"testing"

	domain "biosfera/internal/domain/event"
)

// mockEventStore is an in-memory Store for orchestrator tests.
type mockEventStore struct {
	events    []domain.Event
	nextID    int
	insertErr error
	deleteErr error
	listErr   error
}

func (m *mockEventStore) ListUpcoming(ctx context.Context, today string) ([]domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Event
	for _, e := range m.events {
		if e.Date >= today {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEventStore) Insert(ctx context.Context, e domain.Event) (domain.Event, error) {
	if m.insertErr != nil {
		return domain.Event{}, m.insertErr
	}
	m.nextID++
	e.ID = string(rune('0' + m.nextID))
	m.events = append(m.events, e)
	return e, nil
}

func (m *mockEventStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func validCreateInput() CreateEventInput {
	return CreateEventInput{
		Status:    domain.StatusReserved,
		Type:      domain.TypeClub,
		Date:      "2025-06-01",
		StartTime: "21:00",
		Title:     "Deep Vibes",
		Venue:     "Warehouse 44",
		City:      "CDMX",
	}
}

// TestExecuteCreateEvent_Success verifies validation, persistence and the
// store-assigned id.
func TestExecuteCreateEvent_Success(t *testing.T) {
	store := &mockEventStore{}
	created, err := ExecuteCreateEvent(context.Background(), validCreateInput(), CreateEventDeps{EventStore: store})
	if err != nil {
		t.Fatalf("ExecuteCreateEvent failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected store-assigned id")
	}
	if len(store.events) != 1 {
		t.Fatalf("expected 1 persisted event, got %d", len(store.events))
	}
}

// TestExecuteCreateEvent_ValidationShortCircuits verifies the store is not
// touched when validation rejects.
func TestExecuteCreateEvent_ValidationShortCircuits(t *testing.T) {
	store := &mockEventStore{insertErr: errors.New("must not be called")}
	input := validCreateInput()
	input.Title = "  "

	_, err := ExecuteCreateEvent(context.Background(), input, CreateEventDeps{EventStore: store})
	if !errors.Is(err, domain.ErrTitleRequired) {
		t.Fatalf("err = %v, want %v", err, domain.ErrTitleRequired)
	}
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err %v is not a ValidationError", err)
	}
}

// TestExecuteCreateEvent_StoreFailure verifies store errors collapse to the
// generic save-failed reason.
func TestExecuteCreateEvent_StoreFailure(t *testing.T) {
	store := &mockEventStore{insertErr: errors.New("disk on fire")}
	_, err := ExecuteCreateEvent(context.Background(), validCreateInput(), CreateEventDeps{EventStore: store})
	if !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("err = %v, want %v", err, ErrSaveFailed)
	}
}
