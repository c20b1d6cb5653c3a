package projections

import (
	"context"
	"errors"
	"testing"
	"time"

	"biosfera/internal/clock"
	domain "biosfera/internal/domain/event"
)

// mockEventStore records the cutoff it was asked for.
type mockEventStore struct {
	gotToday string
	events   []domain.Event
	listErr  error
}

func (m *mockEventStore) ListUpcoming(ctx context.Context, today string) ([]domain.Event, error) {
	m.gotToday = today
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
	m.events = append(m.events, e)
	return e, nil
}

func (m *mockEventStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	return false, nil
}

// TestGetAgenda_UsesInjectedClock verifies the cutoff comes from the injected
// now, keeping listing deterministic.
func TestGetAgenda_UsesInjectedClock(t *testing.T) {
	store := &mockEventStore{events: []domain.Event{
		{ID: "past", Date: "2025-06-01"},
		{ID: "future", Date: "2025-06-10"},
	}}
	deps := AgendaDeps{
		EventStore: store,
		Clock:      clock.NewFixed(time.Date(2025, 6, 5, 13, 45, 0, 0, time.UTC)),
	}

	events, err := GetAgenda(context.Background(), deps)
	if err != nil {
		t.Fatalf("GetAgenda failed: %v", err)
	}
	if store.gotToday != "2025-06-05" {
		t.Errorf("today cutoff = %q, want 2025-06-05", store.gotToday)
	}
	if len(events) != 1 || events[0].ID != "future" {
		t.Errorf("events = %+v, want only the 2025-06-10 event", events)
	}
}

// TestGetAgenda_StoreFailure verifies store errors propagate.
func TestGetAgenda_StoreFailure(t *testing.T) {
	store := &mockEventStore{listErr: errors.New("db unreachable")}
	deps := AgendaDeps{EventStore: store, Clock: clock.NewFixed(time.Now())}

	if _, err := GetAgenda(context.Background(), deps); err == nil {
		t.Fatal("expected error")
	}
}
