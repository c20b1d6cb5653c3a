package web

import (
	"errors"
	"net/http"

	"biosfera/internal/adapters/http/middleware"
	"biosfera/internal/application/orchestrators"
	"biosfera/internal/application/projections"
	domain "biosfera/internal/domain/event"
)

// handleEvents handles GET (public agenda), POST (create) and DELETE for /events.
// Creation and deletion require a backstage session; listing is public.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		handleListEvents(w, r)
	case http.MethodPost, http.MethodDelete:
		if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "No autorizado")
			return
		}
		if r.Method == http.MethodPost {
			handleCreateEvent(w, r)
		} else {
			handleDeleteEvent(w, r)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func handleListEvents(w http.ResponseWriter, r *http.Request) {
	deps := projections.AgendaDeps{EventStore: stores.EventStore, Clock: agendaClock}
	events, err := projections.GetAgenda(r.Context(), deps)
	if err != nil {
		writeError(w, http.StatusInternalServerError, orchestrators.ErrListFailed.Error())
		return
	}

	dtos := make([]eventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toEventDTO(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "events": dtos})
}

type createEventRequest struct {
	Status    string `json:"status"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
}

func handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	decodeBody(r, &req)

	input := orchestrators.CreateEventInput{
		Status:    req.Status,
		Type:      req.Type,
		Date:      req.Date,
		StartTime: req.StartTime,
		Title:     req.Title,
		Venue:     req.Venue,
		City:      req.City,
	}
	created, err := orchestrators.ExecuteCreateEvent(r.Context(), input, orchestrators.CreateEventDeps{EventStore: stores.EventStore})
	if err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, orchestrators.ErrSaveFailed.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "event": toEventDTO(created)})
}

type deleteEventRequest struct {
	ID string `json:"id"`
}

func handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req deleteEventRequest
	decodeBody(r, &req)

	id, err := orchestrators.ExecuteDeleteEvent(r.Context(), req.ID, orchestrators.DeleteEventDeps{EventStore: stores.EventStore})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrIDRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orchestrators.ErrEventNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, orchestrators.ErrDeleteFailed.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}
