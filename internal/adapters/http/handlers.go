package web

import (
	"encoding/json"
	"net/http"

	domain "biosfera/internal/domain/event"
)

// eventDTO is the wire shape of an Event.
type eventDTO struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
}

func toEventDTO(e domain.Event) eventDTO {
	return eventDTO{
		ID:        e.ID,
		Status:    e.Status,
		Type:      e.Type,
		Date:      e.Date,
		StartTime: e.StartTime,
		Title:     e.Title,
		Venue:     e.Venue,
		City:      e.City,
	}
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the standard failure envelope. msg is the short
// user-facing reason; internal detail is never exposed here.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}

// decodeBody decodes a JSON request body into dst. A malformed or absent body
// leaves dst zero-valued so it falls through to validation instead of
// crashing the request.
func decodeBody(r *http.Request, dst any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(dst)
}
