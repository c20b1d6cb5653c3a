package event

import (
	"strings"
	"time"
)

// Status constants.
const (
	StatusReserved  = "Reserved"
	StatusTentative = "Tentative"
)

// Type constants. Type drives which other fields are mandatory.
const (
	TypeClub     = "Club"
	TypeFestival = "Festival"
	TypePrivate  = "Private"
)

// PrivateTitle is the placeholder title forced onto private events. Private
// bookings never expose the client's name or venue on the public agenda.
const PrivateTitle = "Evento Privado"

// Event is a bookable calendar entry as persisted and listed.
// INVARIANT: for TypePrivate, Title == PrivateTitle and Venue == "".
// INVARIANT: Date is YYYY-MM-DD and StartTime is HH:MM after row mapping.
type Event struct {
	ID        string
	Status    string
	Type      string
	Date      string
	StartTime string
	Title     string
	Venue     string
	City      string
}

// ValidationError is a user-facing rejection reason. The messages are the
// site's Spanish copy and go to the client verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Rejection reasons, one per rule, first failure wins.
const (
	ErrInvalidStatus = ValidationError("Estatus inválido")
	ErrInvalidType   = ValidationError("Tipo inválido")
	ErrDateRequired  = ValidationError("Fecha requerida")
	ErrTimeRequired  = ValidationError("Hora requerida")
	ErrCityRequired  = ValidationError("Ciudad requerida")
	ErrTitleRequired = ValidationError("Título requerido")
	ErrVenueRequired = ValidationError("Lugar requerido")
)

// CreateInput is the raw creation payload before validation.
type CreateInput struct {
	Status    string
	Type      string
	Date      string
	StartTime string
	Title     string
	Venue     string
	City      string
}

// Normalize validates the payload and returns the record ready to persist.
// Enum membership is checked first since Type steers the remaining rules;
// after that the rules run in order and the first violation is returned.
// POST: on success the Event satisfies the Private-forcing invariant and
// Title, Venue, City are trimmed.
func (in CreateInput) Normalize() (Event, error) {
	if in.Status != StatusReserved && in.Status != StatusTentative {
		return Event{}, ErrInvalidStatus
	}
	if in.Type != TypeClub && in.Type != TypeFestival && in.Type != TypePrivate {
		return Event{}, ErrInvalidType
	}
	if in.Date == "" {
		return Event{}, ErrDateRequired
	}
	if in.StartTime == "" {
		return Event{}, ErrTimeRequired
	}
	city := strings.TrimSpace(in.City)
	if city == "" {
		return Event{}, ErrCityRequired
	}

	// Private events never show client details on the public agenda.
	title := strings.TrimSpace(in.Title)
	venue := strings.TrimSpace(in.Venue)
	if in.Type == TypePrivate {
		title = PrivateTitle
		venue = ""
	} else {
		if title == "" {
			return Event{}, ErrTitleRequired
		}
		if venue == "" {
			return Event{}, ErrVenueRequired
		}
	}

	return Event{
		Status:    in.Status,
		Type:      in.Type,
		Date:      in.Date,
		StartTime: in.StartTime,
		Title:     title,
		Venue:     venue,
		City:      city,
	}, nil
}

// NormalizeDate accepts either wire representation of a stored date — a
// string ("2025-06-01", "2025-06-01T00:00:00Z", "2025-06-01 00:00:00") or a
// temporal value — and returns the canonical YYYY-MM-DD form.
func NormalizeDate(v any) string {
	switch d := v.(type) {
	case string:
		if len(d) >= 10 {
			return d[:10]
		}
		return d
	case time.Time:
		return d.Format("2006-01-02")
	case []byte:
		return NormalizeDate(string(d))
	}
	return ""
}

// NormalizeStartTime accepts either wire representation of a stored
// time-of-day — a string ("21:00", "21:00:00") or a temporal value — and
// returns the canonical HH:MM form with seconds truncated.
func NormalizeStartTime(v any) string {
	switch t := v.(type) {
	case string:
		if len(t) >= 5 {
			return t[:5]
		}
		return t
	case time.Time:
		return t.Format("15:04")
	case []byte:
		return NormalizeStartTime(string(t))
	}
	return ""
}
