package contact

import (
	"errors"
	"regexp"
	"strings"
)

// Rejection reasons shown to the visitor.
var (
	ErrMissingFields = errors.New("Faltan campos requeridos.")
	ErrInvalidEmail  = errors.New("Email inválido.")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is a contact-form submission from a site visitor.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Normalize trims the fields and validates the submission.
// POST: on success all fields are non-empty and Email matches the address shape.
func (m Message) Normalize() (Message, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" || m.Email == "" || m.Message == "" {
		return Message{}, ErrMissingFields
	}
	if !emailPattern.MatchString(m.Email) {
		return Message{}, ErrInvalidEmail
	}
	return m, nil
}
