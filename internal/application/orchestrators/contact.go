package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"biosfera/internal/adapters/email"
	contactDomain "biosfera/internal/domain/contact"
)

var (
	ErrMailNotConfigured = errors.New("El correo de contacto no está configurado")
	ErrMailSendFailed    = errors.New("No se pudo enviar el mensaje.")
)

// ContactInput carries a raw contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactDeps holds dependencies for ExecuteSendContact.
type ContactDeps struct {
	Sender email.Sender
	To     string // destination inbox
	From   string // verified sender address
}

// ExecuteSendContact validates the submission and mails it to the business
// inbox with Reply-To set to the visitor.
// POST: on rejection the error is one of the contact domain's reasons; mail
// provider failures surface as ErrMailSendFailed with detail logged only
func ExecuteSendContact(ctx context.Context, input ContactInput, deps ContactDeps) error {
	msg, err := contactDomain.Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}.Normalize()
	if err != nil {
		return err
	}

	if deps.Sender == nil || deps.To == "" || deps.From == "" {
		slog.Error("contact_unconfigured", "has_sender", deps.Sender != nil, "has_to", deps.To != "")
		return ErrMailNotConfigured
	}

	req := email.SendRequest{
		To:      []string{deps.To},
		From:    deps.From,
		Subject: fmt.Sprintf("Nuevo mensaje desde Contacto: %s", msg.Name),
		Text:    buildContactText(msg),
		HTML:    buildContactHTML(msg),
		ReplyTo: msg.Email,
	}
	if _, err := deps.Sender.Send(ctx, req); err != nil {
		slog.Error("contact_send_failed", "error", err, "from", msg.Email)
		return ErrMailSendFailed
	}

	slog.Info("contact_sent", "from", msg.Email)
	return nil
}

// buildContactText renders the plain-text mail body.
func buildContactText(msg contactDomain.Message) string {
	return strings.Join([]string{
		"Nombre: " + msg.Name,
		"Email: " + msg.Email,
		"",
		"Mensaje:",
		msg.Message,
	}, "\n")
}

// buildContactHTML renders the HTML mail body. Visitor input is escaped, the
// message is rendered with whitespace preserved, never as markup.
func buildContactHTML(msg contactDomain.Message) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; line-height:1.4">`)
	sb.WriteString("<h2>Nuevo mensaje desde el sitio</h2>")
	sb.WriteString("<p><b>Nombre:</b> " + html.EscapeString(msg.Name) + "</p>")
	sb.WriteString("<p><b>Email:</b> " + html.EscapeString(msg.Email) + "</p>")
	sb.WriteString("<hr/>")
	sb.WriteString(`<p style="white-space: pre-wrap">` + html.EscapeString(msg.Message) + "</p>")
	sb.WriteString("</div>")
	return sb.String()
}
