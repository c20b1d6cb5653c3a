package web

import (
	"errors"
	"net/http"

	"biosfera/internal/application/orchestrators"
	contactDomain "biosfera/internal/domain/contact"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// handleContact handles POST /contact: mails the submission to the business inbox.
func handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req contactRequest
	decodeBody(r, &req)

	input := orchestrators.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	deps := orchestrators.ContactDeps{
		Sender: emailSender,
		To:     contactTo,
		From:   contactFrom,
	}
	if err := orchestrators.ExecuteSendContact(r.Context(), input, deps); err != nil {
		switch {
		case errors.Is(err, contactDomain.ErrMissingFields), errors.Is(err, contactDomain.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orchestrators.ErrMailNotConfigured):
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, orchestrators.ErrMailSendFailed.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
