package web

import (
	"errors"
	"net/http"

	"biosfera/internal/adapters/http/middleware"
	"biosfera/internal/application/orchestrators"
)

type loginRequest struct {
	Pin string `json:"pin"`
}

// handleLogin handles POST /login: checks the backstage PIN and issues the
// session credential.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	decodeBody(r, &req)

	if err := orchestrators.ExecuteLogin(req.Pin, orchestrators.LoginDeps{Auth: authValidator}); err != nil {
		if errors.Is(err, orchestrators.ErrPinNotConfigured) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := sessions.Create()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error de sesión")
		return
	}
	middleware.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleLogout handles POST /logout: invalidates the session server-side and
// clears the credential.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
