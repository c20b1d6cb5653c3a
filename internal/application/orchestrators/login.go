package orchestrators

import (
	"errors"
	"log/slog"

	"biosfera/internal/auth"
)

var (
	ErrInvalidPin       = errors.New("PIN incorrecto")
	ErrPinNotConfigured = errors.New("El PIN de administración no está configurado")
)

// LoginDeps holds dependencies for ExecuteLogin.
type LoginDeps struct {
	Auth auth.Validator
}

// ExecuteLogin checks the submitted backstage PIN.
// POST: returns nil only when the PIN matches the configured secret;
// ErrPinNotConfigured is a deployment fault, not a caller fault
func ExecuteLogin(pin string, deps LoginDeps) error {
	if deps.Auth == nil {
		slog.Error("auth_event", "event", "login_unconfigured")
		return ErrPinNotConfigured
	}
	if !deps.Auth.Validate(pin) {
		slog.Info("auth_event", "event", "login_failed")
		return ErrInvalidPin
	}
	slog.Info("auth_event", "event", "login_success")
	return nil
}
