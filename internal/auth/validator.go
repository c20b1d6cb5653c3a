// Package auth holds the backstage credential check behind a small interface
// so the PIN can later be swapped for a real identity provider without
// touching callers.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Validator checks a submitted backstage secret.
type Validator interface {
	Validate(secret string) bool
}

// PinValidator compares against a plaintext shared PIN in constant time.
type PinValidator struct {
	pin string
}

// NewPinValidator creates a validator for a deployment-configured PIN.
// PRE: pin is non-empty
func NewPinValidator(pin string) *PinValidator {
	return &PinValidator{pin: pin}
}

// Validate reports whether secret matches the configured PIN.
// The comparison is constant-time for equal-length inputs.
func (v *PinValidator) Validate(secret string) bool {
	return subtle.ConstantTimeCompare([]byte(v.pin), []byte(secret)) == 1
}

// HashValidator compares against a bcrypt hash of the PIN, so the plaintext
// never has to live in the environment.
type HashValidator struct {
	hash string
}

// NewHashValidator creates a validator for a bcrypt-hashed PIN.
// PRE: hash is a bcrypt hash string
func NewHashValidator(hash string) *HashValidator {
	return &HashValidator{hash: hash}
}

// Validate reports whether secret matches the configured hash.
func (v *HashValidator) Validate(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(secret)) == nil
}
