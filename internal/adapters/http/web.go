package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"biosfera/internal/adapters/email"
	"biosfera/internal/adapters/http/middleware"
	eventStore "biosfera/internal/adapters/storage/event"
	"biosfera/internal/auth"
	"biosfera/internal/clock"
)

// Stores holds all storage dependencies.
type Stores struct {
	EventStore eventStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global backstage credential validator (set by SetAuthValidator)
var authValidator auth.Validator

// Global clock for the agenda cutoff (set by NewMux)
var agendaClock clock.Clock

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Contact mail configuration
var contactTo string
var contactFrom string

// SetEmailSender sets the global email sender and contact addresses.
func SetEmailSender(sender email.Sender, to, from string) {
	emailSender = sender
	contactTo = to
	contactFrom = from
}

// SetAuthValidator sets the backstage credential validator. A nil validator
// means the PIN gate is unconfigured and logins fail with a server error.
func SetAuthValidator(v auth.Validator) {
	authValidator = v
}

// loadCSRFKey reads the CSRF secret from BIOSFERA_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("BIOSFERA_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("BIOSFERA_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("BIOSFERA_ENV") == "production" {
		log.Fatal("BIOSFERA_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set BIOSFERA_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, clk clock.Clock) http.Handler {
	stores = s
	agendaClock = clk
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("BIOSFERA_ENV") == "production"

	mux := http.NewServeMux()
	// Public site plus PIN-gated backstage pages, both served from staticDir.
	fileServer := http.FileServer(http.Dir(staticDir))
	mux.Handle("/", fileServer)
	mux.Handle("/backstage/", middleware.RequireAdmin(fileServer))

	mux.HandleFunc("/events", handleEvents)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/contact", handleContact)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
