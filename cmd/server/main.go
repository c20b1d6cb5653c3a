package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "biosfera/internal/adapters/email"
	web "biosfera/internal/adapters/http"
	"biosfera/internal/adapters/storage"
	eventStorePkg "biosfera/internal/adapters/storage/event"
	"biosfera/internal/auth"
	"biosfera/internal/clock"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("BIOSFERA_DB", "biosfera.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	// Slow-query logging around every store
	timedDB := storage.NewTimedDB(db)
	stores := &web.Stores{
		EventStore: eventStorePkg.NewSQLiteStore(timedDB),
	}

	// Backstage PIN gate: a bcrypt hash takes precedence over a plaintext PIN
	switch {
	case os.Getenv("BIOSFERA_ADMIN_PIN_HASH") != "":
		web.SetAuthValidator(auth.NewHashValidator(os.Getenv("BIOSFERA_ADMIN_PIN_HASH")))
	case os.Getenv("BIOSFERA_ADMIN_PIN") != "":
		web.SetAuthValidator(auth.NewPinValidator(os.Getenv("BIOSFERA_ADMIN_PIN")))
	default:
		log.Println("WARNING: BIOSFERA_ADMIN_PIN is not set — backstage login is DISABLED")
	}

	// Contact mail sender
	resendKey := os.Getenv("BIOSFERA_RESEND_KEY")
	contactTo := envOrDefault("BIOSFERA_CONTACT_TO", "produccionesbiosfera@gmail.com")
	contactFrom := envOrDefault("BIOSFERA_CONTACT_FROM", "Producciones Biosfera <noreply@produccionesbiosfera.com>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, contactFrom), contactTo, contactFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), contactTo, contactFrom)
		if os.Getenv("BIOSFERA_ENV") == "production" {
			log.Println("WARNING: BIOSFERA_RESEND_KEY is not set — contact mail delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set BIOSFERA_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores, clock.NewSystem())

	addr := envOrDefault("BIOSFERA_ADDR", ":8080")
	log.Printf("Biosfera %s starting on %s (env=%s)", version, addr, envOrDefault("BIOSFERA_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
