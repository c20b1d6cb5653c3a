package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestSessionStore_CreateGetDelete covers the session lifecycle.
func TestSessionStore_CreateGetDelete(t *testing.T) {
	ss := NewSessionStore()

	token, err := ss.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	if _, ok := ss.Get(token); !ok {
		t.Error("fresh session not found")
	}
	if _, ok := ss.Get("bogus"); ok {
		t.Error("unknown token resolved")
	}

	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("deleted session still resolves")
	}
}

// TestSessionStore_Expiry verifies sessions die after the validity window.
func TestSessionStore_Expiry(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ss.mu.Lock()
	ss.sessions[token] = Session{CreatedAt: time.Now().Add(-sessionTTL - time.Minute)}
	ss.mu.Unlock()

	if _, ok := ss.Get(token); ok {
		t.Error("expired session still resolves")
	}
}

// TestRequireAdmin_RedirectsWithNext verifies unauthenticated backstage
// requests are sent to the login page carrying the requested path.
func TestRequireAdmin_RedirectsWithNext(t *testing.T) {
	h := RequireAdmin(okHandler())

	req := httptest.NewRequest("GET", "/backstage/agenda", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	loc := rec.Header().Get("Location")
	want := LoginPath + "?next=%2Fbackstage%2Fagenda"
	if loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

// TestRequireAdmin_LoginPageAlwaysReachable verifies the login entry point is
// never gated.
func TestRequireAdmin_LoginPageAlwaysReachable(t *testing.T) {
	h := RequireAdmin(okHandler())

	req := httptest.NewRequest("GET", LoginPath, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// TestRequireAdmin_PassesWithSession verifies a valid session passes through.
func TestRequireAdmin_PassesWithSession(t *testing.T) {
	h := RequireAdmin(okHandler())

	req := httptest.NewRequest("GET", "/backstage/agenda", nil)
	req = req.WithContext(ContextWithSession(req.Context(), Session{CreatedAt: time.Now()}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// TestAuth_ResolvesCookie verifies the Auth middleware puts a valid session
// into the request context.
func TestAuth_ResolvesCookie(t *testing.T) {
	ss := NewSessionStore()
	token, err := ss.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var got bool
	h := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, got = GetSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !got {
		t.Error("session not resolved from cookie")
	}

	got = false
	req = httptest.NewRequest("GET", "/events", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got {
		t.Error("bogus cookie resolved to a session")
	}
}
