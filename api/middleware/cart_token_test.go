package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCartTokenMintsForNewSessions(t *testing.T) {
	var seen string
	handler := CartToken(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartTokenFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if seen == "" {
		t.Fatal("expected minted token in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected uuid token, got %q", seen)
	}
	if got := resp.Header().Get("X-Cart-Token"); got != seen {
		t.Fatalf("expected token echoed in header, got %q", got)
	}
}

func TestCartTokenEchoesExistingToken(t *testing.T) {
	var seen string
	handler := CartToken(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CartTokenFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Cart-Token", "tok-existing")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if seen != "tok-existing" {
		t.Fatalf("expected existing token, got %q", seen)
	}
	if got := resp.Header().Get("X-Cart-Token"); got != "tok-existing" {
		t.Fatalf("expected token echoed in header, got %q", got)
	}
}
