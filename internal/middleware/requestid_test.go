package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen == "" {
		t.Fatal("Expected a request ID in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("Expected a UUID, got %q", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("Expected header %q to match context value %q", got, seen)
	}
}

func TestRequestID_PreservedWhenPresent(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "client-supplied-id" {
		t.Errorf("Expected client-supplied ID preserved, got %q", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("Expected header echoed back, got %q", got)
	}
}
