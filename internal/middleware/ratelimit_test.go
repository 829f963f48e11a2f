package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func limitedHandler(rl *RateLimiter) http.Handler {
	return rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	h := limitedHandler(NewRateLimiter(3, time.Minute))

	for i := 0; i < 3; i++ {
		if rr := doRequest(h, "10.0.0.1:1234"); rr.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, rr.Code)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	h := limitedHandler(NewRateLimiter(2, time.Minute))

	doRequest(h, "10.0.0.1:1234")
	doRequest(h, "10.0.0.1:1234")

	rr := doRequest(h, "10.0.0.1:1234")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429 over the limit, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON error body, got Content-Type %q", ct)
	}
}

func TestRateLimiter_CountsPerIP(t *testing.T) {
	h := limitedHandler(NewRateLimiter(1, time.Minute))

	doRequest(h, "10.0.0.1:1234")
	if rr := doRequest(h, "10.0.0.2:1234"); rr.Code != http.StatusOK {
		t.Errorf("Second IP should not be limited, got %d", rr.Code)
	}
}

func TestRateLimiter_SameIPDifferentPort(t *testing.T) {
	h := limitedHandler(NewRateLimiter(1, time.Minute))

	doRequest(h, "10.0.0.1:1111")
	if rr := doRequest(h, "10.0.0.1:2222"); rr.Code != http.StatusTooManyRequests {
		t.Errorf("Port must not affect the counter key, got %d", rr.Code)
	}
}

func TestRateLimiter_ResetsAfterWindow(t *testing.T) {
	h := limitedHandler(NewRateLimiter(1, 50*time.Millisecond))

	doRequest(h, "10.0.0.1:1234")
	if rr := doRequest(h, "10.0.0.1:1234"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429 inside the window, got %d", rr.Code)
	}

	time.Sleep(60 * time.Millisecond)
	if rr := doRequest(h, "10.0.0.1:1234"); rr.Code != http.StatusOK {
		t.Errorf("Expected counter reset after window, got %d", rr.Code)
	}
}
