package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crmchat-backend/internal/handlers"
	"crmchat-backend/internal/middleware"
	"crmchat-backend/internal/models"
)

type stubCompletions struct {
	reply string
}

func (s *stubCompletions) Complete(ctx context.Context, message string) (string, error) {
	return s.reply, nil
}

func newTestRouter(limit int) http.Handler {
	chatHandler := handlers.NewChatHandler(&stubCompletions{reply: "stub reply"})
	limiter := middleware.NewRateLimiter(limit, time.Minute)
	return New(chatHandler, limiter, []string{"http://localhost:5173"})
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(100)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "OK" || resp.Message != "Server is running" {
		t.Errorf("Unexpected health payload: %+v", resp)
	}
}

func TestRouter_ChatRouteWired(t *testing.T) {
	r := newTestRouter(100)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != "stub reply" {
		t.Errorf("Expected stub reply, got %q", resp.Reply)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter(100)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
}

func TestRouter_RateLimitCoversAPIRoutes(t *testing.T) {
	r := newTestRouter(1)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("First request should pass, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hello"}`))
	req.RemoteAddr = "10.0.0.1:1234"
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 over the limit, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected non-empty error field on 429")
	}
}
