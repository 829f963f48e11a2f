package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"crmchat-backend/internal/handlers"
	"crmchat-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	limiter *middleware.RateLimiter,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/chat", chatHandler.Chat)
		r.Get("/health", handlers.Health)
	})

	return r
}
