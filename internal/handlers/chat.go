package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crmchat-backend/internal/models"
	"crmchat-backend/internal/services"
)

const msgInvalidMessage = "Message is required and must be a non-empty string"

type completionService interface {
	Complete(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	completions completionService
	logger      zerolog.Logger
}

func NewChatHandler(completions completionService) *ChatHandler {
	return &ChatHandler{
		completions: completions,
		logger:      log.With().Str("component", "chat").Logger(),
	}
}

// Chat validates the inbound message, relays it upstream with the fixed
// system prompt, and translates failures into HTTP statuses. A request
// that fails validation never reaches the completion API.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidMessage})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidMessage})
		return
	}

	h.logger.Info().
		Str("origin", r.Header.Get("Origin")).
		Str("message", message).
		Msg("received chat message")

	reply, err := h.completions.Complete(r.Context(), message)
	if err != nil {
		h.writeCompletionError(w, r, err)
		return
	}

	h.logger.Info().Str("reply", reply).Msg("OpenAI response")
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

func (h *ChatHandler) writeCompletionError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("origin", r.Header.Get("Origin")).
		Str("request_id", r.Header.Get("X-Request-ID")).
		Msg("chat completion failed")

	var rateErr *services.RateLimitError
	var authErr *services.UnauthorizedError
	var badReqErr *services.BadRequestError
	switch {
	case errors.As(err, &rateErr):
		writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{
			Error: "Rate limit exceeded for OpenAI API. Please try again later.",
		})
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Error: "Invalid OpenAI API key. Please contact the administrator.",
		})
	case errors.As(err, &badReqErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request to OpenAI API. Please check your message.",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:      "Failed to fetch response from OpenAI.",
			Details:    err.Error(),
			Suggestion: "Please try again later or contact support if the issue persists.",
		})
	}
}
