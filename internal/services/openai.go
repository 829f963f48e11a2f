package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	maxReplyTokens = 150
	temperature    = 0.7

	// Bound on a single completion call; expiry surfaces as UpstreamError.
	requestTimeout = 30 * time.Second
)

// OpenAIService sends chat completions to the OpenAI API with a fixed
// system prompt prepended to every conversation.
type OpenAIService struct {
	client       *openai.Client
	model        string
	systemPrompt string
	logger       zerolog.Logger
}

func NewOpenAIService(apiKey, model, systemPrompt string) *OpenAIService {
	return &OpenAIService{
		client:       openai.NewClient(apiKey),
		model:        model,
		systemPrompt: systemPrompt,
		logger:       log.With().Str("component", "openai").Logger(),
	}
}

// Complete sends a single two-message conversation (system prompt + user
// message) and returns the text of the first choice. One call per inbound
// request, no retries.
func (s *OpenAIService) Complete(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	s.logger.Debug().Str("model", s.model).Msg("sending request to OpenAI")

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", s.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Message: "completion returned no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

// classify translates SDK errors into the service's typed errors using the
// upstream HTTP status. Auth failures are logged distinctly: they mean the
// deployment is misconfigured, not that the request was bad.
func (s *OpenAIService) classify(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case 429:
		s.logger.Warn().Err(err).Msg("OpenAI rate limit hit")
		return &RateLimitError{Message: "OpenAI API rate limit exceeded"}
	case 401, 403:
		s.logger.Error().Err(err).Msg("OpenAI rejected the API key; check OPENAI_API_KEY")
		return &UnauthorizedError{Message: "OpenAI API key rejected"}
	case 400:
		s.logger.Warn().Err(err).Msg("OpenAI rejected the request")
		return &BadRequestError{Message: "OpenAI rejected the request"}
	default:
		s.logger.Error().Err(err).Int("upstream_status", status).Msg("OpenAI request failed")
		return &UpstreamError{Message: "completion request failed", Err: err}
	}
}
