package service

import (
	"context"
	"fmt"
	"net/http"

	"loan-optimizer/config"
	"loan-optimizer/domain"
)

// TextGenerator phrases a prompt as natural language. Implementations call a
// remote model and may be slow or fail; callers always keep a fallback.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// APIError is a non-2xx answer from a text-generation endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return domain.ErrExternalServiceUnavailable
}

// Retryable reports whether repeating the call may succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// NewTextGenerator builds the generator selected by cfg, or nil when the
// provider is disabled or has no credentials.
func NewTextGenerator(cfg config.LLMConfig, client *http.Client) TextGenerator {
	if !cfg.Enabled() {
		return nil
	}
	if client == nil {
		client = &http.Client{}
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL, client)
	case config.ProviderGemini:
		return NewGeminiGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL, client)
	}
	return nil
}
