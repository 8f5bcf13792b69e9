package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-optimizer/config"
	"loan-optimizer/domain"
)

func TestOpenAIGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req OpenAIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "What is EMI?", req.Messages[1].Content)
		assert.Equal(t, MaxResponseTokens, req.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"EMI is a monthly payment."}}]}`))
	}))
	defer server.Close()

	g := NewOpenAIGenerator("test-key", "gpt-4o-mini", server.URL, server.Client())
	text, err := g.Generate(context.Background(), "What is EMI?")
	require.NoError(t, err)
	assert.Equal(t, "EMI is a monthly payment.", text)
}

func TestOpenAIGenerator_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	g := NewOpenAIGenerator("k", "m", server.URL, server.Client())
	_, err := g.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, domain.ErrExternalServiceUnavailable)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, advisorPersona, req.SystemInstruction.Parts[0].Text)
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "Explain tenure", req.Contents[0].Parts[0].Text)
		assert.Equal(t, MaxResponseTokens, req.GenerationConfig.MaxOutputTokens)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Tenure is "},{"text":"the loan length."}]}}]}`))
	}))
	defer server.Close()

	g := NewGeminiGenerator("test-key", "gemini-pro", server.URL+"/", server.Client())
	text, err := g.Generate(context.Background(), "Explain tenure")
	require.NoError(t, err)
	assert.Equal(t, "Tenure is the loan length.", text)
}

func TestGenerators_APIError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, retryable: true},
		{name: "server error", status: http.StatusServiceUnavailable, retryable: true},
		{name: "bad key", status: http.StatusUnauthorized, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			generators := []TextGenerator{
				NewOpenAIGenerator("k", "m", server.URL, server.Client()),
				NewGeminiGenerator("k", "m", server.URL, server.Client()),
			}
			for _, g := range generators {
				_, err := g.Generate(context.Background(), "hi")

				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.status, apiErr.StatusCode)
				assert.Equal(t, "nope", apiErr.Body)
				assert.Equal(t, tt.retryable, apiErr.Retryable())
				assert.ErrorIs(t, err, domain.ErrExternalServiceUnavailable)
			}
		})
	}
}

func TestNewTextGenerator(t *testing.T) {
	assert.Nil(t, NewTextGenerator(config.LLMConfig{Provider: config.ProviderNone, APIKey: "k"}, nil))
	assert.Nil(t, NewTextGenerator(config.LLMConfig{Provider: config.ProviderGemini}, nil))

	g := NewTextGenerator(config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"}, nil)
	assert.IsType(t, &OpenAIGenerator{}, g)

	g = NewTextGenerator(config.LLMConfig{Provider: config.ProviderGemini, APIKey: "k", Model: "gemini-pro"}, nil)
	assert.IsType(t, &GeminiGenerator{}, g)
}
