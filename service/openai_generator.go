package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"loan-optimizer/domain"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAIGenerator talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIGenerator struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewOpenAIGenerator(apiKey, model, apiURL string, client *http.Client) *OpenAIGenerator {
	if apiURL == "" {
		apiURL = defaultOpenAIURL
	}
	return &OpenAIGenerator{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		httpClient: client,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: g.model,
		Messages: []Message{
			{Role: "system", Content: advisorPersona},
			{Role: "user", Content: prompt},
		},
		MaxTokens: MaxResponseTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExternalServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrExternalServiceUnavailable, err)
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from model", domain.ErrExternalServiceUnavailable)
	}

	return openAIResp.Choices[0].Message.Content, nil
}
