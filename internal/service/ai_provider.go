package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"learnhub_backend/internal/config"
)

// providerTimeout bounds every chat-completion call; a timeout is an ordinary
// provider failure, never retried within the same request.
const providerTimeout = 15 * time.Second

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatCompletionResponse covers both response shapes seen in the wild:
// choices carrying a message object, and older choices carrying bare text.
type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
		Text    string      `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CompletionProvider is a single chat-completion backend. Complete returns the
// assistant's text, already normalized; any transport, status, decoding or
// empty-content condition is an error.
type CompletionProvider interface {
	Name() string
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

// ChatCompletionProvider speaks the OpenAI-compatible chat-completions wire
// format; one instance per configured backend.
type ChatCompletionProvider struct {
	name    string
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewChatCompletionProvider(name, baseURL, apiKey, model string) *ChatCompletionProvider {
	return &ChatCompletionProvider{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: providerTimeout},
	}
}

func (p *ChatCompletionProvider) Name() string {
	return p.name
}

func (p *ChatCompletionProvider) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model: p.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s API error (status %d): %s", p.name, resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("%s API error: %s", p.name, result.Error.Message)
	}

	text := extractChoiceText(&result)
	if text == "" {
		return "", fmt.Errorf("%s returned no assistant content", p.name)
	}
	return text, nil
}

// extractChoiceText normalizes the two supported choice shapes into a single
// text value; empty means absent.
func extractChoiceText(resp *chatCompletionResponse) string {
	for _, choice := range resp.Choices {
		if choice.Message.Content != "" {
			return choice.Message.Content
		}
		if choice.Text != "" {
			return choice.Text
		}
	}
	return ""
}

// BuildProviders assembles the provider cascade in preference order. The
// primary backend only needs a key; the secondary one is skipped unless both
// key and model are configured.
func BuildProviders(cfg config.AIConfig) []CompletionProvider {
	var providers []CompletionProvider

	if cfg.PrimaryAPIKey != "" {
		model := cfg.PrimaryModel
		if model == "" {
			model = config.DefaultPrimaryModel
		}
		baseURL := cfg.PrimaryBaseURL
		if baseURL == "" {
			baseURL = config.DefaultPrimaryBaseURL
		}
		providers = append(providers, NewChatCompletionProvider("deepseek", baseURL, cfg.PrimaryAPIKey, model))
	}

	if cfg.SecondaryAPIKey != "" && cfg.SecondaryModel != "" {
		baseURL := cfg.SecondaryBaseURL
		if baseURL == "" {
			baseURL = config.DefaultSecondaryBaseURL
		}
		providers = append(providers, NewChatCompletionProvider("openai", baseURL, cfg.SecondaryAPIKey, cfg.SecondaryModel))
	}

	return providers
}
