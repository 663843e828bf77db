package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionProviderMessageShape(t *testing.T) {
	var captured chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	}))
	defer srv.Close()

	p := NewChatCompletionProvider("deepseek", srv.URL, "test-key", "deepseek-chat")
	got, err := p.Complete(context.Background(), "sys", "usr", 0.7, 100)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)

	assert.Equal(t, "deepseek-chat", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "sys", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, 100, captured.MaxTokens)
}

func TestChatCompletionProviderTextShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"text":"legacy style"}]}`))
	}))
	defer srv.Close()

	p := NewChatCompletionProvider("openai", srv.URL, "k", "gpt-4o-mini")
	got, err := p.Complete(context.Background(), "s", "u", 0.5, 50)
	require.NoError(t, err)
	assert.Equal(t, "legacy style", got)
}

func TestChatCompletionProviderErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		p := NewChatCompletionProvider("deepseek", srv.URL, "k", "m")
		_, err := p.Complete(context.Background(), "s", "u", 0.5, 50)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("error object in body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":{"message":"invalid model"}}`))
		}))
		defer srv.Close()

		p := NewChatCompletionProvider("openai", srv.URL, "k", "m")
		_, err := p.Complete(context.Background(), "s", "u", 0.5, 50)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid model")
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		p := NewChatCompletionProvider("deepseek", srv.URL, "k", "m")
		_, err := p.Complete(context.Background(), "s", "u", 0.5, 50)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no assistant content")
	})

	t.Run("unreachable server", func(t *testing.T) {
		p := NewChatCompletionProvider("deepseek", "http://127.0.0.1:1", "k", "m")
		_, err := p.Complete(context.Background(), "s", "u", 0.5, 50)
		assert.Error(t, err)
	})
}

func TestBuildProviders(t *testing.T) {
	t.Run("no keys yields no providers", func(t *testing.T) {
		assert.Empty(t, BuildProviders(config.AIConfig{}))
	})

	t.Run("primary key alone is enough", func(t *testing.T) {
		providers := BuildProviders(config.AIConfig{PrimaryAPIKey: "k"})
		require.Len(t, providers, 1)
		assert.Equal(t, "deepseek", providers[0].Name())
	})

	t.Run("secondary needs key and model", func(t *testing.T) {
		providers := BuildProviders(config.AIConfig{SecondaryAPIKey: "k"})
		assert.Empty(t, providers)

		providers = BuildProviders(config.AIConfig{SecondaryAPIKey: "k", SecondaryModel: "gpt-4o"})
		require.Len(t, providers, 1)
		assert.Equal(t, "openai", providers[0].Name())
	})

	t.Run("primary listed before secondary", func(t *testing.T) {
		providers := BuildProviders(config.AIConfig{
			PrimaryAPIKey:   "pk",
			SecondaryAPIKey: "sk",
			SecondaryModel:  "gpt-4o",
		})
		require.Len(t, providers, 2)
		assert.Equal(t, "deepseek", providers[0].Name())
		assert.Equal(t, "openai", providers[1].Name())
	})

	t.Run("defaults fill in primary base and model", func(t *testing.T) {
		providers := BuildProviders(config.AIConfig{PrimaryAPIKey: "k"})
		require.Len(t, providers, 1)
		p, ok := providers[0].(*ChatCompletionProvider)
		require.True(t, ok)
		assert.Equal(t, config.DefaultPrimaryBaseURL, p.baseURL)
		assert.Equal(t, config.DefaultPrimaryModel, p.model)
	})
}
