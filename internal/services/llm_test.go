package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atsoptimizer/ats-backend/internal/config"
	apperrors "atsoptimizer/ats-backend/internal/errors"
)

func llmConfig() config.LLMConfig {
	return config.LLMConfig{Timeout: 5 * time.Second}
}

func TestLLMClientUnsupportedProvider(t *testing.T) {
	cfg := llmConfig()
	cfg.Provider = "bedrock"
	client := NewLLMClient(cfg)

	_, err := client.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProviderConfiguration)
}

func TestLLMClientMissingAPIKey(t *testing.T) {
	cfg := llmConfig()
	cfg.Provider = "anthropic"
	client := NewLLMClient(cfg)

	_, err := client.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, apperrors.ErrProviderConfiguration)
}

func TestLLMClientAnthropicSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		w.Write([]byte(`{"content":[{"type":"text","text":"SCORE: 80"}]}`))
	}))
	defer server.Close()

	cfg := llmConfig()
	cfg.Provider = "anthropic"
	cfg.AnthropicAPIKey = "test-key"
	cfg.AnthropicAPIURL = server.URL
	client := NewLLMClient(cfg)

	response, err := client.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "SCORE: 80", response)
}

func TestLLMClientOpenAISuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer server.Close()

	cfg := llmConfig()
	cfg.Provider = "openai"
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIAPIURL = server.URL
	client := NewLLMClient(cfg)

	response, err := client.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "hello", response)
}

func TestLLMClientNon2xxResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := llmConfig()
	cfg.Provider = "openai"
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIAPIURL = server.URL
	client := NewLLMClient(cfg)

	_, err := client.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, apperrors.ErrProviderCall)
}

func TestLLMClientEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	cfg := llmConfig()
	cfg.Provider = "openai"
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIAPIURL = server.URL
	client := NewLLMClient(cfg)

	_, err := client.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, apperrors.ErrProviderCall)
}

func TestLLMClientProviderNameIsCaseInsensitive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	cfg := llmConfig()
	cfg.Provider = "OpenAI"
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIAPIURL = server.URL
	client := NewLLMClient(cfg)

	response, err := client.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "ok", response)
}
