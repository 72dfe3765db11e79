package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"atsoptimizer/ats-backend/internal/config"
	apperrors "atsoptimizer/ats-backend/internal/errors"
)

// LLMClient sends a prompt to the configured text-generation provider and
// returns the raw response text.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const llmMaxTokens = 1024

type llmClient struct {
	cfg        config.LLMConfig
	httpClient *http.Client
	gemini     *genai.Client
}

// NewLLMClient builds a client for the provider named in cfg.Provider.
// Credentials are checked per call so an unconfigured provider degrades to a
// call-time error instead of refusing to start the service.
func NewLLMClient(cfg config.LLMConfig) LLMClient {
	return &llmClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	log.Printf("LLMClient: Sending request to %s\n", c.cfg.Provider)

	switch strings.ToLower(c.cfg.Provider) {
	case "anthropic":
		return c.callAnthropic(ctx, prompt)
	case "openai":
		return c.callOpenAI(ctx, prompt)
	case "gemini":
		return c.callGemini(ctx, prompt)
	default:
		return "", apperrors.ProviderConfiguration("unsupported LLM provider: %s", c.cfg.Provider)
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *llmClient) callAnthropic(ctx context.Context, prompt string) (string, error) {
	if c.cfg.AnthropicAPIKey == "" {
		return "", apperrors.ProviderConfiguration("Anthropic API key not set")
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     c.cfg.AnthropicModel,
		MaxTokens: llmMaxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AnthropicAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-api-key", c.cfg.AnthropicAPIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("content-type", "application/json")

	raw, err := c.doRequest(req, "Anthropic")
	if err != nil {
		return "", err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", apperrors.ProviderCall("failed to parse Anthropic response: %v", err)
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == "" {
		return "", apperrors.ProviderCall("empty Anthropic response")
	}

	return parsed.Content[0].Text, nil
}

type openAIRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *llmClient) callOpenAI(ctx context.Context, prompt string) (string, error) {
	if c.cfg.OpenAIAPIKey == "" {
		return "", apperrors.ProviderConfiguration("OpenAI API key not set")
	}

	body, err := json.Marshal(openAIRequest{
		Model:       c.cfg.OpenAIModel,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		MaxTokens:   llmMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenAIAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIAPIKey)
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.doRequest(req, "OpenAI")
	if err != nil {
		return "", err
	}

	var parsed openAIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", apperrors.ProviderCall("failed to parse OpenAI response: %v", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", apperrors.ProviderCall("empty OpenAI response")
	}

	return parsed.Choices[0].Message.Content, nil
}

func (c *llmClient) callGemini(ctx context.Context, prompt string) (string, error) {
	if c.cfg.GeminiAPIKey == "" {
		return "", apperrors.ProviderConfiguration("Gemini API key not set")
	}

	if c.gemini == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", apperrors.ProviderConfiguration("failed to create Gemini client: %v", err)
		}
		c.gemini = client
	}

	temperature := float32(0.7)
	resp, err := c.gemini.Models.GenerateContent(ctx, c.cfg.GeminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: llmMaxTokens,
	})
	if err != nil {
		return "", apperrors.ProviderCall("Gemini API call failed: %v", err)
	}
	if resp == nil {
		return "", apperrors.ProviderCall("empty Gemini response")
	}

	text := resp.Text()
	if text == "" {
		return "", apperrors.ProviderCall("no text content in Gemini response")
	}

	return text, nil
}

func (c *llmClient) doRequest(req *http.Request, provider string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ProviderCall("%s API call failed: %v", provider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ProviderCall("failed to read %s response: %v", provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("%s API error: %d - %s\n", provider, resp.StatusCode, string(raw))
		return nil, apperrors.ProviderCall("%s API call failed: status %d", provider, resp.StatusCode)
	}

	return raw, nil
}
