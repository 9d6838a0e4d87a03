package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GenerationError is the single failure class of the gateway: transport
// errors, non-2xx provider responses, empty content and malformed or
// off-shape JSON all end up here. Callers surface it as a generic server
// error; nothing is retried.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return "generation failed: " + e.Reason + ": " + e.Err.Error()
	}
	return "generation failed: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

func failed(reason string, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client talks to an OpenAI-compatible chat-completions endpoint. It holds
// no state between calls and never caches.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient never fails: a missing API key is allowed at startup and makes
// every call fail at call time instead.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a plain prompt and returns the assistant's text. An empty
// system prompt sends a single user message.
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})
	return c.send(ctx, chatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
}

// CompleteJSON requests strict JSON output and decodes it into out. A parse
// failure is a *GenerationError, never a partial success.
func (c *Client) CompleteJSON(ctx context.Context, prompt string, out any) error {
	content, err := c.send(ctx, chatCompletionRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return failed("model output is not valid JSON", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, request chatCompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", failed("api key not configured", nil)
	}
	body, err := json.Marshal(request)
	if err != nil {
		return "", failed("encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", failed("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", failed("provider request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failed("read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", failed(fmt.Sprintf("provider status %d", resp.StatusCode), nil)
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", failed("decode response", err)
	}
	if len(response.Choices) == 0 {
		return "", failed("no choices in response", nil)
	}
	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", failed("empty completion content", nil)
	}
	return content, nil
}
