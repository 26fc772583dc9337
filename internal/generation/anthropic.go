package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"prdforge/internal/logging"
)

// AnthropicClient implements Client for the direct Anthropic API.
type AnthropicClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	httpClient  *http.Client
	mu          sync.Mutex
	lastRequest time.Time
}

// AnthropicConfig holds configuration for the Anthropic client.
type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// DefaultAnthropicConfig returns sensible defaults.
func DefaultAnthropicConfig(apiKey string) AnthropicConfig {
	return AnthropicConfig{
		APIKey:    apiKey,
		BaseURL:   "https://api.anthropic.com/v1",
		Model:     "claude-sonnet-4-5-20250514",
		MaxTokens: 8192,
		Timeout:   10 * time.Minute, // section drafts over large system prompts need headroom
	}
}

// NewAnthropicClient creates a new Anthropic client with default config.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return NewAnthropicClientWithConfig(DefaultAnthropicConfig(apiKey))
}

// NewAnthropicClientWithConfig creates a new Anthropic client with custom config.
func NewAnthropicClientWithConfig(config AnthropicConfig) *AnthropicClient {
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &AnthropicClient{
		apiKey:    config.APIKey,
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		model:     config.Model,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Error      *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a prompt and returns the completion.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem sends a prompt with a system message.
func (c *AnthropicClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// Auto-apply timeout if context has no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	logging.APIDebug("[Anthropic] CompleteWithSystem: model=%s system_len=%d user_len=%d",
		c.model, len(systemPrompt), len(userPrompt))

	if c.apiKey == "" {
		logging.APIError("[Anthropic] API key not configured")
		return "", failf("anthropic", 0, "API key not configured")
	}

	// Request spacing so rapid section cycles do not trip per-minute limits.
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if elapsed < 100*time.Millisecond {
		time.Sleep(100*time.Millisecond - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()

	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", failErr("anthropic", "failed to marshal request", err)
	}

	// Retry transient failures; anything else is surfaced immediately.
	maxRetries := 3
	var lastErr *Error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", failErr("anthropic", "request cancelled", ctx.Err())
			case <-time.After(time.Duration(1<<uint(i-1)) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/messages", bytes.NewReader(jsonData))
		if err != nil {
			return "", failErr("anthropic", "failed to create request", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", "2023-06-01")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = failErr("anthropic", "request failed", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = failErr("anthropic", "failed to read response", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = failf("anthropic", resp.StatusCode, "rate limit exceeded")
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = failf("anthropic", resp.StatusCode, "server error: %s", body)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			logging.APIError("[Anthropic] API returned status %d", resp.StatusCode)
			return "", failf("anthropic", resp.StatusCode, "%s", body)
		}

		var apiResp anthropicResponse
		if err := json.Unmarshal(body, &apiResp); err != nil {
			return "", failErr("anthropic", "failed to parse response", err)
		}
		if apiResp.Error != nil {
			logging.APIError("[Anthropic] API error: %s", apiResp.Error.Message)
			return "", failf("anthropic", 0, "API error: %s", apiResp.Error.Message)
		}
		if len(apiResp.Content) == 0 {
			return "", failf("anthropic", 0, "no completion returned")
		}

		var result strings.Builder
		for _, block := range apiResp.Content {
			if block.Type == "text" {
				result.WriteString(block.Text)
			}
		}

		response := strings.TrimSpace(result.String())
		logging.API("[Anthropic] completed in %v response_len=%d stop_reason=%s",
			time.Since(startTime), len(response), apiResp.StopReason)
		return response, nil
	}

	logging.APIError("[Anthropic] max retries exceeded after %v: %v", time.Since(startTime), lastErr)
	return "", lastErr
}

// SetModel changes the model used for completions.
func (c *AnthropicClient) SetModel(model string) {
	c.model = model
}

// GetModel returns the current model.
func (c *AnthropicClient) GetModel() string {
	return c.model
}
