package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/af-corp/wayfinder-gateway/internal/config"
	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// Client invokes an Azure OpenAI chat-completions deployment. One prompt in,
// one generated text (or typed failure) out; it holds no session state
// between calls.
type Client struct {
	cfg    config.CompletionConfig
	client *http.Client
}

func NewClient(cfg config.CompletionConfig, httpClient *http.Client) *Client {
	return &Client{cfg: cfg, client: httpClient}
}

// FromConfig builds a Client with its own HTTP client, using the configured
// per-call timeout.
func FromConfig(cfg config.CompletionConfig) *Client {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        cfg.MaxConcurrent,
			MaxIdleConnsPerHost: cfg.MaxConcurrent,
			ForceAttemptHTTP2:   true,
		},
	}
	return NewClient(cfg, client)
}

// Invoke sends the built prompt as a single user-role message and returns
// the first choice's content, trimmed. Every transport error, rejected
// credential, rate limit, or malformed reply collapses into a service-error
// failure; attempts default to one (MaxRetries adds bounded extra attempts).
func (c *Client) Invoke(ctx context.Context, prompt types.BuiltPrompt) types.CompletionResult {
	attempts := 1 + c.cfg.MaxRetries
	var lastErr error
	for i := 0; i < attempts; i++ {
		text, err := c.invokeOnce(ctx, prompt)
		if err == nil {
			return types.Success(text)
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return types.Failure(types.FailureServiceError, lastErr)
}

func (c *Client) invokeOnce(ctx context.Context, prompt types.BuiltPrompt) (string, error) {
	httpReq, err := c.buildRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	return parseResponse(resp)
}

func (c *Client) buildRequest(ctx context.Context, prompt types.BuiltPrompt) (*http.Request, error) {
	body := chatCompletionsBody{
		Messages: []types.Message{
			{Role: "user", Content: prompt.Text},
		},
		MaxTokens:        prompt.Sampling.MaxTokens,
		Temperature:      prompt.Sampling.Temperature,
		TopP:             prompt.Sampling.TopP,
		FrequencyPenalty: prompt.Sampling.FrequencyPenalty,
		PresencePenalty:  prompt.Sampling.PresencePenalty,
		Stop:             prompt.Sampling.Stop,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Deployment, c.cfg.APIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.APIKey)
	for k, v := range c.cfg.Headers {
		if v != "" {
			httpReq.Header.Set(k, v)
		}
	}

	return httpReq, nil
}

func parseResponse(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned status %d: %s", resp.StatusCode, string(body))
	}

	var ccResp chatCompletionsResponse
	if err := json.Unmarshal(body, &ccResp); err != nil {
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}

	if len(ccResp.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	// An empty or whitespace-only content is still a successful reply;
	// only missing choices count as malformed.
	return strings.TrimSpace(ccResp.Choices[0].Message.Content), nil
}

type chatCompletionsBody struct {
	Messages         []types.Message `json:"messages"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
	FrequencyPenalty float64         `json:"frequency_penalty"`
	PresencePenalty  float64         `json:"presence_penalty"`
	Stop             []string        `json:"stop,omitempty"`
}

type chatCompletionsResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int           `json:"index"`
		Message      types.Message `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
