// Package genai talks to an OpenAI-compatible generative text service and
// turns its structured replies into trip data.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"golang.org/x/time/rate"
)

// Default connection settings. The base URL is Gemini's OpenAI-compatible endpoint.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrDisabled is returned when no API key was configured.
	ErrDisabled = errors.New("generative AI is not configured")

	// ErrNoContent is returned when the service replied without any text.
	ErrNoContent = errors.New("empty reply from generative AI")

	// ErrMalformed is returned when the reply does not decode into the expected shape.
	ErrMalformed = errors.New("malformed reply from generative AI")
)

// Generator produces JSON conforming to schema and decodes it into out.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *jsonschema.Definition, out any) error
}

// Options configures an OpenAIClient.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// RequestsPerMinute paces outgoing calls; 0 means unlimited.
	RequestsPerMinute int
}

// OpenAIClient implements Generator over the chat completions API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewOpenAIClient creates a client. Empty options fall back to the defaults.
func NewOpenAIClient(opts Options) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = opts.BaseURL
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// GenerateJSON sends prompt with a strict JSON schema response format.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string, schema *jsonschema.Definition, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed waiting for rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "response",
				Schema: schema,
			},
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create chat completion: %w", err)
	}
	slog.Debug("Chat completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"total_tokens", resp.Usage.TotalTokens,
	)

	if len(resp.Choices) == 0 {
		return ErrNoContent
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return ErrNoContent
	}

	if err := json.Unmarshal([]byte(stripCodeFence(content)), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// stripCodeFence removes a surrounding ```json fence some models add.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Disabled is the Generator used when no API key is configured.
type Disabled struct{}

// GenerateJSON always fails with ErrDisabled.
func (Disabled) GenerateJSON(context.Context, string, *jsonschema.Definition, any) error {
	return ErrDisabled
}
