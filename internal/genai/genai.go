// Package genai provides the optional GenAI-backed crop-name canonicalizer.
//
// Farmers type crop names as free text, often in Hindi or Marathi, plural or
// misspelled; the advisory backend wants a single canonical English token.
// When an OpenAI API key is configured the canonicalizer maps the raw text
// through a chat completion; when it is not, or when the call fails, the raw
// text is used unchanged. Canonicalization is strictly best-effort and never
// blocks a flow.
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You normalize crop names for an Indian agricultural advisory service. " +
	"Given a crop name in any language (English, Hindi or Marathi), possibly plural or misspelled, " +
	"reply with only the canonical English crop name in lower case (for example: cotton, soybean, sugarcane, wheat). " +
	"If the input is not a crop, reply with the input unchanged."

// maxCropInputLength bounds what gets forwarded to the model; longer input is
// never a crop name.
const maxCropInputLength = 64

// Opts holds configuration options for the GenAI client.
type Opts struct {
	APIKey string
	Model  string
}

// Option defines a configuration option for the GenAI client.
type Option func(*Opts)

// WithAPIKey sets the OpenAI API key.
func WithAPIKey(key string) Option {
	return func(o *Opts) { o.APIKey = key }
}

// WithModel overrides the chat model used for canonicalization.
func WithModel(model string) Option {
	return func(o *Opts) { o.Model = model }
}

// Client wraps the OpenAI chat completion API for crop-name canonicalization.
type Client struct {
	client openai.Client
	model  string
}

// NewClient creates a GenAI client, applying any provided options.
func NewClient(opts ...Option) (*Client, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not set")
	}
	model := cfg.Model
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	slog.Debug("GenAI client created", "model", model)
	return &Client{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  model,
	}, nil
}

// CanonicalizeCrop maps a free-text crop name to its canonical English form.
func (c *Client) CanonicalizeCrop(ctx context.Context, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len(trimmed) > maxCropInputLength {
		return raw, nil
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(trimmed),
		},
	})
	if err != nil {
		slog.Warn("GenAI crop canonicalization failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	canonical := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	if canonical == "" {
		return raw, nil
	}
	return canonical, nil
}
