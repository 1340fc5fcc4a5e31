// Package completion talks to the OpenAI chat completions API. Each call is one
// blocking round trip; there is no retry and no streaming.
package completion

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/prompts"
	"github.com/Ramsey-B/rose/pkg/tracing"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEmptyResponse = stderrors.New("completion returned no choices")
	ErrRefused       = stderrors.New("completion was refused")
)

// Completer turns a prompt into generated text.
type Completer interface {
	// Complete returns the plain text of the first choice.
	Complete(ctx context.Context, prompt prompts.Prompt) (string, error)
	// CompleteStructured asks for output matching schema and decodes it into out.
	CompleteStructured(ctx context.Context, prompt prompts.Prompt, schema *Schema, out any) error
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Store asks the provider to keep the completion for later evaluation.
	Store      bool
	HTTPClient *http.Client
}

type Client struct {
	client *openai.Client
	model  string
	store  bool
	logger ectologger.Logger
}

func NewClient(cfg Config, logger ectologger.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		store:  cfg.Store,
		logger: logger,
	}
}

func (c *Client) Complete(ctx context.Context, prompt prompts.Prompt) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "CompletionClient.Complete", attribute.String("completion.model", c.model))
	defer span.End()

	content, err := c.create(ctx, "text", prompt, nil)
	if err != nil {
		tracing.RecordError(span, err)
		return "", err
	}

	return content, nil
}

func (c *Client) CompleteStructured(ctx context.Context, prompt prompts.Prompt, schema *Schema, out any) error {
	ctx, span := tracing.StartSpan(ctx, "CompletionClient.CompleteStructured",
		attribute.String("completion.model", c.model),
		attribute.String("completion.schema", schema.Name),
	)
	defer span.End()

	content, err := c.create(ctx, "structured", prompt, schema.responseFormat())
	if err != nil {
		tracing.RecordError(span, err)
		return err
	}

	if err := schema.Decode(content, out); err != nil {
		c.logger.WithContext(ctx).WithError(err).WithField("schema", schema.Name).Warn("Completion did not match the requested schema")
		tracing.RecordError(span, err)
		return err
	}

	return nil
}

func (c *Client) create(ctx context.Context, kind string, prompt prompts.Prompt, format *openai.ChatCompletionResponseFormat) (string, error) {
	log := c.logger.WithContext(ctx).WithFields(map[string]any{
		"model": c.model,
		"kind":  kind,
	})

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Store: c.store,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		ResponseFormat: format,
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordCompletion(kind, c.model, "error", duration.Seconds())
		log.WithError(err).Error("Completion request failed")
		return "", upstreamError(err)
	}

	metrics.RecordCompletion(kind, c.model, "success", duration.Seconds())
	metrics.RecordCompletionTokens(c.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	log.WithFields(map[string]any{
		"duration":          duration,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("Completion received")

	if len(resp.Choices) == 0 {
		return "", errors.NewCompletionFormatError(ErrEmptyResponse)
	}

	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return "", errors.NewCompletionFormatError(fmt.Errorf("%w: %s", ErrRefused, msg.Refusal))
	}

	return msg.Content, nil
}

// upstreamError keeps the provider's own message when it sent one.
func upstreamError(err error) *errors.CompletionServiceError {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		return &errors.CompletionServiceError{Message: apiErr.Message, Err: err}
	}
	return errors.NewCompletionServiceError(err)
}
