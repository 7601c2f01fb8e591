package client

import (
	"context"
	"fmt"

	"github.com/parley-dev/parley/internal/utils"
	"github.com/parley-dev/parley/providers/ai"
)

// StructuredClient decorates a [Client] so every response is decoded into T.
// Requests are forced into JSON output mode and the reply is parsed with a
// repair fallback for near-valid JSON (markdown fences, single quotes,
// trailing commas).
type StructuredClient[T any] struct {
	client *Client
}

// NewStructured wraps an existing client with typed decoding.
func NewStructured[T any](c *Client) *StructuredClient[T] {
	return &StructuredClient[T]{client: c}
}

// SendRequest forces JSON output mode on the request, sends it through the
// wrapped client, and decodes the response content into T. The raw response
// is returned alongside the decoded value so callers keep access to the
// content and usage; on a decode failure it is returned with the error.
func (s *StructuredClient[T]) SendRequest(ctx context.Context, request ai.ChatRequest) (T, *ai.ChatResponse, error) {
	var zero T

	response, err := s.client.SendRequest(ctx, request.WithOutputFormat(ai.OutputJSON))
	if err != nil {
		return zero, nil, err
	}

	value, err := utils.ParseStringAs[T](response.Content)
	if err != nil {
		return zero, response, err
	}

	return value, response, nil
}

// Send sends a single user prompt to the default model and decodes the reply.
func (s *StructuredClient[T]) Send(ctx context.Context, prompt string) (T, *ai.ChatResponse, error) {
	var zero T
	if s.client.defaultModel == "" {
		return zero, nil, fmt.Errorf("%w: no default model set", ai.ErrMissingField)
	}

	request := ai.NewChatRequest(s.client.defaultModel).WithMessages(ai.UserMessage(prompt))

	return s.SendRequest(ctx, request)
}

// SendWithSystem is [StructuredClient.Send] with a system prompt.
func (s *StructuredClient[T]) SendWithSystem(ctx context.Context, system, prompt string) (T, *ai.ChatResponse, error) {
	var zero T
	if s.client.defaultModel == "" {
		return zero, nil, fmt.Errorf("%w: no default model set", ai.ErrMissingField)
	}

	request := ai.NewChatRequest(s.client.defaultModel).
		WithSystemPrompt(system).
		WithMessages(ai.UserMessage(prompt))

	return s.SendRequest(ctx, request)
}
