// Package parley is a unified client for OpenAI, Anthropic, Google Gemini,
// and Groq chat-completion APIs behind one request/response model.
//
// Small programs can depend on this package alone:
//
//	c, err := parley.FromModel("openai/gpt-4o-mini")
//	if err != nil {
//		log.Fatal(err)
//	}
//	response, err := c.Send(ctx, "What is the capital of France?")
//
// Richer request construction lives in [ai], the facade and structured
// output in [client], and the individual adapters under providers/ai.
package parley

import (
	"github.com/parley-dev/parley/core/client"
	"github.com/parley-dev/parley/providers/ai"
	"github.com/parley-dev/parley/providers/ai/anthropic"
	"github.com/parley-dev/parley/providers/ai/gemini"
	"github.com/parley-dev/parley/providers/ai/openai"
)

// Every adapter must satisfy the neutral provider contract.
var (
	_ ai.Provider = (*openai.OpenAIProvider)(nil)
	_ ai.Provider = (*anthropic.AnthropicProvider)(nil)
	_ ai.Provider = (*gemini.GeminiProvider)(nil)
)

// Neutral data model aliases.
type (
	Message      = ai.Message
	ChatRequest  = ai.ChatRequest
	ChatResponse = ai.ChatResponse
	Usage        = ai.Usage
	Provider     = ai.Provider
	ProviderID   = ai.ProviderID
	APIError     = ai.APIError
	Client       = client.Client
	Option       = client.Option
)

// Supported providers.
const (
	OpenAI    = ai.OpenAI
	Anthropic = ai.Anthropic
	Gemini    = ai.Gemini
	Groq      = ai.Groq
)

// Request construction helpers.
var (
	NewChatRequest   = ai.NewChatRequest
	SystemMessage    = ai.SystemMessage
	UserMessage      = ai.UserMessage
	AssistantMessage = ai.AssistantMessage
)

// Client options.
var (
	WithDefaultModel = client.WithDefaultModel
	WithHTTPClient   = client.WithHTTPClient
	WithObserver     = client.WithObserver
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrAPIKeyNotFound      = ai.ErrAPIKeyNotFound
	ErrMissingField        = ai.ErrMissingField
	ErrInvalidResponse     = ai.ErrInvalidResponse
	ErrUnknownProvider     = ai.ErrUnknownProvider
	ErrCannotInferProvider = ai.ErrCannotInferProvider
	ErrTransport           = ai.ErrTransport
	ErrDecode              = ai.ErrDecode
)

// New builds a client for an explicit provider, reading the credential from
// the environment.
func New(id ProviderID, opts ...Option) (*Client, error) {
	return client.New(id, opts...)
}

// NewWithKey builds a client for an explicit provider and credential.
func NewWithKey(id ProviderID, apiKey string, opts ...Option) (*Client, error) {
	return client.NewWithKey(id, apiKey, opts...)
}

// FromModel resolves a model string such as "anthropic/claude-sonnet-4-5"
// or a bare name like "gpt-4o", prompting interactively for the credential
// when the environment lacks it.
func FromModel(model string, opts ...Option) (*Client, error) {
	return client.FromModel(model, opts...)
}

// FromModelWithKey resolves a model string with an explicit credential.
func FromModelWithKey(model, apiKey string, opts ...Option) (*Client, error) {
	return client.FromModelWithKey(model, apiKey, opts...)
}

// NewStructured wraps a client so replies are decoded into T.
func NewStructured[T any](c *Client) *client.StructuredClient[T] {
	return client.NewStructured[T](c)
}
