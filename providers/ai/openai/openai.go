package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/parley-dev/parley/internal/utils"
	"github.com/parley-dev/parley/providers/ai"
	"github.com/parley-dev/parley/providers/observability"
)

// chatCompletionsEndpoint is the path for the Chat Completions endpoint,
// shared verbatim by OpenAI and Groq.
const chatCompletionsEndpoint = "/chat/completions"

// OpenAIProvider implements [ai.Provider] for OpenAI's Chat Completions API.
// The same adapter serves Groq, which speaks an OpenAI-compatible wire format
// under a different base URL and credential. Use [New] or [NewGroq] to
// construct a ready-to-use instance.
type OpenAIProvider struct {
	id      ai.ProviderID
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an [OpenAIProvider] initialized from environment variables.
// It reads OPENAI_API_KEY for authentication and fails with
// [ai.ErrAPIKeyNotFound] when the variable is unset or empty.
func New() (*OpenAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, "OPENAI_API_KEY")
	}

	return NewWithKey(apiKey), nil
}

// NewWithKey returns an [OpenAIProvider] using the given API key. It never
// reads the credential from the environment, but still honors the
// OPENAI_API_BASE_URL endpoint override when set.
func NewWithKey(apiKey string) *OpenAIProvider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = ai.OpenAI.BaseURL()
	}

	return &OpenAIProvider{
		id:      ai.OpenAI,
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// NewGroq returns a provider targeting Groq's OpenAI-compatible API. It reads
// GROQ_API_KEY for authentication and fails with [ai.ErrAPIKeyNotFound] when
// the variable is unset or empty.
func NewGroq() (*OpenAIProvider, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, "GROQ_API_KEY")
	}

	return NewGroqWithKey(apiKey), nil
}

// NewGroqWithKey returns a Groq-targeted provider using the given API key,
// honoring the GROQ_API_BASE_URL endpoint override when set.
func NewGroqWithKey(apiKey string) *OpenAIProvider {
	baseURL := os.Getenv("GROQ_API_BASE_URL")
	if baseURL == "" {
		baseURL = ai.Groq.BaseURL()
	}

	return &OpenAIProvider{
		id:      ai.Groq,
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name reports the vendor this instance targets: "openai" or "groq".
func (p *OpenAIProvider) Name() string {
	return p.id.String()
}

// WithAPIKey sets the API key used for authenticating requests and returns
// the provider so calls can be chained.
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API base URL and returns the provider so calls
// can be chained. Use this when targeting a proxy or local testing endpoint.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient replaces the default [http.Client] used for API calls and
// returns the provider so calls can be chained. Useful for injecting custom
// timeouts, transport layers, or test doubles.
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements [ai.Provider] by sending a synchronous chat request
// to the Chat Completions API and returning the response mapped to the
// generic [ai.ChatResponse] format. It returns an error if the API key is
// unset, the request is invalid, the HTTP call fails, or the response carries
// no choices.
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	// Enrich span if observability is wired into the context.
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, p.id.String()),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "OpenAI-compatible provider preparing request",
			observability.String(observability.AttrLLMProvider, p.id.String()),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
		)
	}

	// Guard against missing credentials before making a network call.
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, p.id.EnvVar())
	}

	// Convert the generic request to the Chat Completions wire format. This
	// also validates the request, so no network call is made for a request
	// with no model or no messages.
	chatReq, err := requestToChatCompletion(request)
	if err != nil {
		return nil, err
	}

	url := p.baseURL + chatCompletionsEndpoint

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, url, p.apiKey, chatReq)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: empty response from %s API: %s", ai.ErrInvalidResponse, p.id.String(), httpResponse.Status)
	}

	// Convert the vendor-specific response to the provider-agnostic format.
	result, err := chatCompletionToResponse(*resp)
	if err != nil {
		return nil, err
	}

	// Enrich span with response details now that we have a decoded result.
	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrHTTPStatusCode, httpResponse.StatusCode))
		span.AddEvent(observability.EventTokensReceived,
			observability.Int(observability.AttrLLMTokensTotal, result.Usage.Total()),
		)
	}

	return result, nil
}
