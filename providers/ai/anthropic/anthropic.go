package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/parley-dev/parley/internal/utils"
	"github.com/parley-dev/parley/providers/ai"
	"github.com/parley-dev/parley/providers/observability"
)

const (
	// messagesEndpoint is the path for the Messages API endpoint.
	messagesEndpoint = "/messages"

	// anthropicVersion is the required anthropic-version header value.
	// Anthropic uses it to version-lock response formats independently of the URL.
	anthropicVersion = "2023-06-01"
)

// AnthropicProvider implements [ai.Provider] for Anthropic's Messages API.
// Use [New] or [NewWithKey] to construct a ready-to-use instance.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns an [AnthropicProvider] initialized from environment variables.
// It reads ANTHROPIC_API_KEY for authentication and fails with
// [ai.ErrAPIKeyNotFound] when the variable is unset or empty.
func New() (*AnthropicProvider, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, "ANTHROPIC_API_KEY")
	}

	return NewWithKey(apiKey), nil
}

// NewWithKey returns an [AnthropicProvider] using the given API key. It never
// reads the credential from the environment, but still honors the
// ANTHROPIC_API_BASE_URL endpoint override when set.
func NewWithKey(apiKey string) *AnthropicProvider {
	baseURL := os.Getenv("ANTHROPIC_API_BASE_URL")
	if baseURL == "" {
		baseURL = ai.Anthropic.BaseURL()
	}

	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name reports the vendor name: "anthropic".
func (p *AnthropicProvider) Name() string {
	return ai.Anthropic.String()
}

// WithAPIKey sets the API key used for authenticating requests and returns
// the provider so calls can be chained. It overrides the value read from
// ANTHROPIC_API_KEY.
func (p *AnthropicProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API base URL and returns the provider so calls
// can be chained. Use this when targeting a proxy or local testing endpoint.
func (p *AnthropicProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient replaces the default [http.Client] used for API calls and
// returns the provider so calls can be chained. Useful for injecting custom
// timeouts, transport layers, or test doubles.
func (p *AnthropicProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// buildHeaders constructs the HTTP headers required for every Anthropic
// request. x-api-key carries the credential (Anthropic does not use Bearer
// tokens) and anthropic-version pins the wire format.
func (p *AnthropicProvider) buildHeaders() []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "x-api-key", Value: p.apiKey},
		{Key: "anthropic-version", Value: anthropicVersion},
	}
}

// SendMessage implements [ai.Provider] by sending a synchronous chat request
// to the Messages API and returning the response mapped to the generic
// [ai.ChatResponse] format. It returns an error if the API key is unset, the
// request has no user or assistant message, the HTTP call fails, or the
// response carries no content.
func (p *AnthropicProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	// Enrich span if observability is wired into the context.
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, ai.Anthropic.String()),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Anthropic provider preparing request",
			observability.String(observability.AttrLLMProvider, ai.Anthropic.String()),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
		)
	}

	// Guard against missing credentials before making a network call.
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, "ANTHROPIC_API_KEY")
	}

	// Convert the generic request to the Messages wire format. This also
	// validates the request, so an empty conversation never hits the network.
	anthropicReq, err := requestToAnthropic(request)
	if err != nil {
		return nil, err
	}

	url := p.baseURL + messagesEndpoint

	// Pass empty apiKey so DoPostSync does not inject a Bearer token;
	// Anthropic authenticates via x-api-key instead.
	httpResponse, resp, err := utils.DoPostSync[anthropicResponse](
		ctx,
		p.client,
		url,
		"",
		anthropicReq,
		p.buildHeaders()...,
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: empty response from Anthropic API: %s", ai.ErrInvalidResponse, httpResponse.Status)
	}

	// Convert the vendor-specific response to the provider-agnostic format.
	result, err := anthropicToGeneric(*resp)
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
