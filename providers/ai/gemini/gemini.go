package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/parley-dev/parley/internal/utils"
	"github.com/parley-dev/parley/providers/ai"
	"github.com/parley-dev/parley/providers/observability"
)

// GeminiProvider implements [ai.Provider] for Google's Gemini API. Use [New]
// or [NewWithKey] to construct a ready-to-use instance.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New returns a [GeminiProvider] initialized from environment variables. It
// reads GEMINI_API_KEY for authentication and fails with
// [ai.ErrAPIKeyNotFound] when the variable is unset or empty.
func New() (*GeminiProvider, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, "GEMINI_API_KEY")
	}

	return NewWithKey(apiKey), nil
}

// NewWithKey returns a [GeminiProvider] using the given API key. It never
// reads the credential from the environment, but still honors the
// GEMINI_API_BASE_URL endpoint override when set.
func NewWithKey(apiKey string) *GeminiProvider {
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = ai.Gemini.BaseURL()
	}

	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Name reports the vendor name: "gemini".
func (p *GeminiProvider) Name() string {
	return ai.Gemini.String()
}

// WithAPIKey sets the API key used for authenticating requests and returns
// the provider so calls can be chained. It overrides the value read from
// GEMINI_API_KEY.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API base URL and returns the provider so calls
// can be chained. Use this when targeting a proxy or local testing endpoint.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient replaces the default [http.Client] used for API calls and
// returns the provider so calls can be chained. Useful for injecting custom
// timeouts, transport layers, or test doubles.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements [ai.Provider] by sending a synchronous chat request
// to the generateContent endpoint and returning the response mapped to the
// generic [ai.ChatResponse] format. The model name is part of the URL path,
// so it is validated before the URL is built.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	// Enrich span if observability is wired into the context.
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, ai.Gemini.String()),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Gemini provider preparing request",
			observability.String(observability.AttrLLMProvider, ai.Gemini.String()),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
		)
	}

	// Guard against missing credentials before making a network call.
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrAPIKeyNotFound, "GEMINI_API_KEY")
	}

	// Convert the generic request to the Gemini wire format. This also
	// validates the request, so an empty conversation or a missing model
	// never hits the network.
	geminiReq, err := requestToGemini(request)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, request.Model)

	// Pass empty apiKey so DoPostSync does not inject a Bearer token;
	// Gemini authenticates via x-goog-api-key instead.
	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		url,
		"",
		geminiReq,
		utils.HeaderOption{Key: "x-goog-api-key", Value: p.apiKey},
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: empty response from Gemini API: %s", ai.ErrInvalidResponse, httpResponse.Status)
	}

	// Convert the vendor-specific response to the provider-agnostic format.
	result, err := geminiToGeneric(*resp)
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
