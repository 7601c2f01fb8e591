package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/parley-dev/parley/providers/ai"
	"github.com/parley-dev/parley/providers/ai/anthropic"
	"github.com/parley-dev/parley/providers/ai/gemini"
	"github.com/parley-dev/parley/providers/ai/openai"
	"github.com/parley-dev/parley/providers/observability"
)

// Client is a thin facade over a vendor adapter. It holds no mutable state
// after construction, so a single instance is safe for concurrent use.
type Client struct {
	provider     ai.Provider
	defaultModel string
	observer     observability.Provider
}

// Option configures a [Client] during construction.
type Option func(*Client)

// WithObserver wires an observability provider into the client. Every send
// is then wrapped in a tracing span and recorded in request, duration, and
// token metrics.
func WithObserver(observer observability.Provider) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// WithHTTPClient replaces the HTTP client used by the underlying adapter.
// Useful for injecting custom timeouts, transport layers, or test doubles.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if c.provider != nil {
			c.provider = c.provider.WithHttpClient(httpClient)
		}
	}
}

// WithDefaultModel sets the model used by [Client.Send] and by requests that
// do not name one. [FromModel] sets it implicitly from the resolved string.
func WithDefaultModel(model string) Option {
	return func(c *Client) {
		c.defaultModel = model
	}
}

func newClient(provider ai.Provider, defaultModel string, opts ...Option) *Client {
	c := &Client{
		provider:     provider,
		defaultModel: defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// New builds a client for the given vendor, reading the credential from the
// vendor's environment variable. A missing credential yields
// [ai.ErrAPIKeyNotFound]; an unrecognized id yields [ai.ErrUnknownProvider].
func New(id ai.ProviderID, opts ...Option) (*Client, error) {
	provider, err := buildProvider(id)
	if err != nil {
		return nil, err
	}

	return newClient(provider, "", opts...), nil
}

// NewWithKey builds a client for the given vendor with an explicit API key,
// never touching the environment for the credential.
func NewWithKey(id ai.ProviderID, apiKey string, opts ...Option) (*Client, error) {
	provider, err := buildProviderWithKey(id, apiKey)
	if err != nil {
		return nil, err
	}

	return newClient(provider, "", opts...), nil
}

// NewFromProvider wraps an already-built adapter. This is the injection
// point for custom adapters and test doubles.
func NewFromProvider(provider ai.Provider, opts ...Option) *Client {
	return newClient(provider, "", opts...)
}

// FromModel resolves a free-form model string ("vendor/model" or a bare
// well-known name, see [ai.ResolveModel]) and returns a client bound to that
// vendor with the resolved name as the default model.
//
// When the vendor's credential is missing from the environment, the key is
// requested interactively (prompt on stderr, one line read from stdin) and
// stored in the process environment so subsequent clients reuse it. The
// environment write is process-wide; do not call this concurrently with
// other client construction.
func FromModel(model string, opts ...Option) (*Client, error) {
	return fromModel(model, os.Stdin, os.Stderr, opts...)
}

// FromModelWithKey is [FromModel] with an explicit API key and no prompting.
func FromModelWithKey(model, apiKey string, opts ...Option) (*Client, error) {
	id, modelName, err := ai.ResolveModel(model)
	if err != nil {
		return nil, err
	}

	provider, err := buildProviderWithKey(id, apiKey)
	if err != nil {
		return nil, err
	}

	return newClient(provider, modelName, opts...), nil
}

// fromModel implements FromModel against abstract streams so the prompt flow
// is testable without a TTY.
func fromModel(model string, in io.Reader, out io.Writer, opts ...Option) (*Client, error) {
	id, modelName, err := ai.ResolveModel(model)
	if err != nil {
		return nil, err
	}

	if os.Getenv(id.EnvVar()) == "" {
		apiKey, err := promptForKey(id.EnvVar(), in, out)
		if err != nil {
			return nil, err
		}
		if err := os.Setenv(id.EnvVar(), apiKey); err != nil {
			return nil, fmt.Errorf("storing %s: %w", id.EnvVar(), err)
		}
	}

	provider, err := buildProvider(id)
	if err != nil {
		return nil, err
	}

	return newClient(provider, modelName, opts...), nil
}

// promptForKey writes a prompt naming the credential variable and reads one
// line of input. Surrounding whitespace is trimmed; empty input is rejected.
func promptForKey(envVar string, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintf(out, "Enter your %s: ", envVar)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", envVar, err)
	}

	apiKey := strings.TrimSpace(line)
	if apiKey == "" {
		return "", fmt.Errorf("%w: %s (empty input)", ai.ErrAPIKeyNotFound, envVar)
	}

	return apiKey, nil
}

// buildProvider constructs the adapter for id with the credential taken from
// the environment.
func buildProvider(id ai.ProviderID) (ai.Provider, error) {
	switch id {
	case ai.OpenAI:
		return openai.New()
	case ai.Anthropic:
		return anthropic.New()
	case ai.Gemini:
		return gemini.New()
	case ai.Groq:
		return openai.NewGroq()
	}

	return nil, fmt.Errorf("%w: %q", ai.ErrUnknownProvider, id)
}

// buildProviderWithKey constructs the adapter for id with an explicit key.
func buildProviderWithKey(id ai.ProviderID, apiKey string) (ai.Provider, error) {
	switch id {
	case ai.OpenAI:
		return openai.NewWithKey(apiKey), nil
	case ai.Anthropic:
		return anthropic.NewWithKey(apiKey), nil
	case ai.Gemini:
		return gemini.NewWithKey(apiKey), nil
	case ai.Groq:
		return openai.NewGroqWithKey(apiKey), nil
	}

	return nil, fmt.Errorf("%w: %q", ai.ErrUnknownProvider, id)
}

// DefaultModel returns the model used when a request does not name one.
func (c *Client) DefaultModel() string {
	return c.defaultModel
}

// Provider returns the underlying vendor adapter.
func (c *Client) Provider() ai.Provider {
	return c.provider
}
