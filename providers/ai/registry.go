package ai

import (
	"fmt"
	"strings"
)

// ProviderID identifies a supported LLM vendor.
type ProviderID string

const (
	OpenAI    ProviderID = "openai"
	Anthropic ProviderID = "anthropic"
	Gemini    ProviderID = "gemini"
	Groq      ProviderID = "groq"
)

func (p ProviderID) String() string {
	return string(p)
}

// EnvVar returns the environment variable holding the provider's API key.
func (p ProviderID) EnvVar() string {
	switch p {
	case OpenAI:
		return "OPENAI_API_KEY"
	case Anthropic:
		return "ANTHROPIC_API_KEY"
	case Gemini:
		return "GEMINI_API_KEY"
	case Groq:
		return "GROQ_API_KEY"
	}
	return ""
}

// BaseURL returns the provider's default API endpoint root.
func (p ProviderID) BaseURL() string {
	switch p {
	case OpenAI:
		return "https://api.openai.com/v1"
	case Anthropic:
		return "https://api.anthropic.com/v1"
	case Gemini:
		return "https://generativelanguage.googleapis.com/v1beta"
	case Groq:
		return "https://api.groq.com/openai/v1"
	}
	return ""
}

// ResolveModel maps a model string to its provider and the bare model name.
//
// A string containing "/" is treated as an explicit "vendor/model" pair:
// the prefix before the first slash is matched case-insensitively against
// the known vendors (openai, anthropic, google, gemini, groq) and the
// remainder is returned verbatim, slashes included. An unrecognized prefix
// yields ErrUnknownProvider.
//
// A bare string is inferred from well-known model name prefixes: gpt → OpenAI,
// claude → Anthropic, gemini → Gemini, llama/mixtral → Groq. No match yields
// ErrCannotInferProvider. Resolution is pure: no I/O, same input same output.
func ResolveModel(model string) (ProviderID, string, error) {
	if prefix, rest, found := strings.Cut(model, "/"); found {
		switch strings.ToLower(prefix) {
		case "openai":
			return OpenAI, rest, nil
		case "anthropic":
			return Anthropic, rest, nil
		case "google", "gemini":
			return Gemini, rest, nil
		case "groq":
			return Groq, rest, nil
		default:
			return "", "", fmt.Errorf("%w: %q (supported prefixes: openai, anthropic, google, gemini, groq)", ErrUnknownProvider, prefix)
		}
	}

	lower := strings.ToLower(model)
	switch {
	case strings.HasPrefix(lower, "gpt"):
		return OpenAI, model, nil
	case strings.HasPrefix(lower, "claude"):
		return Anthropic, model, nil
	case strings.HasPrefix(lower, "gemini"):
		return Gemini, model, nil
	case strings.HasPrefix(lower, "llama"), strings.HasPrefix(lower, "mixtral"):
		return Groq, model, nil
	}
	return "", "", fmt.Errorf("%w: %q (use an explicit \"vendor/model\" string)", ErrCannotInferProvider, model)
}
