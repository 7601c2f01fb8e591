package ai

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by providers and the client facade. Wrap them
// with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrAPIKeyNotFound indicates the credential for a provider is missing
	// from the environment (an empty value counts as missing).
	ErrAPIKeyNotFound = errors.New("api key not found")

	// ErrMissingField indicates the request is invalid before any network
	// I/O, such as an empty message list or a missing model name.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidResponse indicates the provider answered 2xx but the payload
	// is semantically unusable (no choices, candidates, or content).
	ErrInvalidResponse = errors.New("invalid provider response")

	// ErrUnknownProvider indicates an explicit "vendor/" prefix that no
	// registered provider matches.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrCannotInferProvider indicates a bare model name that matched no
	// inference heuristic.
	ErrCannotInferProvider = errors.New("cannot infer provider from model name")

	// ErrTransport indicates a network-level failure (DNS, dial, TLS, or
	// reading the response body).
	ErrTransport = errors.New("transport error")

	// ErrDecode indicates the provider returned malformed JSON.
	ErrDecode = errors.New("cannot decode provider response")
)

// APIError is returned when a provider answers with a non-2xx status.
// Body holds the raw response body so callers can inspect the vendor's
// error payload; Error renders a bounded preview of it.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 512 {
		body = body[:512] + "..."
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, body)
}
