package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parley-dev/parley/providers/ai"
)

// TestSendMessage_Success runs a full round trip against a mock Messages
// endpoint, asserting the Anthropic-specific headers and body fields and the
// mapping of the canned reply onto the generic response.
func TestSendMessage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("path: got %q, want %q", r.URL.Path, "/messages")
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key: got %q, want %q", got, "test-key")
		}
		if got := r.Header.Get("anthropic-version"); got != anthropicVersion {
			t.Errorf("anthropic-version: got %q, want %q", got, anthropicVersion)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization: got %q, want it absent", got)
		}

		var body anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if body.Model != "claude-sonnet-4-5" {
			t.Errorf("model: got %q, want %q", body.Model, "claude-sonnet-4-5")
		}
		if body.System != "You are terse." {
			t.Errorf("system: got %q, want %q", body.System, "You are terse.")
		}
		if body.MaxTokens != ai.DefaultMaxTokens {
			t.Errorf("max_tokens: got %d, want %d", body.MaxTokens, ai.DefaultMaxTokens)
		}
		if len(body.Messages) != 1 || body.Messages[0].Role != "user" {
			t.Errorf("messages: got %+v, want the single user message", body.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_123",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5",
			"content": [{"type": "text", "text": "Hi Alice!"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 12, "output_tokens": 3}
		}`))
	}))
	defer server.Close()

	provider := NewWithKey("test-key").WithBaseURL(server.URL)

	response, err := provider.SendMessage(context.Background(),
		ai.NewChatRequest("claude-sonnet-4-5").
			WithSystemPrompt("You are terse.").
			WithMessages(ai.UserMessage("Hello, my name is Alice")))
	if err != nil {
		t.Fatalf("SendMessage: unexpected error: %v", err)
	}
	if response.Content != "Hi Alice!" {
		t.Errorf("Content: got %q, want %q", response.Content, "Hi Alice!")
	}
	if response.Usage.InputTokens != 12 || response.Usage.OutputTokens != 3 {
		t.Errorf("Usage: got %+v, want input 12 / output 3", response.Usage)
	}
}

// TestSendMessage_APIError verifies that a non-2xx reply surfaces as an
// *ai.APIError carrying the status code and the raw vendor body.
func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "max_tokens required"}}`))
	}))
	defer server.Close()

	provider := NewWithKey("test-key").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(),
		ai.NewChatRequest("claude-sonnet-4-5").WithMessages(ai.UserMessage("hi")))

	var apiErr *ai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *ai.APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode: got %d, want %d", apiErr.StatusCode, http.StatusBadRequest)
	}
	if !strings.Contains(apiErr.Body, "invalid_request_error") {
		t.Errorf("Body: got %q, want it to contain the vendor error type", apiErr.Body)
	}
}

// TestSendMessage_MissingAPIKey verifies the credential guard fires before
// any network call is attempted.
func TestSendMessage_MissingAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server despite a missing API key")
	}))
	defer server.Close()

	provider := NewWithKey("").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(),
		ai.NewChatRequest("claude-sonnet-4-5").WithMessages(ai.UserMessage("hi")))
	if !errors.Is(err, ai.ErrAPIKeyNotFound) {
		t.Fatalf("expected ErrAPIKeyNotFound, got %v", err)
	}
}

// TestNew_EnvironmentKey verifies the environment-driven constructor: a
// present key succeeds, an empty one fails naming the variable.
func TestNew_EnvironmentKey(t *testing.T) {
	t.Run("key present", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "env-key")
		provider, err := New()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if provider.apiKey != "env-key" {
			t.Errorf("apiKey: got %q, want %q", provider.apiKey, "env-key")
		}
		if provider.Name() != "anthropic" {
			t.Errorf("Name(): got %q, want %q", provider.Name(), "anthropic")
		}
	})

	t.Run("key empty", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")
		_, err := New()
		if !errors.Is(err, ai.ErrAPIKeyNotFound) {
			t.Fatalf("expected ErrAPIKeyNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
			t.Errorf("error should name the variable, got %q", err.Error())
		}
	})
}
