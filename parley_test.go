package parley_test

import (
	"errors"
	"testing"

	"github.com/parley-dev/parley"
)

// TestRootSurface_FromModelWithKey verifies that the whole construction path
// is reachable through the root package alone.
func TestRootSurface_FromModelWithKey(t *testing.T) {
	c, err := parley.FromModelWithKey("groq/llama-3.3-70b-versatile", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Provider().Name(); got != "groq" {
		t.Errorf("provider: got %q, want %q", got, "groq")
	}
	if got := c.DefaultModel(); got != "llama-3.3-70b-versatile" {
		t.Errorf("default model: got %q", got)
	}
}

// TestRootSurface_Errors verifies that the re-exported sentinels match the
// errors produced deeper in the stack.
func TestRootSurface_Errors(t *testing.T) {
	if _, err := parley.FromModelWithKey("xyz123", "k"); !errors.Is(err, parley.ErrCannotInferProvider) {
		t.Errorf("expected ErrCannotInferProvider, got %v", err)
	}
	if _, err := parley.New(parley.ProviderID("cohere")); !errors.Is(err, parley.ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}

// TestRootSurface_RequestHelpers verifies the aliased builders compose.
func TestRootSurface_RequestHelpers(t *testing.T) {
	request := parley.NewChatRequest("gpt-4o").
		WithSystemPrompt("be brief").
		WithMessages(parley.UserMessage("hi")).
		AddMessage(parley.AssistantMessage("hello"))

	if request.Model != "gpt-4o" {
		t.Errorf("Model: got %q", request.Model)
	}
	if request.SystemPrompt != "be brief" {
		t.Errorf("SystemPrompt: got %q", request.SystemPrompt)
	}
	if len(request.Messages) != 2 {
		t.Errorf("Messages: got %d, want 2", len(request.Messages))
	}
}
