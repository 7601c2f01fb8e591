package ai

import "testing"

// TestMessageConstructors verifies that the three message constructors set the
// correct role and carry the content through unchanged.
func TestMessageConstructors(t *testing.T) {
	tests := []struct {
		name     string
		build    func() Message
		wantRole MessageRole
		wantText string
	}{
		{name: "SystemMessage", build: func() Message { return SystemMessage("be terse") }, wantRole: RoleSystem, wantText: "be terse"},
		{name: "UserMessage", build: func() Message { return UserMessage("hello") }, wantRole: RoleUser, wantText: "hello"},
		{name: "AssistantMessage", build: func() Message { return AssistantMessage("hi there") }, wantRole: RoleAssistant, wantText: "hi there"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			message := testCase.build()
			if message.Role != testCase.wantRole {
				t.Errorf("Role = %q, want %q", message.Role, testCase.wantRole)
			}
			if message.Content != testCase.wantText {
				t.Errorf("Content = %q, want %q", message.Content, testCase.wantText)
			}
		})
	}
}

// TestNewChatRequest_Defaults verifies that NewChatRequest applies the default
// token limit and text output format.
func TestNewChatRequest_Defaults(t *testing.T) {
	request := NewChatRequest("gpt-4o-mini")

	if request.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want %q", request.Model, "gpt-4o-mini")
	}
	if request.MaxTokens == nil {
		t.Fatal("MaxTokens is nil, want default")
	}
	if *request.MaxTokens != DefaultMaxTokens {
		t.Errorf("MaxTokens = %d, want %d", *request.MaxTokens, DefaultMaxTokens)
	}
	if request.OutputFormat != OutputText {
		t.Errorf("OutputFormat = %v, want OutputText", request.OutputFormat)
	}
	if len(request.Messages) != 0 {
		t.Errorf("Messages length = %d, want 0", len(request.Messages))
	}
}

// TestChatRequest_BuilderChaining verifies that the chainable With* methods set
// their fields on the returned copy and never mutate the receiver.
func TestChatRequest_BuilderChaining(t *testing.T) {
	base := NewChatRequest("claude-3-5-sonnet")

	built := base.
		WithSystemPrompt("you are a pirate").
		WithMessages(UserMessage("ahoy")).
		WithMaxTokens(256).
		WithTemperature(0.7).
		WithTopP(0.9).
		WithJSONOutput()

	if built.SystemPrompt != "you are a pirate" {
		t.Errorf("SystemPrompt = %q, want %q", built.SystemPrompt, "you are a pirate")
	}
	if len(built.Messages) != 1 || built.Messages[0].Content != "ahoy" {
		t.Errorf("Messages = %v, want single user message %q", built.Messages, "ahoy")
	}
	if built.MaxTokens == nil || *built.MaxTokens != 256 {
		t.Errorf("MaxTokens = %v, want 256", built.MaxTokens)
	}
	if built.Temperature == nil || *built.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", built.Temperature)
	}
	if built.TopP == nil || *built.TopP != 0.9 {
		t.Errorf("TopP = %v, want 0.9", built.TopP)
	}
	if built.OutputFormat != OutputJSON {
		t.Errorf("OutputFormat = %v, want OutputJSON", built.OutputFormat)
	}

	// The base request must be untouched by the chain.
	if base.SystemPrompt != "" {
		t.Errorf("base SystemPrompt = %q, want empty", base.SystemPrompt)
	}
	if len(base.Messages) != 0 {
		t.Errorf("base Messages length = %d, want 0", len(base.Messages))
	}
	if base.OutputFormat != OutputText {
		t.Errorf("base OutputFormat = %v, want OutputText", base.OutputFormat)
	}
}

// TestChatRequest_AddMessage_Branching verifies that two requests branched from
// the same base never share a backing array: appending to one branch must not
// leak into the other.
func TestChatRequest_AddMessage_Branching(t *testing.T) {
	base := NewChatRequest("gpt-4o").
		AddMessage(UserMessage("shared history"))

	left := base.AddMessage(UserMessage("left turn"))
	right := base.AddMessage(UserMessage("right turn"))

	if got := left.Messages[1].Content; got != "left turn" {
		t.Errorf("left branch message = %q, want %q", got, "left turn")
	}
	if got := right.Messages[1].Content; got != "right turn" {
		t.Errorf("right branch message = %q, want %q", got, "right turn")
	}
	if len(base.Messages) != 1 {
		t.Errorf("base Messages length = %d, want 1", len(base.Messages))
	}
}

// TestUsage_AddAndTotal verifies usage aggregation across multiple exchanges.
func TestUsage_AddAndTotal(t *testing.T) {
	total := Usage{}
	total = total.Add(Usage{InputTokens: 12, OutputTokens: 3})
	total = total.Add(Usage{InputTokens: 30, OutputTokens: 8})

	if total.InputTokens != 42 {
		t.Errorf("InputTokens = %d, want 42", total.InputTokens)
	}
	if total.OutputTokens != 11 {
		t.Errorf("OutputTokens = %d, want 11", total.OutputTokens)
	}
	if total.Total() != 53 {
		t.Errorf("Total() = %d, want 53", total.Total())
	}
}
