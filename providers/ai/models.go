package ai

/*
	##### PROVIDER INPUT #####
*/

// DefaultMaxTokens is applied by NewChatRequest and used as the fallback
// whenever a provider requires an explicit token limit.
const DefaultMaxTokens = 1024

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// SystemMessage builds a message with RoleSystem.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a message with RoleUser.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds a message with RoleAssistant.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// OutputFormat selects how the model is asked to shape its answer.
type OutputFormat int

const (
	// OutputText is the default free-form text response.
	OutputText OutputFormat = iota
	// OutputJSON asks the provider for a JSON object response, using the
	// provider's native switch when one exists and prompt instructions
	// otherwise.
	OutputJSON
)

// ChatRequest represents a provider-agnostic chat completion request.
// Build one with NewChatRequest and the chainable With* methods; every
// method returns a modified copy, so a base request can branch into
// independent variants.
type ChatRequest struct {
	Model        string       `json:"model,omitempty"`         // Model name or identifier
	Messages     []Message    `json:"messages"`                // Conversation messages, system prompt excluded
	SystemPrompt string       `json:"system_prompt,omitempty"` // Optional system prompt
	MaxTokens    *int         `json:"max_tokens,omitempty"`    // Response token limit; nil means provider default
	Temperature  *float64     `json:"temperature,omitempty"`   // Sampling temperature [0..2]
	TopP         *float64     `json:"top_p,omitempty"`         // Nucleus sampling [0..1]
	OutputFormat OutputFormat `json:"output_format,omitempty"` // Text (default) or JSON
}

// NewChatRequest creates a request for the given model with the default
// token limit and text output.
func NewChatRequest(model string) ChatRequest {
	maxTokens := DefaultMaxTokens
	return ChatRequest{
		Model:        model,
		MaxTokens:    &maxTokens,
		OutputFormat: OutputText,
	}
}

// WithMessages replaces the conversation messages.
func (r ChatRequest) WithMessages(messages ...Message) ChatRequest {
	r.Messages = messages
	return r
}

// AddMessage appends a message to the conversation. The receiver's backing
// array is never shared with the result, so branching from one base request
// is safe.
func (r ChatRequest) AddMessage(message Message) ChatRequest {
	r.Messages = append(r.Messages[:len(r.Messages):len(r.Messages)], message)
	return r
}

// WithSystemPrompt sets the system prompt.
func (r ChatRequest) WithSystemPrompt(prompt string) ChatRequest {
	r.SystemPrompt = prompt
	return r
}

// WithMaxTokens sets the response token limit.
func (r ChatRequest) WithMaxTokens(maxTokens int) ChatRequest {
	r.MaxTokens = &maxTokens
	return r
}

// WithTemperature sets the sampling temperature.
func (r ChatRequest) WithTemperature(temperature float64) ChatRequest {
	r.Temperature = &temperature
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r ChatRequest) WithTopP(topP float64) ChatRequest {
	r.TopP = &topP
	return r
}

// WithOutputFormat sets the output format.
func (r ChatRequest) WithOutputFormat(format OutputFormat) ChatRequest {
	r.OutputFormat = format
	return r
}

// WithJSONOutput is shorthand for WithOutputFormat(OutputJSON).
func (r ChatRequest) WithJSONOutput() ChatRequest {
	return r.WithOutputFormat(OutputJSON)
}

/*
	##### PROVIDER OUTPUT #####
*/

// Usage holds token accounting for a single exchange.
type Usage struct {
	InputTokens  int `json:"input_tokens"`  // Tokens consumed by the prompt
	OutputTokens int `json:"output_tokens"` // Tokens produced by the model
}

// Add returns the sum of two usages, for aggregating across a conversation.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
	}
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// ChatResponse represents the provider-agnostic result of a chat completion.
type ChatResponse struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// NewChatResponse builds a response from content and usage.
func NewChatResponse(content string, usage Usage) *ChatResponse {
	return &ChatResponse{Content: content, Usage: usage}
}
