package anthropic

import (
	"fmt"

	"github.com/parley-dev/parley/providers/ai"
)

// jsonModeInstruction is joined onto the system prompt when JSON output is
// requested. The Messages API has no native JSON switch, so the instruction
// carries the whole contract and asks for an immediate opening brace.
const jsonModeInstruction = "You must respond with valid JSON only. Start your response with an opening brace {."

// requestToAnthropic converts a generic [ai.ChatRequest] into the Messages
// wire format. System-role messages never travel in the messages array:
// Anthropic accepts system text only through the top-level system field.
func requestToAnthropic(request ai.ChatRequest) (*anthropicRequest, error) {
	if request.Model == "" {
		return nil, fmt.Errorf("%w: model", ai.ErrMissingField)
	}

	messages := make([]anthropicMessage, 0, len(request.Messages))
	for _, message := range request.Messages {
		if message.Role == ai.RoleSystem {
			continue
		}
		messages = append(messages, anthropicMessage{Role: string(message.Role), Content: message.Content})
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: at least one user or assistant message is required", ai.ErrMissingField)
	}

	system := request.SystemPrompt
	if request.OutputFormat == ai.OutputJSON {
		if system == "" {
			system = jsonModeInstruction
		} else {
			system = system + " " + jsonModeInstruction
		}
	}

	// max_tokens is mandatory on the wire, so a request without one falls
	// back to the shared default.
	maxTokens := ai.DefaultMaxTokens
	if request.MaxTokens != nil {
		maxTokens = *request.MaxTokens
	}

	return &anthropicRequest{
		Model:       request.Model,
		Messages:    messages,
		System:      system,
		MaxTokens:   maxTokens,
		Temperature: request.Temperature,
		TopP:        request.TopP,
	}, nil
}

// anthropicToGeneric maps a Messages response onto the generic
// [ai.ChatResponse]. The content array can carry several typed blocks; the
// neutral content is the text of the first one.
func anthropicToGeneric(response anthropicResponse) (*ai.ChatResponse, error) {
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("%w: no content in response", ai.ErrInvalidResponse)
	}

	var usage ai.Usage
	if response.Usage != nil {
		usage = ai.Usage{
			InputTokens:  response.Usage.InputTokens,
			OutputTokens: response.Usage.OutputTokens,
		}
	}

	return ai.NewChatResponse(response.Content[0].Text, usage), nil
}
