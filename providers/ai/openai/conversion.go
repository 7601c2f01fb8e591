package openai

import (
	"fmt"

	"github.com/parley-dev/parley/providers/ai"
)

// jsonModeInstruction is added to the system prompt when JSON output is
// requested. The response_format switch alone is not sufficient: both OpenAI
// and Groq require the prompt itself to mention JSON.
const jsonModeInstruction = "You must respond with valid JSON only."

// requestToChatCompletion converts a generic [ai.ChatRequest] into the Chat
// Completions wire format. The conversion is pure and deterministic, so
// converting the same request twice yields identical payloads.
//
// The system prompt, when present, becomes a system message at position 0.
// In JSON mode the instruction is folded into the leading system message, or
// inserted as a new one when the conversation has none.
func requestToChatCompletion(request ai.ChatRequest) (*chatCompletionRequest, error) {
	if request.Model == "" {
		return nil, fmt.Errorf("%w: model", ai.ErrMissingField)
	}

	messages := make([]chatMessage, 0, len(request.Messages)+1)
	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: string(ai.RoleSystem), Content: request.SystemPrompt})
	}
	for _, message := range request.Messages {
		messages = append(messages, chatMessage{Role: string(message.Role), Content: message.Content})
	}

	var responseFormat *chatResponseFormat
	if request.OutputFormat == ai.OutputJSON {
		responseFormat = &chatResponseFormat{Type: "json_object"}
		if len(messages) > 0 && messages[0].Role == string(ai.RoleSystem) {
			messages[0].Content += " " + jsonModeInstruction
		} else {
			messages = append([]chatMessage{{Role: string(ai.RoleSystem), Content: jsonModeInstruction}}, messages...)
		}
	}

	// Checked after the JSON-mode step, so its injected system message counts.
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: messages", ai.ErrMissingField)
	}

	return &chatCompletionRequest{
		Model:          request.Model,
		Messages:       messages,
		Temperature:    request.Temperature,
		TopP:           request.TopP,
		MaxTokens:      request.MaxTokens,
		ResponseFormat: responseFormat,
	}, nil
}

// chatCompletionToResponse maps a Chat Completions response onto the generic
// [ai.ChatResponse]. Only the first choice is read; absent usage maps to zero.
func chatCompletionToResponse(response chatCompletionResponse) (*ai.ChatResponse, error) {
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ai.ErrInvalidResponse)
	}

	var usage ai.Usage
	if response.Usage != nil {
		usage = ai.Usage{
			InputTokens:  response.Usage.PromptTokens,
			OutputTokens: response.Usage.CompletionTokens,
		}
	}

	return ai.NewChatResponse(response.Choices[0].Message.Content, usage), nil
}
