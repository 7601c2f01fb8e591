package gemini

import (
	"fmt"

	"github.com/parley-dev/parley/providers/ai"
)

// requestToGemini converts a generic [ai.ChatRequest] into the
// generateContent wire format. Assistant messages map to role "model", user
// messages keep role "user", and system-role messages are dropped: Gemini
// accepts system text only through the systemInstruction field.
func requestToGemini(request ai.ChatRequest) (*generateContentRequest, error) {
	if request.Model == "" {
		return nil, fmt.Errorf("%w: model", ai.ErrMissingField)
	}

	contents := buildContents(request.Messages)
	if len(contents) == 0 {
		return nil, fmt.Errorf("%w: at least one user or assistant message is required", ai.ErrMissingField)
	}

	out := &generateContentRequest{
		Contents:         contents,
		GenerationConfig: buildGenerationConfig(request),
	}

	if request.SystemPrompt != "" {
		out.SystemInstruction = &systemInstruction{Parts: []part{{Text: request.SystemPrompt}}}
	}

	return out, nil
}

// buildContents maps conversation messages onto Gemini contents, one turn
// per message.
func buildContents(messages []ai.Message) []content {
	contents := make([]content, 0, len(messages))
	for _, message := range messages {
		var role string
		switch message.Role {
		case ai.RoleAssistant:
			role = "model"
		case ai.RoleSystem:
			continue
		default:
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: message.Content}}})
	}
	return contents
}

// buildGenerationConfig assembles the generation parameters, returning nil
// when every field is unset so the block stays off the wire. JSON output
// mode is Gemini's native responseMimeType switch; no prompt is mutated.
func buildGenerationConfig(request ai.ChatRequest) *generationConfig {
	config := &generationConfig{
		Temperature:     request.Temperature,
		TopP:            request.TopP,
		MaxOutputTokens: request.MaxTokens,
	}
	if request.OutputFormat == ai.OutputJSON {
		config.ResponseMimeType = "application/json"
	}

	if config.Temperature == nil && config.TopP == nil && config.MaxOutputTokens == nil && config.ResponseMimeType == "" {
		return nil
	}
	return config
}

// geminiToGeneric maps a generateContent response onto the generic
// [ai.ChatResponse]. The neutral content is the text of the first candidate's
// first part; later parts are not appended.
func geminiToGeneric(response generateContentResponse) (*ai.ChatResponse, error) {
	if len(response.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates in response", ai.ErrInvalidResponse)
	}

	first := response.Candidates[0]
	if first.Content == nil || len(first.Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no parts in response", ai.ErrInvalidResponse)
	}

	var usage ai.Usage
	if response.UsageMetadata != nil {
		usage = ai.Usage{
			InputTokens:  response.UsageMetadata.PromptTokenCount,
			OutputTokens: response.UsageMetadata.CandidatesTokenCount,
		}
	}

	return ai.NewChatResponse(first.Content.Parts[0].Text, usage), nil
}
