package anthropic

import (
	"strings"
	"time"

	"github.com/leofalp/council/internal/utils"
	"github.com/leofalp/council/providers/ai"
)

// defaultMaxTokens is used when the caller does not specify a value.
// Anthropic rejects requests without max_tokens, so the adapter must always
// supply one.
const defaultMaxTokens = 8192

// requestToAnthropic converts an ai.ChatRequest into an anthropicRequest
// ready to POST to the Messages API.
//
// System-role messages cannot appear in Anthropic's messages array; they are
// hoisted into the top-level system field together with the request's
// SystemPrompt, joined in order of appearance.
func requestToAnthropic(request ai.ChatRequest) anthropicRequest {
	req := anthropicRequest{
		Model:     request.Model,
		MaxTokens: defaultMaxTokens,
	}

	var systemParts []string
	if request.SystemPrompt != "" {
		systemParts = append(systemParts, request.SystemPrompt)
	}

	for _, msg := range request.Messages {
		switch msg.Role {
		case ai.RoleSystem:
			systemParts = append(systemParts, msg.Content)

		case ai.RoleUser, ai.RoleAssistant:
			req.Messages = append(req.Messages, anthropicMessage{
				Role:    string(msg.Role),
				Content: []anthropicContentBlock{{Type: "text", Text: msg.Content}},
			})
		}
	}

	req.System = strings.Join(systemParts, "\n")

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			req.Temperature = utils.Ptr(float64(cfg.Temperature))
		}
		if cfg.TopP > 0 {
			req.TopP = utils.Ptr(float64(cfg.TopP))
		}
		if cfg.MaxTokens > 0 {
			req.MaxTokens = cfg.MaxTokens
		}
	}

	return req
}

// anthropicToGeneric converts a Messages API response to the
// provider-agnostic ai.ChatResponse format.
//
// Text blocks are concatenated in array order into a single Content string.
// Non-text blocks (tool_use, thinking, future types) are skipped so the
// normalized content stays plain text.
func anthropicToGeneric(response anthropicResponse) *ai.ChatResponse {
	var content strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &ai.ChatResponse{
		Id:           response.ID,
		Model:        response.Model,
		Object:       "chat.completion",
		Created:      time.Now().Unix(),
		Content:      content.String(),
		FinishReason: mapStopReason(response.StopReason),
		Usage: &ai.Usage{
			PromptTokens:     response.Usage.InputTokens,
			CompletionTokens: response.Usage.OutputTokens,
			TotalTokens:      response.Usage.InputTokens + response.Usage.OutputTokens,
		},
	}
}

// mapStopReason converts an Anthropic stop_reason value to the canonical
// finish_reason string used by ai.ChatResponse.
func mapStopReason(stopReason string) string {
	switch stopReason {
	case "end_turn", "stop_sequence":
		return "stop"
	case "max_tokens":
		return "length"
	default:
		return "stop"
	}
}
