package openai

import (
	"github.com/leofalp/council/internal/utils"
	"github.com/leofalp/council/providers/ai"
)

// requestFromGeneric converts an ai.ChatRequest to the chat completions wire
// format. The generic message list maps one-to-one onto the flat messages
// array; an optional SystemPrompt is prepended as a system-role message.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			req.Temperature = utils.Ptr(float64(cfg.Temperature))
		}
		if cfg.TopP > 0 {
			req.TopP = utils.Ptr(float64(cfg.TopP))
		}
		if cfg.MaxTokens > 0 {
			req.MaxTokens = utils.Ptr(cfg.MaxTokens)
		}
	}

	return req
}

// responseToGeneric converts a chat completions response to the
// provider-agnostic ai.ChatResponse format. The caller has already verified
// that at least one choice is present.
func responseToGeneric(response chatCompletionResponse) *ai.ChatResponse {
	choice := response.Choices[0]

	result := &ai.ChatResponse{
		Id:           response.ID,
		Model:        response.Model,
		Object:       response.Object,
		Created:      response.Created,
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
	}

	if response.Usage != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
	}

	return result
}
