package gemini

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/council/internal/utils"
	"github.com/leofalp/council/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a Gemini generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents: buildContents(request.Messages),
	}

	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	if cfg := request.GenerationConfig; cfg != nil {
		genConfig := &generationConfig{}
		if cfg.Temperature > 0 {
			genConfig.Temperature = utils.Ptr(float64(cfg.Temperature))
		}
		if cfg.TopP > 0 {
			genConfig.TopP = utils.Ptr(float64(cfg.TopP))
		}
		if cfg.MaxTokens > 0 {
			genConfig.MaxOutputTokens = utils.Ptr(cfg.MaxTokens)
		}
		if genConfig.Temperature != nil || genConfig.TopP != nil || genConfig.MaxOutputTokens != nil {
			req.GenerationConfig = genConfig
		}
	}

	return req
}

// buildContents converts an ai.Message slice to Gemini content objects.
// Role mapping: user -> user, assistant -> model. System messages belong in
// systemInstruction; when one appears mid-conversation it is downgraded to a
// user turn rather than silently dropped.
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: msg.Content}},
		})
	}

	return contents
}

// geminiToGeneric converts a generateContent response to the
// provider-agnostic ai.ChatResponse format.
//
// Gemini does not return a response ID, so one is generated locally. An empty
// candidates array is a legitimate response (e.g. everything was filtered);
// it normalizes to an empty Content, not an error.
func geminiToGeneric(response generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      "gemini-" + uuid.NewString(),
		Model:   response.ModelVersion,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
	}

	if response.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.UsageMetadata.PromptTokenCount,
			CompletionTokens: response.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      response.UsageMetadata.TotalTokenCount,
		}
	}

	if len(response.Candidates) == 0 {
		result.FinishReason = "stop"
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
		}
		return result
	}

	first := response.Candidates[0]
	result.FinishReason = mapFinishReason(first.FinishReason)

	if first.Content != nil {
		var text strings.Builder
		for _, p := range first.Content.Parts {
			text.WriteString(p.Text)
		}
		result.Content = text.String()
	}

	return result
}

// mapFinishReason converts a Gemini finishReason value to the canonical
// finish_reason string used by ai.ChatResponse.
func mapFinishReason(reason string) string {
	switch reason {
	case "STOP", "":
		return "stop"
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "BLOCKLIST", "PROHIBITED_CONTENT":
		return "content_filter"
	default:
		return "stop"
	}
}
