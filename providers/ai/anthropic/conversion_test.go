package anthropic

import (
	"testing"

	"github.com/leofalp/council/providers/ai"
)

// TestRequestToAnthropic_SystemHoisting verifies that system-role messages
// and the SystemPrompt are merged into the top-level system field and never
// appear in the messages array.
func TestRequestToAnthropic_SystemHoisting(t *testing.T) {
	req := requestToAnthropic(ai.ChatRequest{
		Model:        "claude-sonnet-4-5",
		SystemPrompt: "you are terse",
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: "answer in French"},
			{Role: ai.RoleUser, Content: "hello"},
			{Role: ai.RoleAssistant, Content: "bonjour"},
		},
	})

	if req.System != "you are terse\nanswer in French" {
		t.Errorf("unexpected system field %q", req.System)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(req.Messages))
	}
	for _, msg := range req.Messages {
		if msg.Role == "system" {
			t.Errorf("system role leaked into messages array")
		}
	}
	if req.Messages[0].Role != "user" || req.Messages[1].Role != "assistant" {
		t.Errorf("unexpected roles: %q, %q", req.Messages[0].Role, req.Messages[1].Role)
	}
}

// TestRequestToAnthropic_MaxTokensDefault verifies the mandatory default and
// its override via GenerationConfig.
func TestRequestToAnthropic_MaxTokensDefault(t *testing.T) {
	req := requestToAnthropic(ai.ChatRequest{Model: "claude-sonnet-4-5"})
	if req.MaxTokens != defaultMaxTokens {
		t.Errorf("expected default max_tokens %d, got %d", defaultMaxTokens, req.MaxTokens)
	}

	req = requestToAnthropic(ai.ChatRequest{
		Model:            "claude-sonnet-4-5",
		GenerationConfig: &ai.GenerationConfig{MaxTokens: 1024},
	})
	if req.MaxTokens != 1024 {
		t.Errorf("expected overridden max_tokens 1024, got %d", req.MaxTokens)
	}
}

// TestAnthropicToGeneric_ConcatenatesTextBlocks verifies that multiple text
// blocks are concatenated in array order and non-text blocks are skipped.
func TestAnthropicToGeneric_ConcatenatesTextBlocks(t *testing.T) {
	result := anthropicToGeneric(anthropicResponse{
		ID: "msg_1",
		Content: []responseContentBlock{
			{Type: "text", Text: "first "},
			{Type: "tool_use"},
			{Type: "text", Text: "second"},
			{Type: "thinking", Text: "hidden"},
		},
		StopReason: "end_turn",
	})

	if result.Content != "first second" {
		t.Errorf("expected concatenated text blocks, got %q", result.Content)
	}
}

// TestAnthropicToGeneric_EmptyContentIsSuccess verifies that a response with
// no text blocks normalizes to empty content rather than an error value.
func TestAnthropicToGeneric_EmptyContentIsSuccess(t *testing.T) {
	result := anthropicToGeneric(anthropicResponse{ID: "msg_2", StopReason: "end_turn"})
	if result.Content != "" {
		t.Errorf("expected empty content, got %q", result.Content)
	}
	if result.FinishReason != "stop" {
		t.Errorf("expected finish reason stop, got %q", result.FinishReason)
	}
}

// TestMapStopReason covers the stop_reason to finish_reason table.
func TestMapStopReason(t *testing.T) {
	tests := map[string]string{
		"end_turn":      "stop",
		"stop_sequence": "stop",
		"max_tokens":    "length",
		"tool_use":      "stop",
		"":              "stop",
	}
	for input, want := range tests {
		if got := mapStopReason(input); got != want {
			t.Errorf("mapStopReason(%q) = %q, want %q", input, got, want)
		}
	}
}
