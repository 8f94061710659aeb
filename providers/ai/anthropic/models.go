package anthropic

/*
	MESSAGES API - INPUT
*/

// anthropicRequest represents the /messages request format.
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"` // mandatory, no API-side default
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"`
	TopP        *float64           `json:"top_p,omitempty"`
}

// anthropicMessage is one conversation turn. Content is always sent in the
// block-array form; Anthropic also accepts a plain string but the array form
// keeps request building uniform.
type anthropicMessage struct {
	Role    string                  `json:"role"` // "user" or "assistant"
	Content []anthropicContentBlock `json:"content"`
}

type anthropicContentBlock struct {
	Type string `json:"type"` // "text"
	Text string `json:"text,omitempty"`
}

/*
	MESSAGES API - OUTPUT
*/

// anthropicResponse represents the /messages response envelope.
type anthropicResponse struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Role       string                 `json:"role"`
	Content    []responseContentBlock `json:"content"`
	Model      string                 `json:"model"`
	StopReason string                 `json:"stop_reason"`
	Usage      anthropicUsage         `json:"usage"`
}

// responseContentBlock is one entry of the response content array. Anthropic
// interleaves blocks of different types ("text", "tool_use", "thinking");
// only text blocks contribute to the normalized content.
type responseContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
