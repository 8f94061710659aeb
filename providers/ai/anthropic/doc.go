// Package anthropic implements the [ai.Provider] interface for Anthropic's
// Messages API.
//
// It handles request conversion from the generic [ai.ChatRequest] format to
// Anthropic's Messages wire format and response mapping back to
// [ai.ChatResponse]. Anthropic authenticates with an x-api-key header rather
// than a Bearer token, pins its wire format with an anthropic-version header,
// and requires max_tokens on every request; the adapter supplies a default
// when the caller does not.
//
// The primary entry point is [New], which reads ANTHROPIC_API_KEY and
// ANTHROPIC_API_BASE_URL from the environment. Use
// [AnthropicProvider.WithAPIKey], [AnthropicProvider.WithBaseURL], or
// [AnthropicProvider.WithHttpClient] to configure the provider
// programmatically.
package anthropic
