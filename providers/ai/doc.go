// Package ai defines the shared, provider-agnostic types and interfaces used
// across all LLM provider implementations (OpenAI, Anthropic, Gemini, xAI,
// Groq). Each provider's conversion layer is responsible for mapping these
// types to its own wire format, keeping the rest of the codebase decoupled
// from provider-specific details.
//
// The central interface is [Provider] for synchronous chat completions.
// Request data flows through [ChatRequest] and responses are returned as
// [ChatResponse]. Failures that originate upstream are represented by
// [UpstreamError] so callers can inspect the HTTP status and the vendor's
// own diagnostic message.
package ai
