// Package openai implements the [ai.Provider] interface for OpenAI's Chat
// Completions API.
//
// It handles request conversion from the generic [ai.ChatRequest] format to
// the chat completions wire format and response mapping back to
// [ai.ChatResponse].
//
// The primary entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. Several other vendors (xAI, Groq)
// expose byte-compatible chat completions endpoints; [NewCompatible] builds a
// provider for those, differing only in name, base URL, and credential. The
// xai and groq packages are thin wrappers over it.
package openai
