// Package groq implements the [ai.Provider] interface for Groq's inference
// API. The API is byte-compatible with OpenAI's chat completions format, so
// this package is a thin wrapper around [openai.NewCompatible] that supplies
// Groq's endpoint and credential environment variables.
package groq
