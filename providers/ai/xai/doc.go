// Package xai implements the [ai.Provider] interface for xAI's Grok API.
// The API is byte-compatible with OpenAI's chat completions format, so this
// package is a thin wrapper around [openai.NewCompatible] that supplies xAI's
// endpoint and credential environment variables.
package xai
