// Package gemini implements the [ai.Provider] interface for Google's Gemini
// API (generateContent endpoint).
//
// Gemini diverges from the OpenAI-style providers in three ways the
// conversion layer has to absorb: messages are restructured into
// {role, parts:[{text}]} objects, the assistant role is renamed to "model"
// while user stays unchanged, and the API key travels as a query parameter
// of the request URL rather than in a header.
//
// The primary entry point is [New], which reads GEMINI_API_KEY (falling back
// to GOOGLE_API_KEY) and GEMINI_API_BASE_URL from the environment.
package gemini
