// Package config holds the runtime configuration for the council gateway:
// one credential and endpoint block per LLM provider, plus query-level
// defaults like the per-model timeout.
//
// Configuration is layered. [Default] supplies the canonical vendor
// endpoints, an optional YAML file overrides those, and environment
// variables (OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY or
// GOOGLE_API_KEY, XAI_API_KEY, GROQ_API_KEY, and the matching *_API_BASE_URL
// variables) override both. [Load] applies all three layers in that order.
//
// A provider with no API key is not an error at load time; it simply does
// not appear in [Config.Available], and routing a model to it reports a
// missing credential rather than an unknown provider.
package config
