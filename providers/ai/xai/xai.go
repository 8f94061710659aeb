package xai

import (
	"os"

	"github.com/leofalp/council/providers/ai/openai"
)

const defaultBaseURL = "https://api.x.ai/v1"

// New returns a provider for xAI's chat completions endpoint, initialized
// from environment variables. It reads XAI_API_KEY for authentication and
// XAI_API_BASE_URL for the endpoint base (defaulting to https://api.x.ai/v1
// when unset).
func New() *openai.OpenAIProvider {
	apiKey := os.Getenv("XAI_API_KEY")
	baseURL := os.Getenv("XAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return openai.NewCompatible("xai", baseURL, apiKey)
}
