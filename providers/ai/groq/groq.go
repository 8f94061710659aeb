package groq

import (
	"os"

	"github.com/leofalp/council/providers/ai/openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// New returns a provider for Groq's chat completions endpoint, initialized
// from environment variables. It reads GROQ_API_KEY for authentication and
// GROQ_API_BASE_URL for the endpoint base (defaulting to
// https://api.groq.com/openai/v1 when unset).
func New() *openai.OpenAIProvider {
	apiKey := os.Getenv("GROQ_API_KEY")
	baseURL := os.Getenv("GROQ_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return openai.NewCompatible("groq", baseURL, apiKey)
}
