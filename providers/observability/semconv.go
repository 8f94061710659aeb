package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "openai", "anthropic")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the vendor-local model name (e.g., "gpt-5.2")
	AttrLLMModel = "llm.model"

	// AttrLLMModelID is the full model identifier including the provider
	// prefix, as supplied by the caller (e.g., "openai/gpt-5.2")
	AttrLLMModelID = "llm.model_id"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"
)

// --- Token Usage Attributes ---

const (
	// AttrLLMTokensPrompt is the number of prompt tokens
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensCompletion is the number of completion tokens
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Fan-out Attributes ---

const (
	// AttrQueryID is the correlation identifier assigned to one fan-out sub-query
	AttrQueryID = "council.query_id"

	// AttrQueryCount is the number of models targeted by a fan-out call
	AttrQueryCount = "council.query_count"

	// AttrQueryDuration is the wall-clock duration of one sub-query
	AttrQueryDuration = "council.query_duration"
)

// --- Request/Response Attributes ---

const (
	// AttrRequestMessagesCount is the number of messages in the request
	AttrRequestMessagesCount = "request.messages_count"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP request method
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- Span Status Attributes ---

const (
	// AttrStatus is the final status of a span ("ok", "error", "unset")
	AttrStatus = "status"

	// AttrStatusDescription is the optional human-readable status detail
	AttrStatusDescription = "status.description"
)

// --- Event Names ---

const (
	// EventLLMRequestStart marks the beginning of a provider request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the completion of a provider request
	EventLLMRequestEnd = "llm.request.end"

	// EventTokensReceived marks receipt of usage accounting from the provider
	EventTokensReceived = "llm.tokens.received"
)
