package ai

import "fmt"

// UpstreamError reports a non-2xx HTTP response from a provider API. Message
// holds the vendor-supplied diagnostic when one could be extracted from the
// error body, otherwise a truncated copy of the raw body.
type UpstreamError struct {
	Provider   string // provider tag, e.g. "anthropic"
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// MalformedResponseError reports a 2xx response whose envelope is missing the
// fields needed to extract a completion (e.g. an empty choices array).
type MalformedResponseError struct {
	Provider string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Provider, e.Reason)
}
