package utils

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// errorEnvelope is the least common denominator of the error bodies returned
// by the supported vendors. OpenAI-family APIs and Anthropic nest the message
// under an "error" object; Gemini does the same; some gateways return a bare
// "message" at the top level.
type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

// ErrorMessageFromBody extracts a human-readable diagnostic from a vendor
// error body. When the body is not valid JSON (truncated responses, proxies
// injecting garbage) it is run through jsonrepair and parsed again. Returns
// an empty string when no message could be recovered, letting the caller
// fall back to the raw body.
func ErrorMessageFromBody(body []byte) string {
	if message := parseErrorEnvelope(body); message != "" {
		return message
	}

	repaired, err := jsonrepair.JSONRepair(string(body))
	if err != nil {
		return ""
	}
	return parseErrorEnvelope([]byte(repaired))
}

func parseErrorEnvelope(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Error) > 0 {
		// "error" can be an object with a message, or a bare string.
		var detail errorDetail
		if err := json.Unmarshal(envelope.Error, &detail); err == nil && detail.Message != "" {
			return detail.Message
		}
		var plain string
		if err := json.Unmarshal(envelope.Error, &plain); err == nil {
			return plain
		}
	}

	return envelope.Message
}
