package council

import (
	"time"

	"github.com/leofalp/council/providers/ai"
)

// Result is the outcome of one model query. Exactly one of Response and Err
// is meaningful: a nil Err means Response is set, even when the model
// produced empty content. An empty completion is a success, not a failure.
type Result struct {
	// Model is the identifier exactly as supplied by the caller, including
	// the provider prefix.
	Model string

	// QueryID correlates this result with the trace events emitted while the
	// query was running.
	QueryID string

	// Response is the normalized provider response; nil when Err is set.
	Response *ai.ChatResponse

	// Err records why the query failed: a routing error (see [errors.Is]
	// against [ErrMalformedIdentifier], [ErrUnknownProvider],
	// [ErrMissingCredential]), an [ai.UpstreamError], an
	// [ai.MalformedResponseError], or a transport/timeout error.
	Err error

	// Duration is the wall-clock time the query took, failures included.
	Duration time.Duration
}

// OK reports whether the query succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Content returns the normalized completion text, or the empty string when
// the query failed.
func (r Result) Content() string {
	if r.Response == nil {
		return ""
	}
	return r.Response.Content
}

// FailureReason returns a human-readable description of the failure, or the
// empty string for a successful query.
func (r Result) FailureReason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Outcome is the aggregate of one fan-out call: one entry per requested
// identifier, in the same order as the input, duplicates preserved.
type Outcome []Result

// ByModel re-keys the outcome by model identifier. When the caller supplied
// duplicate identifiers the later entry wins; use the slice form when every
// per-position result matters.
func (o Outcome) ByModel() map[string]Result {
	results := make(map[string]Result, len(o))
	for _, result := range o {
		results[result.Model] = result
	}
	return results
}

// Succeeded returns the results whose queries completed successfully, in
// input order.
func (o Outcome) Succeeded() []Result {
	var succeeded []Result
	for _, result := range o {
		if result.OK() {
			succeeded = append(succeeded, result)
		}
	}
	return succeeded
}

// Failed returns the results whose queries failed, in input order.
func (o Outcome) Failed() []Result {
	var failed []Result
	for _, result := range o {
		if !result.OK() {
			failed = append(failed, result)
		}
	}
	return failed
}
