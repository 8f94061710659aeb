// Package observability defines the provider-agnostic tracing and structured
// logging abstractions used by the council core and the LLM provider
// adapters. Implementations live in subpackages ([slogobs] backs everything
// with the standard library's log/slog).
//
// Callers attach a [Provider] and [Span] to a [context.Context] using
// [ContextWithObserver] and [ContextWithSpan]; instrumented code retrieves
// them with [ObserverFromContext] and [SpanFromContext]. Both lookups return
// nil when nothing is attached, and every call site treats nil as "tracing
// disabled", so observability is strictly opt-in.
package observability
