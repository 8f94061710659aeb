// Package utils provides shared low-level helpers used throughout the council
// internals. It covers the HTTP request helper for synchronous JSON
// communication with AI provider APIs, vendor error-body extraction, and
// generic pointer and string utilities.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [ErrorMessageFromBody] for salvaging diagnostics out of vendor error
// envelopes, [Ptr] for converting values to pointers, and [Timer] for
// measuring latency.
package utils
