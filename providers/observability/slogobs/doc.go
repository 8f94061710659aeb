// Package slogobs implements [observability.Provider] on top of the standard
// library's log/slog. Spans are logged as start/end event pairs with their
// accumulated attributes; log methods map onto the corresponding slog levels,
// with Trace emitted at slog.LevelDebug.
package slogobs
