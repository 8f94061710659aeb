package council

import "errors"

// Routing errors. All are reported through [Result.Err], wrapped with the
// offending identifier or provider tag; match them with [errors.Is].
var (
	// ErrMalformedIdentifier means the model identifier contains neither a
	// "/" nor a ":" separator, so no provider prefix could be extracted.
	// The router does not guess a default provider.
	ErrMalformedIdentifier = errors.New("malformed model identifier")

	// ErrUnknownProvider means the provider prefix does not match any
	// registered adapter.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingCredential means the provider is known but no API key was
	// configured for it, so the adapter was never registered.
	ErrMissingCredential = errors.New("missing credential for provider")
)
