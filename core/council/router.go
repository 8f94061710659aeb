package council

import (
	"fmt"
	"strings"

	"github.com/leofalp/council/core/config"
	"github.com/leofalp/council/providers/ai"
)

// ParseIdentifier splits a model identifier into its normalized provider tag
// and vendor-local model name. The split happens at the first "/" when one is
// present, otherwise at the first ":"; only the first separator is
// significant, so the model name may itself contain further separators
// (e.g. "openai/ft:gpt-4o:org::abc" keeps everything after the first "/").
//
// The provider segment is lowercased and run through the alias table
// ("x-ai" becomes "xai"); the model segment is passed through unmodified.
func ParseIdentifier(identifier string) (provider, model string, err error) {
	sep := strings.Index(identifier, "/")
	if sep < 0 {
		sep = strings.Index(identifier, ":")
	}
	if sep < 0 {
		return "", "", fmt.Errorf("%w: %q has no provider prefix", ErrMalformedIdentifier, identifier)
	}

	return config.NormalizeTag(identifier[:sep]), identifier[sep+1:], nil
}

// resolve routes a model identifier to its registered adapter, returning the
// adapter alongside the normalized provider tag and the vendor-local model
// name. It is a pure function of the identifier and the fixed adapter table
// built in [New]: no network calls, no side effects.
func (c *Council) resolve(identifier string) (provider ai.Provider, tag, model string, err error) {
	tag, model, err = ParseIdentifier(identifier)
	if err != nil {
		return nil, "", "", err
	}

	if !config.IsKnownTag(tag) {
		return nil, "", "", fmt.Errorf("%w: %q", ErrUnknownProvider, tag)
	}

	provider, ok := c.providers[tag]
	if !ok {
		return nil, "", "", fmt.Errorf("%w %q", ErrMissingCredential, tag)
	}

	return provider, tag, model, nil
}
