package council

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/leofalp/council/core/config"
	"github.com/leofalp/council/internal/utils"
	"github.com/leofalp/council/providers/ai"
	"github.com/leofalp/council/providers/ai/anthropic"
	"github.com/leofalp/council/providers/ai/gemini"
	"github.com/leofalp/council/providers/ai/groq"
	"github.com/leofalp/council/providers/ai/openai"
	"github.com/leofalp/council/providers/ai/xai"
	"github.com/leofalp/council/providers/observability"
)

// Council routes model identifiers to provider adapters and fans queries out
// across them. The adapter table is fixed at construction time; Council is
// safe for concurrent use.
type Council struct {
	cfg       *config.Config
	providers map[string]ai.Provider
	limiters  map[string]*rate.Limiter
}

// New builds a Council from cfg. An adapter is registered for every known
// provider tag that has a credential configured; uncredentialed providers are
// left out of the table so routing to them reports [ErrMissingCredential].
func New(cfg *config.Config) *Council {
	c := &Council{
		cfg:       cfg,
		providers: make(map[string]ai.Provider),
		limiters:  make(map[string]*rate.Limiter),
	}

	for _, tag := range cfg.Available() {
		settings := cfg.Providers[tag]
		c.providers[tag] = buildProvider(tag, settings)

		// Rate limits are configured in requests/minute; rate.Limit is
		// requests/second.
		if settings.RateLimit > 0 {
			burst := settings.Burst
			if burst <= 0 {
				burst = 1
			}
			c.limiters[tag] = rate.NewLimiter(rate.Limit(float64(settings.RateLimit)/60.0), burst)
		}
	}

	return c
}

// buildProvider constructs the adapter for one provider tag. xAI and Groq
// speak the OpenAI chat completions format and differ only in endpoint and
// credential, so they reuse the OpenAI adapter.
func buildProvider(tag string, settings config.ProviderSettings) ai.Provider {
	switch tag {
	case "anthropic":
		return anthropic.New().WithAPIKey(settings.APIKey).WithBaseURL(settings.BaseURL)
	case "google":
		return gemini.New().WithAPIKey(settings.APIKey).WithBaseURL(settings.BaseURL)
	case "xai":
		return xai.New().WithAPIKey(settings.APIKey).WithBaseURL(settings.BaseURL)
	case "groq":
		return groq.New().WithAPIKey(settings.APIKey).WithBaseURL(settings.BaseURL)
	default:
		return openai.NewCompatible(tag, settings.BaseURL, settings.APIKey)
	}
}

// queryTimeout returns the effective timeout for one query against the given
// provider tag.
func (c *Council) queryTimeout(tag string) time.Duration {
	if settings, ok := c.cfg.Providers[tag]; ok && settings.Timeout > 0 {
		return settings.Timeout
	}
	if c.cfg.QueryTimeout > 0 {
		return c.cfg.QueryTimeout
	}
	return config.DefaultQueryTimeout
}

// QueryModel queries a single model identified by "provider/model-name" (or
// "provider:model-name") with the given conversation. It never returns an
// error: routing failures, rate-limit aborts, transport errors, upstream
// errors, and malformed responses are all folded into the Result. This is
// the isolation boundary that makes the parallel fan-out safe.
//
// The conversation is read-only; it is shared, not copied.
func (c *Council) QueryModel(ctx context.Context, identifier string, messages []ai.Message) (result Result) {
	result = Result{
		Model:   identifier,
		QueryID: uuid.NewString(),
	}

	observer := observability.ObserverFromContext(ctx)
	timer := utils.NewTimer()
	defer func() {
		timer.Stop()
		result.Duration = timer.GetDuration()
	}()

	if observer != nil {
		var span observability.Span
		ctx, span = observer.StartSpan(ctx, "council.query",
			observability.String(observability.AttrLLMModelID, identifier),
			observability.String(observability.AttrQueryID, result.QueryID),
		)
		defer func() {
			if result.Err != nil {
				span.RecordError(result.Err)
				span.SetStatus(observability.StatusError, result.Err.Error())
			} else {
				span.SetStatus(observability.StatusOK, "")
			}
			span.End()
		}()
	}

	provider, tag, model, err := c.resolve(identifier)
	if err != nil {
		// Routing failure: no network call is attempted.
		result.Err = err
		return result
	}

	queryCtx, cancel := context.WithTimeout(ctx, c.queryTimeout(tag))
	defer cancel()

	if limiter := c.limiters[tag]; limiter != nil {
		if err := limiter.Wait(queryCtx); err != nil {
			result.Err = err
			return result
		}
	}

	response, err := provider.SendMessage(queryCtx, ai.ChatRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		result.Err = err
		return result
	}

	result.Response = response
	return result
}

// QueryParallel queries every identifier in models concurrently with the
// same conversation and waits for all of them. The returned Outcome has
// exactly one entry per input identifier, in input order, duplicates
// preserved; each entry is independently a success or a failure.
//
// Each query runs under its own timeout. A slow or failing model delays only
// the final join, never its siblings, and there is no cancellation between
// sibling queries. Nothing is returned until every query has finished.
func (c *Council) QueryParallel(ctx context.Context, models []string, messages []ai.Message) Outcome {
	observer := observability.ObserverFromContext(ctx)
	if observer != nil {
		var span observability.Span
		ctx, span = observer.StartSpan(ctx, "council.fanout",
			observability.Int(observability.AttrQueryCount, len(models)),
		)
		defer span.End()
	}

	results := make(Outcome, len(models))

	var waitGroup sync.WaitGroup
	for i, model := range models {
		waitGroup.Add(1)

		go func(slot int, identifier string) {
			defer waitGroup.Done()
			// Each goroutine writes only its own slot; no shared mutable
			// state, no locks.
			results[slot] = c.QueryModel(ctx, identifier, messages)
		}(i, model)
	}

	waitGroup.Wait()
	return results
}
