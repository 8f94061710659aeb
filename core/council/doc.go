// Package council implements the provider dispatch and fan-out layer of the
// gateway: it resolves model identifiers of the form "provider/model-name"
// (or "provider:model-name") to the matching provider adapter, runs single
// model queries under a per-query timeout, and dispatches the same
// conversation to many models concurrently.
//
// The two operations are [Council.QueryModel], which never returns an error —
// every failure path is folded into the returned [Result] — and
// [Council.QueryParallel], which launches one query per identifier and joins
// them all, so one slow or failing model never blocks or cancels the others.
//
// Construct a [Council] with [New] from a [config.Config]; only providers
// with a configured credential are registered, and routing distinguishes an
// unknown provider tag from a known one that is merely missing its key.
package council
