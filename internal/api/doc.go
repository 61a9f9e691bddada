// Package api provides access to the exchange's public P2P endpoints.
//
// Both endpoints are JSON-over-POST:
//   - Pair discovery: lists every fiat currency with its supported assets
//   - Ad search: paginated offer listings for one (fiat, asset, direction)
//
// Application-level success is signalled by code "000000" inside an HTTP
// 200 response; callers must check Code themselves. Transport and HTTP
// failures are retried with exponential backoff for the configured
// transient status set.
package api
