// Package ratelimit implements the token bucket that bounds outbound
// requests to the exchange API.
//
// The bucket:
//   - Starts full, allowing a burst up to its capacity
//   - Refills continuously at the configured average rate
//   - Blocks callers when empty; the blocked caller drains the bucket
//     to zero when it wakes (see Limiter.Acquire)
//
// One limiter instance is shared by every extraction worker.
package ratelimit
