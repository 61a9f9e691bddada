// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Extraction throughput: pages fetched, offers extracted/discarded
//   - Pair failures per run
//   - Rate limiter pressure: wait count and total time spent waiting
//   - Load outcomes: batches loaded/failed, offers loaded, batch duration
package metrics
