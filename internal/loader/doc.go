// Package loader writes parsed offer batches into the dimensional warehouse.
//
// Each batch runs in a single transaction:
//   - Phase 1 resolves or creates dimension rows (crypto, fiat, advertiser,
//     payment method), caching natural-key to surrogate-id mappings for the
//     lifetime of the loader instance
//   - Phase 2 inserts one fact row per offer plus one bridge row per
//     payment method, all sharing the batch's extraction timestamp
//
// Any failure rolls the whole batch back; there are no partial commits.
// Fact and bridge rows are append-only and never mutated afterwards.
package loader
