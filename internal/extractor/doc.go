// Package extractor implements the concurrent extraction pipeline.
//
// The extractor:
//   - Discovers trading pairs (fiat x asset x direction cross product)
//   - Fans pair extraction out over a bounded worker group
//   - Applies the shared rate limiter before every upstream call
//   - Parses raw adverts defensively, discarding malformed records
//
// A single pair's failure is isolated: it is logged, contributes whatever
// pages were already parsed, and never aborts sibling pairs.
package extractor
