// Package model defines shared data types used across the P2P gatherer.
//
// All warehouse-bound types mirror the star schema in migrations/schema.sql.
//
// Conventions:
//   - Money fields (price, amounts, limits): decimal.Decimal, never float
//   - Batch and offer external IDs: uuid.UUID
//   - Trade direction: TradeType, "BUY" or "SELL" from the taker's perspective
package model
