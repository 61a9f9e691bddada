package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeType is the direction of a P2P advert.
type TradeType string

const (
	TradeTypeBuy  TradeType = "BUY"
	TradeTypeSell TradeType = "SELL"
)

// TradingPair identifies one (fiat, asset, direction) combination to extract.
// Pairs are ephemeral: rebuilt from discovery on every run, never persisted.
type TradingPair struct {
	Fiat      string    // Fiat currency code (e.g., "VES")
	Asset     string    // Crypto asset code (e.g., "USDT")
	TradeType TradeType // BUY or SELL
}

// String returns the pair in "FIAT/ASSET/DIRECTION" form for logging.
func (p TradingPair) String() string {
	return p.Fiat + "/" + p.Asset + "/" + string(p.TradeType)
}

// PaymentMethod is one payment option attached to an offer.
type PaymentMethod struct {
	Code string // Natural key (e.g., "BANK")
	Name string // Display name (e.g., "Bank Transfer")
}

// Offer is a single parsed P2P advert from one extraction run.
// Offers that fail numeric validation never become an Offer value;
// the extractor discards them before this type is constructed.
type Offer struct {
	ExternalID uuid.UUID // Synthetic ID assigned at parse time

	// Advertiser snapshot
	AdvertiserID       string          // Natural advertiser ID from the exchange
	AdvertiserNickname string          // Display nickname
	CompletionRate     decimal.Decimal // Monthly completion rate (0-1)
	TotalOrders        int             // Monthly completed order count

	// Advert terms (all > 0, validated at parse time)
	Price           decimal.Decimal // Unit price in fiat
	AvailableAmount decimal.Decimal // Remaining asset amount
	MinLimit        decimal.Decimal // Minimum single transaction (fiat)
	MaxLimit        decimal.Decimal // Maximum single transaction (fiat)

	PaymentMethods []PaymentMethod

	Asset     string
	Fiat      string
	TradeType TradeType
}
