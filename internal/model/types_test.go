package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestTradingPairString(t *testing.T) {
	tests := []struct {
		name string
		pair TradingPair
		want string
	}{
		{"buy side", TradingPair{Fiat: "VES", Asset: "USDT", TradeType: TradeTypeBuy}, "VES/USDT/BUY"},
		{"sell side", TradingPair{Fiat: "COP", Asset: "BTC", TradeType: TradeTypeSell}, "COP/BTC/SELL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pair.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOfferFields(t *testing.T) {
	id := uuid.New()
	o := Offer{
		ExternalID:         id,
		AdvertiserID:       "adv-9001",
		AdvertiserNickname: "cryptomaster",
		CompletionRate:     decimal.RequireFromString("0.98"),
		TotalOrders:        412,
		Price:              decimal.RequireFromString("36.55"),
		AvailableAmount:    decimal.RequireFromString("1520.00"),
		MinLimit:           decimal.RequireFromString("100"),
		MaxLimit:           decimal.RequireFromString("50000"),
		PaymentMethods:     []PaymentMethod{{Code: "BANK", Name: "Bank Transfer"}},
		Asset:              "USDT",
		Fiat:               "VES",
		TradeType:          TradeTypeBuy,
	}

	if o.ExternalID != id {
		t.Errorf("ExternalID = %v, want %v", o.ExternalID, id)
	}
	if !o.Price.Equal(decimal.RequireFromString("36.55")) {
		t.Errorf("Price = %s, want 36.55", o.Price)
	}
	if len(o.PaymentMethods) != 1 || o.PaymentMethods[0].Code != "BANK" {
		t.Errorf("PaymentMethods = %v, want single BANK entry", o.PaymentMethods)
	}
	if o.TradeType != TradeTypeBuy {
		t.Errorf("TradeType = %q, want %q", o.TradeType, TradeTypeBuy)
	}
}

func TestZeroValues(t *testing.T) {
	var o Offer
	if o.ExternalID != uuid.Nil {
		t.Errorf("zero Offer.ExternalID = %v, want nil UUID", o.ExternalID)
	}
	if !o.Price.IsZero() {
		t.Errorf("zero Offer.Price = %s, want 0", o.Price)
	}
	if len(o.PaymentMethods) != 0 {
		t.Errorf("zero Offer.PaymentMethods = %v, want empty", o.PaymentMethods)
	}
}
