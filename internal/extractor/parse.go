package extractor

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anvaldez/p2p-data/internal/api"
	"github.com/anvaldez/p2p-data/internal/model"
)

// parseOffer converts one raw advert into a typed Offer. Records with
// unparseable numeric fields, a non-positive price, or a non-positive
// available amount are discarded (logged, never raised).
func (e *Extractor) parseOffer(ad api.SearchAd) (model.Offer, bool) {
	adv := ad.Adv

	price, err := decimal.NewFromString(adv.Price)
	if err != nil {
		e.logger.Debug("skipping offer with unparseable price",
			"ad", adv.AdvNo, "price", adv.Price)
		return model.Offer{}, false
	}

	available, err := decimal.NewFromString(adv.SurplusAmount)
	if err != nil {
		e.logger.Debug("skipping offer with unparseable surplus amount",
			"ad", adv.AdvNo, "surplus_amount", adv.SurplusAmount)
		return model.Offer{}, false
	}

	minLimit, err := decimal.NewFromString(adv.MinSingleTransAmount)
	if err != nil {
		e.logger.Debug("skipping offer with unparseable min limit",
			"ad", adv.AdvNo, "min_limit", adv.MinSingleTransAmount)
		return model.Offer{}, false
	}

	maxLimit, err := decimal.NewFromString(adv.MaxSingleTransAmount)
	if err != nil {
		e.logger.Debug("skipping offer with unparseable max limit",
			"ad", adv.AdvNo, "max_limit", adv.MaxSingleTransAmount)
		return model.Offer{}, false
	}

	if price.Sign() <= 0 || available.Sign() <= 0 {
		e.logger.Debug("skipping offer with non-positive price or amount",
			"ad", adv.AdvNo, "price", adv.Price, "surplus_amount", adv.SurplusAmount)
		return model.Offer{}, false
	}

	methods := make([]model.PaymentMethod, 0, len(adv.TradeMethods))
	for _, tm := range adv.TradeMethods {
		methods = append(methods, model.PaymentMethod{
			Code: tm.Identifier,
			Name: tm.TradeMethodName,
		})
	}

	return model.Offer{
		ExternalID:         uuid.New(),
		AdvertiserID:       ad.Advertiser.UserNo,
		AdvertiserNickname: ad.Advertiser.NickName,
		CompletionRate:     decimal.NewFromFloat(ad.Advertiser.MonthFinishRate),
		TotalOrders:        ad.Advertiser.MonthOrderCount,
		Price:              price,
		AvailableAmount:    available,
		MinLimit:           minLimit,
		MaxLimit:           maxLimit,
		PaymentMethods:     methods,
		Asset:              adv.Asset,
		Fiat:               adv.FiatUnit,
		TradeType:          model.TradeType(adv.TradeType),
	}, true
}
