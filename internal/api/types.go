package api

// CodeOK is the application-level success code returned by both endpoints.
const CodeOK = "000000"

// PairsResponse from the pair discovery endpoint.
type PairsResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    []FiatAsset `json:"data"`
}

// FiatAsset lists the assets tradeable against one fiat currency.
type FiatAsset struct {
	FiatUnit  string   `json:"fiatUnit"`
	AssetList []string `json:"assetList"`
}

// SearchRequest is the payload for the paginated ad search endpoint.
// PublisherType is always null and PayTypes always an empty array; the
// gateway rejects requests that omit either field.
type SearchRequest struct {
	Page           int      `json:"page"`
	Rows           int      `json:"rows"`
	TradeType      string   `json:"tradeType"`
	Asset          string   `json:"asset"`
	Fiat           string   `json:"fiat"`
	PublisherType  *string  `json:"publisherType"`
	PayTypes       []string `json:"payTypes"`
	ProMerchantAds bool     `json:"proMerchantAds"`
}

// SearchResponse from the ad search endpoint. An empty Data slice marks
// the end of pagination for the requested pair.
type SearchResponse struct {
	Code    string     `json:"code"`
	Message string     `json:"message"`
	Total   int        `json:"total"`
	Data    []SearchAd `json:"data"`
}

// SearchAd is one advert record: the advert terms plus a snapshot of the
// publishing advertiser.
type SearchAd struct {
	Adv        Adv        `json:"adv"`
	Advertiser Advertiser `json:"advertiser"`
}

// Adv holds the advert terms. Numeric fields arrive as decimal strings.
type Adv struct {
	AdvNo                string        `json:"advNo"`
	Asset                string        `json:"asset"`
	FiatUnit             string        `json:"fiatUnit"`
	TradeType            string        `json:"tradeType"`
	Price                string        `json:"price"`
	SurplusAmount        string        `json:"surplusAmount"`
	MinSingleTransAmount string        `json:"minSingleTransAmount"`
	MaxSingleTransAmount string        `json:"maxSingleTransAmount"`
	TradeMethods         []TradeMethod `json:"tradeMethods"`
}

// TradeMethod is one payment option on an advert.
type TradeMethod struct {
	Identifier      string `json:"identifier"`
	PayType         string `json:"payType"`
	TradeMethodName string `json:"tradeMethodName"`
}

// Advertiser is the publisher snapshot attached to each advert.
type Advertiser struct {
	UserNo          string  `json:"userNo"`
	NickName        string  `json:"nickName"`
	UserType        string  `json:"userType"`
	MonthOrderCount int     `json:"monthOrderCount"`
	MonthFinishRate float64 `json:"monthFinishRate"`
}
