package api

import (
	"context"
	"fmt"
)

// GetSupportedPairs fetches every fiat currency and its supported assets.
// The request body is an empty JSON object.
func (c *Client) GetSupportedPairs(ctx context.Context) (*PairsResponse, error) {
	var resp PairsResponse
	if err := c.post(ctx, c.pairsPath, struct{}{}, &resp); err != nil {
		return nil, fmt.Errorf("get supported pairs: %w", err)
	}
	return &resp, nil
}

// SearchAds fetches one page of adverts for the pair described by req.
func (c *Client) SearchAds(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if req.PayTypes == nil {
		req.PayTypes = []string{}
	}

	var resp SearchResponse
	if err := c.post(ctx, c.searchPath, req, &resp); err != nil {
		return nil, fmt.Errorf("search ads %s/%s/%s page %d: %w",
			req.Fiat, req.Asset, req.TradeType, req.Page, err)
	}
	return &resp, nil
}
