package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anvaldez/p2p-data/internal/api"
	"github.com/anvaldez/p2p-data/internal/metrics"
	"github.com/anvaldez/p2p-data/internal/model"
	"github.com/anvaldez/p2p-data/internal/ratelimit"
)

// Config holds extractor settings.
type Config struct {
	Workers         int // Max concurrent pair extractions (default: 20)
	PageSize        int // Rows requested per search page (default: 20)
	MaxPagesPerPair int // Pagination cap per pair (default: 50)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:         20,
		PageSize:        20,
		MaxPagesPerPair: 50,
	}
}

// Extractor pulls P2P offer listings from the exchange API.
type Extractor struct {
	cfg     Config
	client  *api.Client
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// New creates a new Extractor.
func New(cfg Config, client *api.Client, limiter *ratelimit.Limiter, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// DiscoverPairs fetches the supported fiat currencies and expands each
// fiat/asset combination into a BUY and a SELL pair. A non-success
// application code is a soft failure: it is logged and yields an empty
// list rather than an error.
func (e *Extractor) DiscoverPairs(ctx context.Context) ([]model.TradingPair, error) {
	e.acquire(1)

	resp, err := e.client.GetSupportedPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover pairs: %w", err)
	}

	if resp.Code != api.CodeOK {
		e.logger.Warn("pair discovery returned non-success code",
			"code", resp.Code,
			"message", resp.Message,
		)
		return nil, nil
	}

	var pairs []model.TradingPair
	for _, item := range resp.Data {
		for _, asset := range item.AssetList {
			pairs = append(pairs,
				model.TradingPair{Fiat: item.FiatUnit, Asset: asset, TradeType: model.TradeTypeBuy},
				model.TradingPair{Fiat: item.FiatUnit, Asset: asset, TradeType: model.TradeTypeSell},
			)
		}
	}

	e.logger.Info("discovered trading pairs", "pairs", len(pairs))
	return pairs, nil
}

// ExtractPair pulls every page of offers for one pair, starting at page 1.
// Pagination stops on the first empty page, on a non-success application
// code, when the page cap is reached, or when a request fails after
// retries. Offers parsed before the stop are always returned; err is
// non-nil only for the request-failure case.
func (e *Extractor) ExtractPair(ctx context.Context, pair model.TradingPair) ([]model.Offer, error) {
	var offers []model.Offer

	for page := 1; ; page++ {
		e.acquire(1)

		resp, err := e.client.SearchAds(ctx, api.SearchRequest{
			Page:      page,
			Rows:      e.cfg.PageSize,
			TradeType: string(pair.TradeType),
			Asset:     pair.Asset,
			Fiat:      pair.Fiat,
			PayTypes:  []string{},
		})
		if err != nil {
			return offers, fmt.Errorf("extract %s: %w", pair, err)
		}
		metrics.PagesFetched.Inc()

		if resp.Code != api.CodeOK {
			e.logger.Warn("search returned non-success code",
				"pair", pair.String(),
				"code", resp.Code,
				"message", resp.Message,
			)
			return offers, nil
		}

		if len(resp.Data) == 0 {
			return offers, nil
		}

		for _, ad := range resp.Data {
			offer, ok := e.parseOffer(ad)
			if !ok {
				metrics.OffersDiscarded.Inc()
				continue
			}
			offers = append(offers, offer)
		}

		if page >= e.cfg.MaxPagesPerPair {
			e.logger.Warn("reached max pages for pair",
				"pair", pair.String(),
				"max_pages", e.cfg.MaxPagesPerPair,
			)
			return offers, nil
		}
	}
}

// ExtractAll extracts offers for every discovered pair concurrently,
// bounded by cfg.Workers. Pair failures are logged and isolated; the
// returned slice is the concatenation of all successful pages in
// completion order.
func (e *Extractor) ExtractAll(ctx context.Context) []model.Offer {
	pairs, err := e.DiscoverPairs(ctx)
	if err != nil {
		e.logger.Error("pair discovery failed", "error", err)
		return nil
	}
	if len(pairs) == 0 {
		e.logger.Warn("no trading pairs discovered, nothing to extract")
		return nil
	}

	e.logger.Info("starting extraction",
		"pairs", len(pairs),
		"workers", e.cfg.Workers,
	)
	start := time.Now()

	var (
		mu     sync.Mutex
		all    []model.Offer
		failed atomic.Int64
	)

	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)

	for _, pair := range pairs {
		pair := pair
		g.Go(func() error {
			offers, err := e.ExtractPair(ctx, pair)
			if err != nil {
				e.logger.Warn("pair extraction ended early",
					"pair", pair.String(),
					"offers_kept", len(offers),
					"error", err,
				)
				failed.Add(1)
				metrics.PairsFailed.Inc()
			}

			if len(offers) > 0 {
				mu.Lock()
				all = append(all, offers...)
				mu.Unlock()
			}

			// Failures stay inside their own task.
			return nil
		})
	}

	g.Wait()

	metrics.OffersExtracted.Add(float64(len(all)))
	e.logger.Info("extraction complete",
		"offers", len(all),
		"pairs", len(pairs),
		"failed_pairs", failed.Load(),
		"duration", time.Since(start),
	)

	return all
}

// acquire blocks on the shared rate limiter and records waits.
func (e *Extractor) acquire(n int) {
	if wait := e.limiter.Acquire(n); wait > 0 {
		metrics.RateLimitWaits.Inc()
		metrics.RateLimitWaitSeconds.Add(wait.Seconds())
	}
}
