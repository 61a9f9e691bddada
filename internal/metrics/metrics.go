package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_pages_fetched_total",
		Help: "Search pages fetched from the exchange API",
	})

	OffersExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_offers_extracted_total",
		Help: "Offers parsed and kept across all extraction runs",
	})

	OffersDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_offers_discarded_total",
		Help: "Raw offer records discarded during parsing",
	})

	PairsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_pairs_failed_total",
		Help: "Pair extractions that ended early on a request failure",
	})

	RateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_rate_limit_waits_total",
		Help: "Acquire calls that had to wait for tokens",
	})

	RateLimitWaitSeconds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_rate_limit_wait_seconds_total",
		Help: "Cumulative time spent waiting on the rate limiter",
	})

	BatchesLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_batches_loaded_total",
		Help: "Offer batches committed to the warehouse",
	})

	BatchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_batches_failed_total",
		Help: "Offer batches rolled back on error",
	})

	OffersLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "p2p_offers_loaded_total",
		Help: "Fact rows written to the warehouse",
	})

	LoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "p2p_load_duration_seconds",
		Help:    "Wall time per committed batch load",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
