package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL            = "https://p2p.binance.com"
	DefaultPairsEndpoint      = "/bapi/c2c/v2/public/c2c/asset-order/getAllSupportAsset"
	DefaultSearchEndpoint     = "/bapi/c2c/v2/friendly/c2c/adv/search"
	DefaultAPITimeout         = 30 * time.Second
	DefaultMaxRetries         = 3
	DefaultExtractionInterval = 10 * time.Minute
	DefaultWorkers            = 20
	DefaultPageSize           = 20
	DefaultMaxPagesPerPair    = 50
	DefaultRequestsPerMinute  = 100.0
	DefaultBurstSize          = 20
	DefaultDBPort             = 5432
	DefaultDBSSLMode          = "prefer"
	DefaultMaxConns           = 10
	DefaultMinConns           = 2
	DefaultMetricsPort        = 9090
	DefaultMetricsPath        = "/metrics"
)

// DefaultRetryStatuses are the HTTP statuses retried as transient.
var DefaultRetryStatuses = []int{429, 500, 502, 503, 504}

func (c *WorkerConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.PairsEndpoint == "" {
		c.API.PairsEndpoint = DefaultPairsEndpoint
	}
	if c.API.SearchEndpoint == "" {
		c.API.SearchEndpoint = DefaultSearchEndpoint
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if len(c.API.RetryStatuses) == 0 {
		c.API.RetryStatuses = append([]int(nil), DefaultRetryStatuses...)
	}

	// Extraction defaults
	if c.Extraction.Interval == 0 {
		c.Extraction.Interval = DefaultExtractionInterval
	}
	if c.Extraction.Workers == 0 {
		c.Extraction.Workers = DefaultWorkers
	}
	if c.Extraction.PageSize == 0 {
		c.Extraction.PageSize = DefaultPageSize
	}
	if c.Extraction.MaxPagesPerPair == 0 {
		c.Extraction.MaxPagesPerPair = DefaultMaxPagesPerPair
	}

	// Rate limit defaults
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if c.RateLimit.BurstSize == 0 {
		c.RateLimit.BurstSize = DefaultBurstSize
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
