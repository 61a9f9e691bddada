package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Default endpoint paths on the public P2P gateway.
const (
	DefaultPairsPath  = "/bapi/c2c/v2/public/c2c/asset-order/getAllSupportAsset"
	DefaultSearchPath = "/bapi/c2c/v2/friendly/c2c/adv/search"
)

// Client provides access to the P2P REST API.
type Client struct {
	baseURL    string
	pairsPath  string
	searchPath string
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries    int
	retryBackoff  time.Duration
	retryStatuses map[int]bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		pairsPath:  DefaultPairsPath,
		searchPath: DefaultSearchPath,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
		retryStatuses: map[int]bool{
			http.StatusTooManyRequests:     true,
			http.StatusInternalServerError: true,
			http.StatusBadGateway:          true,
			http.StatusServiceUnavailable:  true,
			http.StatusGatewayTimeout:      true,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithRetryStatuses replaces the set of HTTP statuses treated as transient.
func WithRetryStatuses(statuses []int) ClientOption {
	return func(c *Client) {
		c.retryStatuses = make(map[int]bool, len(statuses))
		for _, s := range statuses {
			c.retryStatuses[s] = true
		}
	}
}

// WithEndpoints overrides the discovery and search paths.
func WithEndpoints(pairsPath, searchPath string) ClientOption {
	return func(c *Client) {
		if pairsPath != "" {
			c.pairsPath = pairsPath
		}
		if searchPath != "" {
			c.searchPath = searchPath
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
