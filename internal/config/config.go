package config

import "time"

// WorkerConfig is the root configuration for a worker instance.
type WorkerConfig struct {
	Instance   InstanceConfig   `yaml:"instance"`
	API        APIConfig        `yaml:"api"`
	Extraction ExtractionConfig `yaml:"extraction"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Database   DBConfig         `yaml:"database"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// InstanceConfig identifies this worker.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds marketplace API settings.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	PairsEndpoint  string        `yaml:"pairs_endpoint"`
	SearchEndpoint string        `yaml:"search_endpoint"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	RetryStatuses  []int         `yaml:"retry_statuses"`
}

// ExtractionConfig holds the periodic extraction job settings.
type ExtractionConfig struct {
	Interval        time.Duration `yaml:"interval"`
	Workers         int           `yaml:"workers"`
	PageSize        int           `yaml:"page_size"`
	MaxPagesPerPair int           `yaml:"max_pages_per_pair"`
}

// RateLimitConfig holds the shared token bucket settings.
type RateLimitConfig struct {
	RequestsPerMinute float64 `yaml:"requests_per_minute"`
	BurstSize         int     `yaml:"burst_size"`
}

// DBConfig holds the warehouse database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
