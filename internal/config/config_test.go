package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-worker
api:
  base_url: https://p2p.example.com
  timeout: 10s
extraction:
  interval: 5m
  workers: 8
rate_limit:
  requests_per_minute: 60
  burst_size: 10
database:
  host: localhost
  port: 5432
  name: test_db
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-worker" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-worker")
	}
	if cfg.API.BaseURL != "https://p2p.example.com" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://p2p.example.com")
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.Extraction.Interval != 5*time.Minute {
		t.Errorf("Extraction.Interval = %v, want 5m", cfg.Extraction.Interval)
	}
	if cfg.Extraction.Workers != 8 {
		t.Errorf("Extraction.Workers = %d, want 8", cfg.Extraction.Workers)
	}
	if cfg.RateLimit.RequestsPerMinute != 60 {
		t.Errorf("RateLimit.RequestsPerMinute = %v, want 60", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
instance:
  id: test-worker
database:
  host: localhost
  name: test_db
  user: testuser
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-worker
database:
  host: localhost
  name: test_db
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("API.BaseURL = %q, want default %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want default %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if len(cfg.API.RetryStatuses) != len(DefaultRetryStatuses) {
		t.Errorf("API.RetryStatuses = %v, want default %v", cfg.API.RetryStatuses, DefaultRetryStatuses)
	}
	if cfg.Extraction.Interval != DefaultExtractionInterval {
		t.Errorf("Extraction.Interval = %v, want default %v", cfg.Extraction.Interval, DefaultExtractionInterval)
	}
	if cfg.Extraction.Workers != DefaultWorkers {
		t.Errorf("Extraction.Workers = %d, want default %d", cfg.Extraction.Workers, DefaultWorkers)
	}
	if cfg.RateLimit.BurstSize != DefaultBurstSize {
		t.Errorf("RateLimit.BurstSize = %d, want default %d", cfg.RateLimit.BurstSize, DefaultBurstSize)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want default %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.MaxConns != DefaultMaxConns {
		t.Errorf("Database.MaxConns = %d, want default %d", cfg.Database.MaxConns, DefaultMaxConns)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want default %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func TestValidate(t *testing.T) {
	validDB := DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 10, MinConns: 2}

	tests := []struct {
		name    string
		cfg     WorkerConfig
		wantErr string
	}{
		{
			name:    "missing instance id",
			cfg:     WorkerConfig{},
			wantErr: "instance.id is required",
		},
		{
			name: "missing database host",
			cfg: WorkerConfig{
				Instance: InstanceConfig{ID: "test"},
			},
			wantErr: "database.host is required",
		},
		{
			name: "missing database password",
			cfg: WorkerConfig{
				Instance: InstanceConfig{ID: "test"},
				Database: DBConfig{Host: "localhost", Name: "db", User: "user"},
			},
			wantErr: "database.password is required",
		},
		{
			name: "min_conns exceeds max_conns",
			cfg: WorkerConfig{
				Instance: InstanceConfig{ID: "test"},
				Database: DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 5, MinConns: 10},
			},
			wantErr: "database.min_conns (10) cannot exceed max_conns (5)",
		},
		{
			name: "zero workers",
			cfg: WorkerConfig{
				Instance: InstanceConfig{ID: "test"},
				Database: validDB,
			},
			wantErr: "extraction.workers must be >= 1",
		},
		{
			name: "zero rate",
			cfg: WorkerConfig{
				Instance:   InstanceConfig{ID: "test"},
				Database:   validDB,
				Extraction: ExtractionConfig{Workers: 20, PageSize: 20, MaxPagesPerPair: 50},
			},
			wantErr: "rate_limit.requests_per_minute must be > 0",
		},
		{
			name: "valid config",
			cfg: WorkerConfig{
				Instance:   InstanceConfig{ID: "test"},
				Database:   validDB,
				Extraction: ExtractionConfig{Interval: 10 * time.Minute, Workers: 20, PageSize: 20, MaxPagesPerPair: 50},
				RateLimit:  RateLimitConfig{RequestsPerMinute: 100, BurstSize: 20},
				Metrics:    MetricsConfig{Port: 9090},
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
