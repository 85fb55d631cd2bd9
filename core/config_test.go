package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigDefaults verifies the built-in defaults.
func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://www.page3life.com/api", cfg.LegacyBaseURL)
	assert.Equal(t, "https://www.page3life.com/wp-json/wc/v3", cfg.WooCommerceBaseURL)

	// Transport timeouts
	assert.Equal(t, 10*time.Second, cfg.HTTP.ConnectTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ResponseHeaderTimeout)

	// GET retry policy
	assert.Equal(t, 2, cfg.Retry.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.InitialDelay)
	assert.Equal(t, 2*time.Second, cfg.Retry.MaxDelay)
	assert.Equal(t, 2.0, cfg.Retry.BackoffFactor)

	// Response cache
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "memory", cfg.Cache.Provider)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)

	// Telemetry is opt-in
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PAGE3_LEGACY_BASE_URL", "https://staging.page3life.com/api")
	t.Setenv("PAGE3_WC_CONSUMER_KEY", "ck_env")
	t.Setenv("PAGE3_WC_CONSUMER_SECRET", "cs_env")
	t.Setenv("PAGE3_RETRY_MAX", "5")
	t.Setenv("PAGE3_HTTP_REQUEST_TIMEOUT", "20s")
	t.Setenv("PAGE3_CACHE_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.page3life.com/api", cfg.LegacyBaseURL)
	assert.Equal(t, "ck_env", cfg.ConsumerKey)
	assert.Equal(t, "cs_env", cfg.ConsumerSecret)
	assert.Equal(t, 5, cfg.Retry.MaxRetries)
	assert.Equal(t, 20*time.Second, cfg.HTTP.RequestTimeout)
	assert.False(t, cfg.Cache.Enabled)
}

func TestNewConfigOptionsWinOverEnv(t *testing.T) {
	t.Setenv("PAGE3_WC_CONSUMER_KEY", "ck_env")

	cfg, err := NewConfig(WithCredentials("ck_opt", "cs_opt"))
	require.NoError(t, err)

	assert.Equal(t, "ck_opt", cfg.ConsumerKey)
	assert.Equal(t, "cs_opt", cfg.ConsumerSecret)
}

func TestNewConfigOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithLegacyBaseURL("https://example.com/api"),
		WithWooCommerceBaseURL("https://example.com/wp-json/wc/v3"),
		WithConnectTimeout(3*time.Second),
		WithRequestTimeout(7*time.Second),
		WithRetry(RetryConfig{MaxRetries: 1, InitialDelay: time.Millisecond, MaxDelay: time.Second, BackoffFactor: 1.5}),
		WithCacheDisabled(),
		WithLogLevel("DEBUG"),
		WithTelemetry("otlp", "collector:4317"),
	)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api", cfg.LegacyBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ConnectTimeout)
	assert.Equal(t, 7*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 1, cfg.Retry.MaxRetries)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "no backend URLs",
			mutate:  func(c *Config) { c.LegacyBaseURL = ""; c.WooCommerceBaseURL = "" },
			wantErr: ErrMissingConfiguration,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Retry.MaxRetries = -1 },
			wantErr: ErrInvalidConfiguration,
		},
		{
			name:    "backoff factor below one",
			mutate:  func(c *Config) { c.Retry.BackoffFactor = 0.5 },
			wantErr: ErrInvalidConfiguration,
		},
		{
			name:    "redis without URL",
			mutate:  func(c *Config) { c.Cache.Provider = "redis" },
			wantErr: ErrMissingConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page3.yaml")
	content := `
legacy_base_url: https://file.page3life.com/api
consumer_key: ck_file
consumer_secret: cs_file
http:
  request_timeout: 25s
retry:
  max_retries: 4
cache:
  enabled: true
  provider: memory
  default_ttl: 1m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://file.page3life.com/api", cfg.LegacyBaseURL)
	assert.Equal(t, "ck_file", cfg.ConsumerKey)
	assert.Equal(t, 25*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 4, cfg.Retry.MaxRetries)
	assert.Equal(t, time.Minute, cfg.Cache.DefaultTTL)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
