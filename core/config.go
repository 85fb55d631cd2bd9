package core

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the storefront SDK.
// It supports three-layer configuration priority:
//  1. Default values (lowest priority)
//  2. Environment variables (medium priority)
//  3. Functional options (highest priority)
//
// Example usage:
//
//	cfg, err := core.NewConfig(
//	    core.WithCredentials("ck_...", "cs_..."),
//	    core.WithRequestTimeout(10*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
type Config struct {
	// Backend base URLs
	LegacyBaseURL      string `yaml:"legacy_base_url"`
	WooCommerceBaseURL string `yaml:"woocommerce_base_url"`

	// WooCommerce REST API credentials (query-parameter auth)
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`

	// HTTP transport configuration
	HTTP HTTPConfig `yaml:"http"`

	// Retry policy for idempotent (GET) requests
	Retry RetryConfig `yaml:"retry"`

	// GET response cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`

	// Telemetry configuration (optional)
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// HTTPConfig contains transport timeouts. A request exceeding any of
// these fails with a timeout error rather than hanging.
type HTTPConfig struct {
	ConnectTimeout        time.Duration `yaml:"connect_timeout"`
	RequestTimeout        time.Duration `yaml:"request_timeout"`
	ResponseHeaderTimeout time.Duration `yaml:"response_header_timeout"`
}

// UnmarshalYAML accepts Go duration strings ("15s", "250ms") in config
// files.
func (h *HTTPConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ConnectTimeout        string `yaml:"connect_timeout"`
		RequestTimeout        string `yaml:"request_timeout"`
		ResponseHeaderTimeout string `yaml:"response_header_timeout"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if err := parseDuration(raw.ConnectTimeout, &h.ConnectTimeout); err != nil {
		return err
	}
	if err := parseDuration(raw.RequestTimeout, &h.RequestTimeout); err != nil {
		return err
	}
	return parseDuration(raw.ResponseHeaderTimeout, &h.ResponseHeaderTimeout)
}

// RetryConfig configures the GET retry policy. Non-GET requests are
// never auto-retried.
type RetryConfig struct {
	MaxRetries    int           `yaml:"max_retries"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	BackoffFactor float64       `yaml:"backoff_factor"`
}

func (r *RetryConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		MaxRetries    *int     `yaml:"max_retries"`
		InitialDelay  string   `yaml:"initial_delay"`
		MaxDelay      string   `yaml:"max_delay"`
		BackoffFactor *float64 `yaml:"backoff_factor"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.MaxRetries != nil {
		r.MaxRetries = *raw.MaxRetries
	}
	if raw.BackoffFactor != nil {
		r.BackoffFactor = *raw.BackoffFactor
	}
	if err := parseDuration(raw.InitialDelay, &r.InitialDelay); err != nil {
		return err
	}
	return parseDuration(raw.MaxDelay, &r.MaxDelay)
}

// CacheConfig configures the GET response cache. Provider is "memory"
// or "redis"; DefaultTTL applies when the server sends no Cache-Control
// max-age.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Provider   string        `yaml:"provider"`
	RedisURL   string        `yaml:"redis_url"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

func (c *CacheConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Enabled    *bool  `yaml:"enabled"`
		Provider   string `yaml:"provider"`
		RedisURL   string `yaml:"redis_url"`
		DefaultTTL string `yaml:"default_ttl"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Enabled != nil {
		c.Enabled = *raw.Enabled
	}
	if raw.Provider != "" {
		c.Provider = raw.Provider
	}
	if raw.RedisURL != "" {
		c.RedisURL = raw.RedisURL
	}
	return parseDuration(raw.DefaultTTL, &c.DefaultTTL)
}

func parseDuration(s string, dst *time.Duration) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, ErrInvalidConfiguration)
	}
	*dst = d
	return nil
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// TelemetryConfig contains tracing settings. Exporter is "stdout" or
// "otlp".
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
}

// Option is a functional configuration option
type Option func(*Config)

// NewConfig creates a configuration with defaults, environment
// overrides, then functional options, and validates the result.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	cfg.applyEnv()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		LegacyBaseURL:      "https://www.page3life.com/api",
		WooCommerceBaseURL: "https://www.page3life.com/wp-json/wc/v3",
		HTTP: HTTPConfig{
			ConnectTimeout:        10 * time.Second,
			RequestTimeout:        15 * time.Second,
			ResponseHeaderTimeout: 15 * time.Second,
		},
		Retry: RetryConfig{
			MaxRetries:    2,
			InitialDelay:  250 * time.Millisecond,
			MaxDelay:      2 * time.Second,
			BackoffFactor: 2.0,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Provider:   "memory",
			DefaultTTL: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:   "INFO",
			Service: "storefront-go",
		},
		Telemetry: TelemetryConfig{
			Exporter: "stdout",
		},
	}
}

func (c *Config) applyEnv() {
	setString(&c.LegacyBaseURL, "PAGE3_LEGACY_BASE_URL")
	setString(&c.WooCommerceBaseURL, "PAGE3_WC_BASE_URL")
	setString(&c.ConsumerKey, "PAGE3_WC_CONSUMER_KEY")
	setString(&c.ConsumerSecret, "PAGE3_WC_CONSUMER_SECRET")
	setDuration(&c.HTTP.ConnectTimeout, "PAGE3_HTTP_CONNECT_TIMEOUT")
	setDuration(&c.HTTP.RequestTimeout, "PAGE3_HTTP_REQUEST_TIMEOUT")
	setDuration(&c.HTTP.ResponseHeaderTimeout, "PAGE3_HTTP_RESPONSE_HEADER_TIMEOUT")
	setInt(&c.Retry.MaxRetries, "PAGE3_RETRY_MAX")
	setDuration(&c.Retry.InitialDelay, "PAGE3_RETRY_INITIAL_DELAY")
	setDuration(&c.Retry.MaxDelay, "PAGE3_RETRY_MAX_DELAY")
	setBool(&c.Cache.Enabled, "PAGE3_CACHE_ENABLED")
	setString(&c.Cache.Provider, "PAGE3_CACHE_PROVIDER")
	setString(&c.Cache.RedisURL, "PAGE3_REDIS_URL")
	setString(&c.Logging.Level, "PAGE3_LOG_LEVEL")
	setBool(&c.Telemetry.Enabled, "PAGE3_TELEMETRY_ENABLED")
	setString(&c.Telemetry.Exporter, "PAGE3_TELEMETRY_EXPORTER")
	setString(&c.Telemetry.Endpoint, "PAGE3_TELEMETRY_ENDPOINT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.LegacyBaseURL == "" && c.WooCommerceBaseURL == "" {
		return fmt.Errorf("at least one backend base URL must be set: %w", ErrMissingConfiguration)
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry max must be >= 0: %w", ErrInvalidConfiguration)
	}
	if c.Retry.BackoffFactor < 1 {
		return fmt.Errorf("backoff factor must be >= 1: %w", ErrInvalidConfiguration)
	}
	if c.Cache.Enabled && c.Cache.Provider == "redis" && c.Cache.RedisURL == "" {
		return fmt.Errorf("redis cache requires a redis URL: %w", ErrMissingConfiguration)
	}
	return nil
}

// LoadConfigFile reads a YAML configuration file and applies it over
// defaults and environment variables.
func LoadConfigFile(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := defaultConfig()
	cfg.applyEnv()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithLegacyBaseURL overrides the legacy backend base URL
func WithLegacyBaseURL(u string) Option {
	return func(c *Config) { c.LegacyBaseURL = u }
}

// WithWooCommerceBaseURL overrides the WooCommerce base URL
func WithWooCommerceBaseURL(u string) Option {
	return func(c *Config) { c.WooCommerceBaseURL = u }
}

// WithCredentials sets the WooCommerce consumer key and secret
func WithCredentials(key, secret string) Option {
	return func(c *Config) {
		c.ConsumerKey = key
		c.ConsumerSecret = secret
	}
}

// WithConnectTimeout overrides the dial timeout
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Config) { c.HTTP.ConnectTimeout = d }
}

// WithRequestTimeout overrides the overall request timeout
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) { c.HTTP.RequestTimeout = d }
}

// WithRetry overrides the GET retry policy
func WithRetry(r RetryConfig) Option {
	return func(c *Config) { c.Retry = r }
}

// WithCacheDisabled turns off the GET response cache
func WithCacheDisabled() Option {
	return func(c *Config) { c.Cache.Enabled = false }
}

// WithRedisCache switches the GET response cache to Redis
func WithRedisCache(redisURL string) Option {
	return func(c *Config) {
		c.Cache.Enabled = true
		c.Cache.Provider = "redis"
		c.Cache.RedisURL = redisURL
	}
}

// WithLogLevel overrides the log level
func WithLogLevel(level string) Option {
	return func(c *Config) { c.Logging.Level = level }
}

// WithTelemetry enables tracing with the given exporter ("stdout" or
// "otlp") and endpoint
func WithTelemetry(exporter, endpoint string) Option {
	return func(c *Config) {
		c.Telemetry.Enabled = true
		c.Telemetry.Exporter = exporter
		c.Telemetry.Endpoint = endpoint
	}
}
