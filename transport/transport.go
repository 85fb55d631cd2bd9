// Package transport implements the shared HTTP layer of the storefront
// SDK: one configured http.Client, a GET-only retry policy, a GET
// response cache, and the instrumented call wrapper both backend
// clients delegate to.
package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/page3life/storefront-go/core"
)

// Transport owns the process-wide HTTP client. It is created once and
// shared by every backend client; it holds no per-request state and is
// safe for concurrent use.
type Transport struct {
	client *http.Client
	retry  core.RetryConfig
	cache  *responseCache
	logger core.Logger
}

// New builds the shared transport from configuration. Timeouts are
// enforced at three points: dial, response header, and whole-request.
func New(cfg *core.Config, logger core.Logger, cache core.Cache) *Transport {
	if logger == nil {
		logger = &core.NoOpLogger{}
	}

	dialer := &net.Dialer{Timeout: cfg.HTTP.ConnectTimeout}
	base := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.HTTP.ConnectTimeout,
		ResponseHeaderTimeout: cfg.HTTP.ResponseHeaderTimeout,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
	}

	var rc *responseCache
	if cfg.Cache.Enabled {
		if cache == nil {
			cache = core.NewMemoryCache()
		}
		rc = &responseCache{
			store:      cache,
			defaultTTL: cfg.Cache.DefaultTTL,
			logger:     logger,
		}
	}

	return &Transport{
		client: &http.Client{
			Transport: otelhttp.NewTransport(base),
			Timeout:   cfg.HTTP.RequestTimeout,
		},
		retry:  cfg.Retry,
		cache:  rc,
		logger: logger,
	}
}

// NewCacheFromConfig constructs the cache backend named by the
// configuration. Returns nil when caching is disabled.
func NewCacheFromConfig(ctx context.Context, cfg *core.Config, logger core.Logger) (core.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Provider {
	case "", "memory":
		mc := core.NewMemoryCache()
		mc.SetLogger(logger)
		return mc, nil
	case "redis":
		return core.NewRedisCache(ctx, core.RedisCacheOptions{
			RedisURL: cfg.Cache.RedisURL,
			Logger:   logger,
		})
	default:
		return nil, fmt.Errorf("unknown cache provider %q: %w", cfg.Cache.Provider, core.ErrInvalidConfiguration)
	}
}

// Do executes a request. GET requests go through the response cache and
// the bounded retry policy; all other methods are sent exactly once so
// a mutation is never duplicated by this layer.
//
// Authenticated GETs bypass the cache entirely: the key is the URL, and
// a shared backend (Redis) must never serve one user's response to
// another.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.client.Do(req)
	}

	cache := t.cache
	if req.Header.Get("Authorization") != "" {
		cache = nil
	}

	if cache != nil {
		if resp, ok := cache.lookup(req); ok {
			return resp, nil
		}
	}

	resp, err := t.executeWithRetry(req)
	if err != nil {
		return nil, err
	}

	if cache != nil && resp.StatusCode == http.StatusOK {
		resp = cache.persist(req, resp)
	}
	return resp, nil
}

// executeWithRetry performs a GET with exponential backoff. Transport
// errors, 5xx and 429 are retried; other 4xx are returned immediately
// since retrying them cannot succeed.
func (t *Transport) executeWithRetry(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	var lastErr error
	delay := t.retry.InitialDelay

	for attempt := 0; attempt <= t.retry.MaxRetries; attempt++ {
		reqClone := req.Clone(ctx)

		resp, err := t.client.Do(reqClone)

		if err == nil && resp.StatusCode < 400 {
			if attempt > 0 {
				t.logger.Info("Request succeeded after retry", map[string]interface{}{
					"operation":          "http_retry_recovery",
					"successful_attempt": attempt + 1,
				})
			}
			return resp, nil
		}

		if err == nil && resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			_ = resp.Body.Close()
		}

		if attempt == t.retry.MaxRetries {
			break
		}

		t.logger.Warn("Request failed, retrying", map[string]interface{}{
			"operation":      "http_retry_wait",
			"attempt":        attempt + 1,
			"max_retries":    t.retry.MaxRetries,
			"retry_delay_ms": delay.Milliseconds(),
			"error":          lastErr.Error(),
			"error_type":     fmt.Sprintf("%T", lastErr),
		})

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * t.retry.BackoffFactor)
		if delay > t.retry.MaxDelay {
			delay = t.retry.MaxDelay
		}
	}

	t.logger.Error("Request failed after all retries", map[string]interface{}{
		"operation":      "http_retry_exhausted",
		"total_attempts": t.retry.MaxRetries + 1,
		"final_error":    lastErr.Error(),
	})
	return nil, fmt.Errorf("request failed after %d retries: %w", t.retry.MaxRetries, lastErr)
}
