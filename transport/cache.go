package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/page3life/storefront-go/core"
)

// responseCache caches successful GET responses so unchanged data is
// not re-fetched within a session. Freshness follows standard HTTP
// cache semantics: Cache-Control no-store/no-cache/private prevent
// storage, max-age sets the TTL, and the configured default TTL applies
// when the server sends no directive.
type responseCache struct {
	store      core.Cache
	defaultTTL time.Duration
	logger     core.Logger
}

// cachedResponse is the serialized form stored in the cache backend.
type cachedResponse struct {
	Status int                 `json:"status"`
	Header map[string][]string `json:"header"`
	Body   string              `json:"body"`
}

func cacheKey(req *http.Request) string {
	return req.URL.String()
}

func (c *responseCache) lookup(req *http.Request) (*http.Response, bool) {
	raw, err := c.store.Get(req.Context(), cacheKey(req))
	if err != nil || raw == "" {
		return nil, false
	}

	var cached cachedResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		// Corrupt entry; drop it and fall through to the network.
		_ = c.store.Delete(req.Context(), cacheKey(req))
		return nil, false
	}

	c.logger.Debug("Serving response from cache", map[string]interface{}{
		"operation": "http_cache_hit",
		"url":       core.RedactURL(req.URL.String()),
	})

	header := http.Header(cached.Header)
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode:    cached.Status,
		Status:        strconv.Itoa(cached.Status) + " " + http.StatusText(cached.Status),
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(cached.Body)),
		ContentLength: int64(len(cached.Body)),
		Request:       req,
	}, true
}

// persist stores a response and returns a replacement response whose
// body is still readable by the caller.
func (c *responseCache) persist(req *http.Request, resp *http.Response) *http.Response {
	ttl, cacheable := cacheTTL(resp.Header, c.defaultTTL)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		resp.Body = io.NopCloser(bytes.NewReader(body))
		return resp
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if !cacheable {
		return resp
	}

	entry, err := json.Marshal(cachedResponse{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   string(body),
	})
	if err == nil {
		if err := c.store.Set(req.Context(), cacheKey(req), string(entry), ttl); err != nil {
			c.logger.Warn("Failed to store response in cache", map[string]interface{}{
				"operation": "http_cache_store",
				"url":       core.RedactURL(req.URL.String()),
				"error":     err.Error(),
			})
		}
	}
	return resp
}

// cacheTTL derives the storage TTL from Cache-Control. The second
// return value is false when the response must not be stored.
func cacheTTL(header http.Header, defaultTTL time.Duration) (time.Duration, bool) {
	cc := strings.ToLower(header.Get("Cache-Control"))
	if cc == "" {
		return defaultTTL, defaultTTL > 0
	}
	for _, directive := range strings.Split(cc, ",") {
		directive = strings.TrimSpace(directive)
		switch {
		case directive == "no-store", directive == "no-cache", directive == "private":
			return 0, false
		case strings.HasPrefix(directive, "max-age="):
			secs, err := strconv.Atoi(strings.TrimPrefix(directive, "max-age="))
			if err != nil || secs <= 0 {
				return 0, false
			}
			return time.Duration(secs) * time.Second, true
		}
	}
	return defaultTTL, defaultTTL > 0
}
