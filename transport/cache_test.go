package transport

import (
	"net/http"
	"testing"
	"time"
)

func TestCacheTTL(t *testing.T) {
	defaultTTL := 5 * time.Minute

	tests := []struct {
		name         string
		cacheControl string
		wantTTL      time.Duration
		wantStore    bool
	}{
		{
			name:      "no directive uses default TTL",
			wantTTL:   defaultTTL,
			wantStore: true,
		},
		{
			name:         "no-store prevents caching",
			cacheControl: "no-store",
			wantStore:    false,
		},
		{
			name:         "no-cache prevents caching",
			cacheControl: "no-cache",
			wantStore:    false,
		},
		{
			name:         "private prevents caching",
			cacheControl: "private, max-age=600",
			wantStore:    false,
		},
		{
			name:         "max-age sets the TTL",
			cacheControl: "public, max-age=120",
			wantTTL:      2 * time.Minute,
			wantStore:    true,
		},
		{
			name:         "zero max-age prevents caching",
			cacheControl: "max-age=0",
			wantStore:    false,
		},
		{
			name:         "case insensitive",
			cacheControl: "No-Store",
			wantStore:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.cacheControl != "" {
				header.Set("Cache-Control", tt.cacheControl)
			}

			ttl, store := cacheTTL(header, defaultTTL)
			if store != tt.wantStore {
				t.Fatalf("cacheable = %v, want %v", store, tt.wantStore)
			}
			if store && ttl != tt.wantTTL {
				t.Errorf("ttl = %v, want %v", ttl, tt.wantTTL)
			}
		})
	}
}

func TestCacheTTLZeroDefaultDisablesCaching(t *testing.T) {
	_, store := cacheTTL(http.Header{}, 0)
	if store {
		t.Error("no directive with zero default TTL must not cache")
	}
}
