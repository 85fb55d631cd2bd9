// Package legacy is the typed client for the page3life legacy REST
// backend (https://www.page3life.com/api). Each exported method maps
// 1:1 to one remote operation: it builds the URL, headers and body,
// then delegates to the shared instrumented call wrapper. No business
// validation, retries, pagination traversal or result aggregation
// happens here.
package legacy

import (
	"context"
	"fmt"
	"strings"

	"github.com/page3life/storefront-go/core"
	"github.com/page3life/storefront-go/transport"
)

// Client issues requests to the legacy backend. It is stateless and
// safe for concurrent use; construct one and share it.
type Client struct {
	baseURL string
	caller  *transport.Caller
	tokens  core.TokenProvider
}

// NewClient creates a legacy-backend client. tokens may be nil when
// only unauthenticated endpoints are used.
func NewClient(cfg *core.Config, t *transport.Transport, logger core.Logger, telemetry core.Telemetry, tokens core.TokenProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.LegacyBaseURL, "/"),
		caller:  transport.NewCaller(t, "legacy", logger, telemetry),
		tokens:  tokens,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// authHeaders builds the standard header set. When required is true a
// missing token provider or empty token is an error; otherwise the
// Authorization header is simply omitted.
func (c *Client) authHeaders(ctx context.Context, required bool) (map[string]string, error) {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if c.tokens == nil {
		if required {
			return nil, core.ErrMissingToken
		}
		return headers, nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token provider: %w", err)
	}
	if token == "" {
		if required {
			return nil, core.ErrMissingToken
		}
		return headers, nil
	}
	headers["Authorization"] = "Bearer " + token
	return headers, nil
}
