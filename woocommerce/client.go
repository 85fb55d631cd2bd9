// Package woocommerce is the typed client for the WooCommerce REST API
// (https://www.page3life.com/wp-json/wc/v3). Authentication follows the
// WooCommerce REST key convention: consumer_key and consumer_secret are
// appended as query parameters, not sent as a bearer header. Each
// exported method maps 1:1 to one remote operation.
package woocommerce

import (
	"net/url"
	"strings"

	"github.com/page3life/storefront-go/core"
	"github.com/page3life/storefront-go/transport"
)

// Client issues requests to the WooCommerce backend. It is stateless
// and safe for concurrent use.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	caller         *transport.Caller
}

// NewClient creates a WooCommerce client from configuration.
func NewClient(cfg *core.Config, t *transport.Transport, logger core.Logger, telemetry core.Telemetry) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.WooCommerceBaseURL, "/"),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		caller:         transport.NewCaller(t, "woocommerce", logger, telemetry),
	}
}

// endpoint builds a full URL with the given query parameters plus the
// API credentials. Nil params is fine.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("consumer_key", c.consumerKey)
	params.Set("consumer_secret", c.consumerSecret)
	return c.baseURL + path + "?" + params.Encode()
}

func jsonHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
