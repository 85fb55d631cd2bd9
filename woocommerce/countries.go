package woocommerce

import (
	"context"
	"net/http"
	"strings"

	"github.com/page3life/storefront-go/transport"
)

// ListCountries fetches all selling countries and their states.
func (c *Client) ListCountries(ctx context.Context) ([]Country, error) {
	return transport.Call[[]Country](ctx, c.caller, transport.Request{
		Op:      "wc.data.countries",
		Method:  http.MethodGet,
		URL:     c.endpoint("/data/countries", nil),
		Headers: jsonHeaders(),
	})
}

// GetCountry fetches one country by its two-letter ISO code.
func (c *Client) GetCountry(ctx context.Context, code string) (Country, error) {
	return transport.Call[Country](ctx, c.caller, transport.Request{
		Op:      "wc.data.country",
		Method:  http.MethodGet,
		URL:     c.endpoint("/data/countries/"+strings.ToLower(code), nil),
		Headers: jsonHeaders(),
	})
}

// ListCurrencies fetches all supported currencies.
func (c *Client) ListCurrencies(ctx context.Context) ([]Currency, error) {
	return transport.Call[[]Currency](ctx, c.caller, transport.Request{
		Op:      "wc.data.currencies",
		Method:  http.MethodGet,
		URL:     c.endpoint("/data/currencies", nil),
		Headers: jsonHeaders(),
	})
}

// GetCurrency fetches one currency by its ISO 4217 code.
func (c *Client) GetCurrency(ctx context.Context, code string) (Currency, error) {
	return transport.Call[Currency](ctx, c.caller, transport.Request{
		Op:      "wc.data.currency",
		Method:  http.MethodGet,
		URL:     c.endpoint("/data/currencies/"+strings.ToLower(code), nil),
		Headers: jsonHeaders(),
	})
}

// GetCurrentCurrency fetches the store's active currency.
func (c *Client) GetCurrentCurrency(ctx context.Context) (Currency, error) {
	return transport.Call[Currency](ctx, c.caller, transport.Request{
		Op:      "wc.data.currencyCurrent",
		Method:  http.MethodGet,
		URL:     c.endpoint("/data/currencies/current", nil),
		Headers: jsonHeaders(),
	})
}

// GetSystemStatus fetches the store environment report.
func (c *Client) GetSystemStatus(ctx context.Context) (SystemStatus, error) {
	return transport.Call[SystemStatus](ctx, c.caller, transport.Request{
		Op:      "wc.systemStatus.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/system_status", nil),
		Headers: jsonHeaders(),
	})
}
