package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// ListTaxRates fetches one page of tax rates, optionally filtered by
// tax class.
func (c *Client) ListTaxRates(ctx context.Context, page, perPage int, class string) ([]TaxRate, error) {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	if class != "" {
		v.Set("class", class)
	}
	return transport.Call[[]TaxRate](ctx, c.caller, transport.Request{
		Op:      "wc.taxes.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/taxes", v),
		Headers: jsonHeaders(),
	})
}

// GetTaxRate fetches one tax rate by id.
func (c *Client) GetTaxRate(ctx context.Context, id int) (TaxRate, error) {
	return transport.Call[TaxRate](ctx, c.caller, transport.Request{
		Op:      "wc.taxes.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/taxes/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateTaxRate creates a tax rate.
func (c *Client) CreateTaxRate(ctx context.Context, rate TaxRate) (TaxRate, error) {
	return transport.Call[TaxRate](ctx, c.caller, transport.Request{
		Op:      "wc.taxes.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/taxes", nil),
		Headers: jsonHeaders(),
		Body:    rate,
	})
}

// UpdateTaxRate applies a partial update to a tax rate.
func (c *Client) UpdateTaxRate(ctx context.Context, id int, rate TaxRate) (TaxRate, error) {
	return transport.Call[TaxRate](ctx, c.caller, transport.Request{
		Op:      "wc.taxes.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/taxes/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    rate,
	})
}

// DeleteTaxRate deletes a tax rate. Rates have no trash, so force is
// mandatory.
func (c *Client) DeleteTaxRate(ctx context.Context, id int) (TaxRate, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[TaxRate](ctx, c.caller, transport.Request{
		Op:      "wc.taxes.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/taxes/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}

// ListTaxClasses fetches all tax classes.
func (c *Client) ListTaxClasses(ctx context.Context) ([]TaxClass, error) {
	return transport.Call[[]TaxClass](ctx, c.caller, transport.Request{
		Op:      "wc.taxClasses.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/taxes/classes", nil),
		Headers: jsonHeaders(),
	})
}

// CreateTaxClass creates a tax class.
func (c *Client) CreateTaxClass(ctx context.Context, name string) (TaxClass, error) {
	return transport.Call[TaxClass](ctx, c.caller, transport.Request{
		Op:      "wc.taxClasses.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/taxes/classes", nil),
		Headers: jsonHeaders(),
		Body:    map[string]string{"name": name},
	})
}

// DeleteTaxClass deletes a tax class by slug.
func (c *Client) DeleteTaxClass(ctx context.Context, slug string) (TaxClass, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[TaxClass](ctx, c.caller, transport.Request{
		Op:      "wc.taxClasses.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/taxes/classes/"+url.PathEscape(slug), v),
		Headers: jsonHeaders(),
	})
}
