package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// CustomerListParams are the supported customer list filters.
type CustomerListParams struct {
	Page    int
	PerPage int
	Search  string
	Email   string
	Role    string
}

func (p CustomerListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Email != "" {
		v.Set("email", p.Email)
	}
	if p.Role != "" {
		v.Set("role", p.Role)
	}
	return v
}

// ListCustomers fetches one page of customers.
func (c *Client) ListCustomers(ctx context.Context, params CustomerListParams) ([]Customer, error) {
	return transport.Call[[]Customer](ctx, c.caller, transport.Request{
		Op:      "wc.customers.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/customers", params.values()),
		Headers: jsonHeaders(),
	})
}

// GetCustomer fetches one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int) (Customer, error) {
	return transport.Call[Customer](ctx, c.caller, transport.Request{
		Op:      "wc.customers.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/customers/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateCustomer creates a customer account.
func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	return transport.Call[Customer](ctx, c.caller, transport.Request{
		Op:      "wc.customers.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/customers", nil),
		Headers: jsonHeaders(),
		Body:    req,
	})
}

// UpdateCustomer applies a partial update to a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int, customer Customer) (Customer, error) {
	return transport.Call[Customer](ctx, c.caller, transport.Request{
		Op:      "wc.customers.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/customers/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    customer,
	})
}

// DeleteCustomer deletes a customer. WooCommerce requires force=true
// for customers since they have no trash state.
func (c *Client) DeleteCustomer(ctx context.Context, id int) (Customer, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[Customer](ctx, c.caller, transport.Request{
		Op:      "wc.customers.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/customers/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}
