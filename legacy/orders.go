package legacy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// CreateOrder creates an order from the current cart. Chaining to
// CreatePaymentLink is the caller's responsibility; this layer never
// sequences dependent calls.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return CreateOrderResponse{}, err
	}
	return transport.Call[CreateOrderResponse](ctx, c.caller, transport.Request{
		Op:      "orders.create",
		Method:  http.MethodPost,
		URL:     c.url("/orders"),
		Headers: headers,
		Body:    req,
	})
}

// ListOrders fetches one page of the caller's orders.
func (c *Client) ListOrders(ctx context.Context, page, limit int) ([]Order, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return nil, err
	}
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	u := c.url("/orders")
	if qs := v.Encode(); qs != "" {
		u += "?" + qs
	}
	return transport.Call[[]Order](ctx, c.caller, transport.Request{
		Op:      "orders.list",
		Method:  http.MethodGet,
		URL:     u,
		Headers: headers,
	})
}

// GetOrder fetches the fully-populated shape of one order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (OrderDetailed, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return OrderDetailed{}, err
	}
	return transport.Call[OrderDetailed](ctx, c.caller, transport.Request{
		Op:      "orders.get",
		Method:  http.MethodGet,
		URL:     c.url("/orders/" + url.PathEscape(orderID)),
		Headers: headers,
	})
}

// CancelOrder requests cancellation of an order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (StatusResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return StatusResponse{}, err
	}
	return transport.Call[StatusResponse](ctx, c.caller, transport.Request{
		Op:      "orders.cancel",
		Method:  http.MethodPut,
		URL:     c.url("/orders/" + url.PathEscape(orderID) + "/cancel"),
		Headers: headers,
	})
}

// CreatePaymentLink requests a hosted payment page for a created
// order.
func (c *Client) CreatePaymentLink(ctx context.Context, orderID string) (PaymentLinkResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return PaymentLinkResponse{}, err
	}
	return transport.Call[PaymentLinkResponse](ctx, c.caller, transport.Request{
		Op:      "payments.link",
		Method:  http.MethodPost,
		URL:     c.url("/payments/" + url.PathEscape(orderID)),
		Headers: headers,
	})
}
