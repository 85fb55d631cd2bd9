package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// ListRefunds fetches the refunds of an order.
func (c *Client) ListRefunds(ctx context.Context, orderID int) ([]Refund, error) {
	return transport.Call[[]Refund](ctx, c.caller, transport.Request{
		Op:      "wc.refunds.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/refunds", nil),
		Headers: jsonHeaders(),
	})
}

// GetRefund fetches one refund of an order.
func (c *Client) GetRefund(ctx context.Context, orderID, refundID int) (Refund, error) {
	return transport.Call[Refund](ctx, c.caller, transport.Request{
		Op:      "wc.refunds.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/refunds/"+strconv.Itoa(refundID), nil),
		Headers: jsonHeaders(),
	})
}

// CreateRefund issues a refund against an order.
func (c *Client) CreateRefund(ctx context.Context, orderID int, req CreateRefundRequest) (Refund, error) {
	return transport.Call[Refund](ctx, c.caller, transport.Request{
		Op:      "wc.refunds.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/refunds", nil),
		Headers: jsonHeaders(),
		Body:    req,
	})
}

// DeleteRefund removes a refund record. Refunds have no trash, so
// force is mandatory.
func (c *Client) DeleteRefund(ctx context.Context, orderID, refundID int) (Refund, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[Refund](ctx, c.caller, transport.Request{
		Op:      "wc.refunds.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/refunds/"+strconv.Itoa(refundID), v),
		Headers: jsonHeaders(),
	})
}
