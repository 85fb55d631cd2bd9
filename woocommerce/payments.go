package woocommerce

import (
	"context"
	"net/http"

	"github.com/page3life/storefront-go/transport"
)

// ListPaymentGateways fetches all configured payment gateways.
func (c *Client) ListPaymentGateways(ctx context.Context) ([]PaymentGateway, error) {
	return transport.Call[[]PaymentGateway](ctx, c.caller, transport.Request{
		Op:      "wc.paymentGateways.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/payment_gateways", nil),
		Headers: jsonHeaders(),
	})
}

// GetPaymentGateway fetches one payment gateway by id, e.g. "cod" or
// "stripe".
func (c *Client) GetPaymentGateway(ctx context.Context, id string) (PaymentGateway, error) {
	return transport.Call[PaymentGateway](ctx, c.caller, transport.Request{
		Op:      "wc.paymentGateways.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/payment_gateways/"+id, nil),
		Headers: jsonHeaders(),
	})
}

// UpdatePaymentGateway applies a partial update to a gateway, typically
// toggling enabled or reordering.
func (c *Client) UpdatePaymentGateway(ctx context.Context, id string, gateway PaymentGateway) (PaymentGateway, error) {
	return transport.Call[PaymentGateway](ctx, c.caller, transport.Request{
		Op:      "wc.paymentGateways.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/payment_gateways/"+id, nil),
		Headers: jsonHeaders(),
		Body:    gateway,
	})
}
