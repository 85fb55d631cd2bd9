package legacy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/page3life/storefront-go/transport"
)

// GetCart fetches the caller's cart with populated line items.
func (c *Client) GetCart(ctx context.Context) (Cart, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return Cart{}, err
	}
	return transport.Call[Cart](ctx, c.caller, transport.Request{
		Op:      "cart.get",
		Method:  http.MethodGet,
		URL:     c.url("/cart"),
		Headers: headers,
	})
}

// AddToCart adds a product (optionally with a size) to the cart.
// The backend exposes this as PUT /api/cart/add.
func (c *Client) AddToCart(ctx context.Context, req AddToCartRequest) (AddToCartResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return AddToCartResponse{}, err
	}
	return transport.Call[AddToCartResponse](ctx, c.caller, transport.Request{
		Op:      "cart.add",
		Method:  http.MethodPut,
		URL:     c.url("/cart/add"),
		Headers: headers,
		Body:    req,
	})
}

// UpdateCartItem changes the quantity of one cart line.
func (c *Client) UpdateCartItem(ctx context.Context, req UpdateCartItemRequest) (StatusResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return StatusResponse{}, err
	}
	return transport.Call[StatusResponse](ctx, c.caller, transport.Request{
		Op:      "cart.update",
		Method:  http.MethodPut,
		URL:     c.url("/cart/update"),
		Headers: headers,
		Body:    req,
	})
}

// RemoveCartItem removes one product (and size variant) from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, productID, size string) (StatusResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return StatusResponse{}, err
	}
	u := c.url("/cart/remove/" + url.PathEscape(productID))
	if size != "" {
		u += "?size=" + url.QueryEscape(size)
	}
	return transport.Call[StatusResponse](ctx, c.caller, transport.Request{
		Op:      "cart.remove",
		Method:  http.MethodDelete,
		URL:     u,
		Headers: headers,
	})
}

// ClearCart removes every line from the cart. Success is defined by
// status alone; the backend returns no body.
func (c *Client) ClearCart(ctx context.Context) error {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return err
	}
	return transport.CallUnit(ctx, c.caller, transport.Request{
		Op:      "cart.clear",
		Method:  http.MethodDelete,
		URL:     c.url("/cart"),
		Headers: headers,
	})
}
