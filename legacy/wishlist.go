package legacy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/page3life/storefront-go/transport"
)

// GetWishlist fetches the caller's wishlist with populated products.
func (c *Client) GetWishlist(ctx context.Context) (Wishlist, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return Wishlist{}, err
	}
	return transport.Call[Wishlist](ctx, c.caller, transport.Request{
		Op:      "wishlist.get",
		Method:  http.MethodGet,
		URL:     c.url("/wishlist"),
		Headers: headers,
	})
}

// AddToWishlist saves a product to the wishlist. Duplicate products
// are rejected server-side.
func (c *Client) AddToWishlist(ctx context.Context, productID string) (StatusResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return StatusResponse{}, err
	}
	return transport.Call[StatusResponse](ctx, c.caller, transport.Request{
		Op:      "wishlist.add",
		Method:  http.MethodPut,
		URL:     c.url("/wishlist/add"),
		Headers: headers,
		Body:    map[string]string{"productId": productID},
	})
}

// RemoveFromWishlist removes a product from the wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) (StatusResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return StatusResponse{}, err
	}
	return transport.Call[StatusResponse](ctx, c.caller, transport.Request{
		Op:      "wishlist.remove",
		Method:  http.MethodDelete,
		URL:     c.url("/wishlist/remove/" + url.PathEscape(productID)),
		Headers: headers,
	})
}
