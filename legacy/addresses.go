package legacy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/page3life/storefront-go/transport"
)

// ListAddresses fetches the caller's saved addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]AddressDetail, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]AddressDetail](ctx, c.caller, transport.Request{
		Op:      "addresses.list",
		Method:  http.MethodGet,
		URL:     c.url("/addresses"),
		Headers: headers,
	})
}

// AddAddress saves a new address.
func (c *Client) AddAddress(ctx context.Context, req AddressRequest) (AddressDetail, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return AddressDetail{}, err
	}
	return transport.Call[AddressDetail](ctx, c.caller, transport.Request{
		Op:      "addresses.add",
		Method:  http.MethodPost,
		URL:     c.url("/addresses"),
		Headers: headers,
		Body:    req,
	})
}

// UpdateAddress replaces an existing address.
func (c *Client) UpdateAddress(ctx context.Context, addressID string, req AddressRequest) (AddressDetail, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return AddressDetail{}, err
	}
	return transport.Call[AddressDetail](ctx, c.caller, transport.Request{
		Op:      "addresses.update",
		Method:  http.MethodPut,
		URL:     c.url("/addresses/" + url.PathEscape(addressID)),
		Headers: headers,
		Body:    req,
	})
}

// DeleteAddress removes a saved address. The backend returns no body.
func (c *Client) DeleteAddress(ctx context.Context, addressID string) error {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return err
	}
	return transport.CallUnit(ctx, c.caller, transport.Request{
		Op:      "addresses.delete",
		Method:  http.MethodDelete,
		URL:     c.url("/addresses/" + url.PathEscape(addressID)),
		Headers: headers,
	})
}

// SetDefaultAddress marks one address as the default. The server
// clears the flag on any previous default; the client only requests
// the change.
func (c *Client) SetDefaultAddress(ctx context.Context, addressID string) (StatusResponse, error) {
	headers, err := c.authHeaders(ctx, true)
	if err != nil {
		return StatusResponse{}, err
	}
	return transport.Call[StatusResponse](ctx, c.caller, transport.Request{
		Op:      "addresses.setDefault",
		Method:  http.MethodPut,
		URL:     c.url("/addresses/" + url.PathEscape(addressID) + "/default"),
		Headers: headers,
	})
}
