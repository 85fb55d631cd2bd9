package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// CouponListParams are the supported coupon list filters.
type CouponListParams struct {
	Page    int
	PerPage int
	Search  string
	Code    string
}

func (p CouponListParams) values() url.Values {
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
	if p.Code != "" {
		v.Set("code", p.Code)
	}
	return v
}

// ListCoupons fetches one page of coupons.
func (c *Client) ListCoupons(ctx context.Context, params CouponListParams) ([]Coupon, error) {
	return transport.Call[[]Coupon](ctx, c.caller, transport.Request{
		Op:      "wc.coupons.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/coupons", params.values()),
		Headers: jsonHeaders(),
	})
}

// GetCoupon fetches one coupon by id.
func (c *Client) GetCoupon(ctx context.Context, id int) (Coupon, error) {
	return transport.Call[Coupon](ctx, c.caller, transport.Request{
		Op:      "wc.coupons.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/coupons/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, coupon Coupon) (Coupon, error) {
	return transport.Call[Coupon](ctx, c.caller, transport.Request{
		Op:      "wc.coupons.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/coupons", nil),
		Headers: jsonHeaders(),
		Body:    coupon,
	})
}

// UpdateCoupon applies a partial update to a coupon.
func (c *Client) UpdateCoupon(ctx context.Context, id int, coupon Coupon) (Coupon, error) {
	return transport.Call[Coupon](ctx, c.caller, transport.Request{
		Op:      "wc.coupons.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/coupons/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    coupon,
	})
}

// DeleteCoupon deletes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, id int, force bool) (Coupon, error) {
	v := url.Values{}
	if force {
		v.Set("force", "true")
	}
	return transport.Call[Coupon](ctx, c.caller, transport.Request{
		Op:      "wc.coupons.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/coupons/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}
