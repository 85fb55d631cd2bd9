package legacy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// ProductQuery holds the optional list filters. Zero-valued fields are
// omitted from the query string entirely, never sent empty.
type ProductQuery struct {
	Category    string
	SubCategory string
	Brand       string
	Color       string
	MinPrice    float64
	MaxPrice    float64
	Stock       StockStatus
	Sort        SortKey
	Search      string
	Page        int
	Limit       int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.SubCategory != "" {
		v.Set("subCategory", q.SubCategory)
	}
	if q.Brand != "" {
		v.Set("brand", q.Brand)
	}
	if q.Color != "" {
		v.Set("color", q.Color)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if s := q.Stock.wire(); s != "" {
		v.Set("stock", s)
	}
	if s := q.Sort.wire(); s != "" {
		v.Set("sort", s)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// ListProducts fetches one page of products matching the query.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	u := c.url("/products")
	if qs := q.values().Encode(); qs != "" {
		u += "?" + qs
	}
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]Product](ctx, c.caller, transport.Request{
		Op:      "products.list",
		Method:  http.MethodGet,
		URL:     u,
		Headers: headers,
	})
}

// GetProduct fetches the fully-populated detail shape for one product.
func (c *Client) GetProduct(ctx context.Context, productID string) (ProductDetailed, error) {
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return ProductDetailed{}, err
	}
	return transport.Call[ProductDetailed](ctx, c.caller, transport.Request{
		Op:      "products.get",
		Method:  http.MethodGet,
		URL:     c.url("/products/" + url.PathEscape(productID)),
		Headers: headers,
	})
}

// SearchProducts runs a free-text product search.
func (c *Client) SearchProducts(ctx context.Context, query string, page, limit int) ([]Product, error) {
	v := url.Values{}
	v.Set("q", query)
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]Product](ctx, c.caller, transport.Request{
		Op:      "products.search",
		Method:  http.MethodGet,
		URL:     c.url("/products/search") + "?" + v.Encode(),
		Headers: headers,
	})
}

// ListCategories fetches all top-level categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]Category](ctx, c.caller, transport.Request{
		Op:      "categories.list",
		Method:  http.MethodGet,
		URL:     c.url("/categories"),
		Headers: headers,
	})
}

// ListSubCategories fetches subcategories, optionally filtered by
// parent category.
func (c *Client) ListSubCategories(ctx context.Context, categoryID string) ([]SubCategory, error) {
	u := c.url("/subcategories")
	if categoryID != "" {
		u += "?category=" + url.QueryEscape(categoryID)
	}
	headers, err := c.authHeaders(ctx, false)
	if err != nil {
		return nil, err
	}
	return transport.Call[[]SubCategory](ctx, c.caller, transport.Request{
		Op:      "subcategories.list",
		Method:  http.MethodGet,
		URL:     u,
		Headers: headers,
	})
}
