package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// ProductListParams are the supported product list filters. Zero
// values are omitted from the query string.
type ProductListParams struct {
	Page        int
	PerPage     int
	Search      string
	CategoryID  int
	SKU         string
	Status      string
	StockStatus string
	OrderBy     string
	Order       string
}

func (p ProductListParams) values() url.Values {
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
	if p.CategoryID > 0 {
		v.Set("category", strconv.Itoa(p.CategoryID))
	}
	if p.SKU != "" {
		v.Set("sku", p.SKU)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.StockStatus != "" {
		v.Set("stock_status", p.StockStatus)
	}
	if p.OrderBy != "" {
		v.Set("orderby", p.OrderBy)
	}
	if p.Order != "" {
		v.Set("order", p.Order)
	}
	return v
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, params ProductListParams) ([]Product, error) {
	return transport.Call[[]Product](ctx, c.caller, transport.Request{
		Op:      "wc.products.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/products", params.values()),
		Headers: jsonHeaders(),
	})
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	return transport.Call[Product](ctx, c.caller, transport.Request{
		Op:      "wc.products.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/products/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateProduct creates a product. Unset fields are omitted from the
// body and fall back to WooCommerce defaults.
func (c *Client) CreateProduct(ctx context.Context, product Product) (Product, error) {
	return transport.Call[Product](ctx, c.caller, transport.Request{
		Op:      "wc.products.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/products", nil),
		Headers: jsonHeaders(),
		Body:    product,
	})
}

// UpdateProduct applies a partial update to a product.
func (c *Client) UpdateProduct(ctx context.Context, id int, product Product) (Product, error) {
	return transport.Call[Product](ctx, c.caller, transport.Request{
		Op:      "wc.products.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/products/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    product,
	})
}

// DeleteProduct deletes a product. force skips the trash and removes
// it permanently.
func (c *Client) DeleteProduct(ctx context.Context, id int, force bool) (Product, error) {
	v := url.Values{}
	if force {
		v.Set("force", "true")
	}
	return transport.Call[Product](ctx, c.caller, transport.Request{
		Op:      "wc.products.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/products/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}

// ListCategories fetches one page of product categories.
func (c *Client) ListCategories(ctx context.Context, page, perPage int) ([]Category, error) {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	return transport.Call[[]Category](ctx, c.caller, transport.Request{
		Op:      "wc.categories.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/products/categories", v),
		Headers: jsonHeaders(),
	})
}

// GetCategory fetches one product category by id.
func (c *Client) GetCategory(ctx context.Context, id int) (Category, error) {
	return transport.Call[Category](ctx, c.caller, transport.Request{
		Op:      "wc.categories.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/products/categories/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateCategory creates a product category.
func (c *Client) CreateCategory(ctx context.Context, category Category) (Category, error) {
	return transport.Call[Category](ctx, c.caller, transport.Request{
		Op:      "wc.categories.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/products/categories", nil),
		Headers: jsonHeaders(),
		Body:    category,
	})
}

// UpdateCategory applies a partial update to a product category.
func (c *Client) UpdateCategory(ctx context.Context, id int, category Category) (Category, error) {
	return transport.Call[Category](ctx, c.caller, transport.Request{
		Op:      "wc.categories.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/products/categories/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    category,
	})
}

// DeleteCategory deletes a product category.
func (c *Client) DeleteCategory(ctx context.Context, id int, force bool) (Category, error) {
	v := url.Values{}
	if force {
		v.Set("force", "true")
	}
	return transport.Call[Category](ctx, c.caller, transport.Request{
		Op:      "wc.categories.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/products/categories/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}
