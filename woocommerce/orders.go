package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// OrderListParams are the supported order list filters.
type OrderListParams struct {
	Page       int
	PerPage    int
	Search     string
	Status     string
	CustomerID int
	ProductID  int
	After      string
	Before     string
}

func (p OrderListParams) values() url.Values {
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
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.CustomerID > 0 {
		v.Set("customer", strconv.Itoa(p.CustomerID))
	}
	if p.ProductID > 0 {
		v.Set("product", strconv.Itoa(p.ProductID))
	}
	if p.After != "" {
		v.Set("after", p.After)
	}
	if p.Before != "" {
		v.Set("before", p.Before)
	}
	return v
}

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, params OrderListParams) ([]Order, error) {
	return transport.Call[[]Order](ctx, c.caller, transport.Request{
		Op:      "wc.orders.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/orders", params.values()),
		Headers: jsonHeaders(),
	})
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int) (Order, error) {
	return transport.Call[Order](ctx, c.caller, transport.Request{
		Op:      "wc.orders.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/orders/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateOrder creates an order. The payment method fields are the
// only required inputs.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	return transport.Call[Order](ctx, c.caller, transport.Request{
		Op:      "wc.orders.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/orders", nil),
		Headers: jsonHeaders(),
		Body:    req,
	})
}

// UpdateOrder applies a partial update to an order (typically a status
// transition).
func (c *Client) UpdateOrder(ctx context.Context, id int, order Order) (Order, error) {
	return transport.Call[Order](ctx, c.caller, transport.Request{
		Op:      "wc.orders.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/orders/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    order,
	})
}

// DeleteOrder deletes an order.
func (c *Client) DeleteOrder(ctx context.Context, id int, force bool) (Order, error) {
	v := url.Values{}
	if force {
		v.Set("force", "true")
	}
	return transport.Call[Order](ctx, c.caller, transport.Request{
		Op:      "wc.orders.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/orders/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}

// ListOrderNotes fetches the notes of an order.
func (c *Client) ListOrderNotes(ctx context.Context, orderID int) ([]OrderNote, error) {
	return transport.Call[[]OrderNote](ctx, c.caller, transport.Request{
		Op:      "wc.orderNotes.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/notes", nil),
		Headers: jsonHeaders(),
	})
}

// GetOrderNote fetches one note of an order.
func (c *Client) GetOrderNote(ctx context.Context, orderID, noteID int) (OrderNote, error) {
	return transport.Call[OrderNote](ctx, c.caller, transport.Request{
		Op:      "wc.orderNotes.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/notes/"+strconv.Itoa(noteID), nil),
		Headers: jsonHeaders(),
	})
}

// CreateOrderNote adds a note to an order.
func (c *Client) CreateOrderNote(ctx context.Context, orderID int, note string, customerNote bool) (OrderNote, error) {
	return transport.Call[OrderNote](ctx, c.caller, transport.Request{
		Op:      "wc.orderNotes.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/notes", nil),
		Headers: jsonHeaders(),
		Body: map[string]interface{}{
			"note":          note,
			"customer_note": customerNote,
		},
	})
}

// DeleteOrderNote removes a note from an order. Notes have no trash,
// so force is mandatory.
func (c *Client) DeleteOrderNote(ctx context.Context, orderID, noteID int) (OrderNote, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[OrderNote](ctx, c.caller, transport.Request{
		Op:      "wc.orderNotes.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/orders/"+strconv.Itoa(orderID)+"/notes/"+strconv.Itoa(noteID), v),
		Headers: jsonHeaders(),
	})
}
