package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// ListWebhooks fetches one page of webhooks.
func (c *Client) ListWebhooks(ctx context.Context, page, perPage int) ([]Webhook, error) {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	return transport.Call[[]Webhook](ctx, c.caller, transport.Request{
		Op:      "wc.webhooks.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/webhooks", v),
		Headers: jsonHeaders(),
	})
}

// GetWebhook fetches one webhook by id.
func (c *Client) GetWebhook(ctx context.Context, id int) (Webhook, error) {
	return transport.Call[Webhook](ctx, c.caller, transport.Request{
		Op:      "wc.webhooks.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/webhooks/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateWebhook registers a new webhook.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (Webhook, error) {
	return transport.Call[Webhook](ctx, c.caller, transport.Request{
		Op:      "wc.webhooks.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/webhooks", nil),
		Headers: jsonHeaders(),
		Body:    req,
	})
}

// UpdateWebhook applies a partial update to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, id int, hook Webhook) (Webhook, error) {
	return transport.Call[Webhook](ctx, c.caller, transport.Request{
		Op:      "wc.webhooks.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/webhooks/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    hook,
	})
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, id int) (Webhook, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[Webhook](ctx, c.caller, transport.Request{
		Op:      "wc.webhooks.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/webhooks/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}
