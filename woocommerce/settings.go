package woocommerce

import (
	"context"
	"net/http"

	"github.com/page3life/storefront-go/transport"
)

// ListSettingGroups fetches all setting groups.
func (c *Client) ListSettingGroups(ctx context.Context) ([]SettingGroup, error) {
	return transport.Call[[]SettingGroup](ctx, c.caller, transport.Request{
		Op:      "wc.settings.groups",
		Method:  http.MethodGet,
		URL:     c.endpoint("/settings", nil),
		Headers: jsonHeaders(),
	})
}

// ListSettings fetches all options within a setting group.
func (c *Client) ListSettings(ctx context.Context, group string) ([]Setting, error) {
	return transport.Call[[]Setting](ctx, c.caller, transport.Request{
		Op:      "wc.settings.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/settings/"+group, nil),
		Headers: jsonHeaders(),
	})
}

// GetSetting fetches one option from a setting group.
func (c *Client) GetSetting(ctx context.Context, group, id string) (Setting, error) {
	return transport.Call[Setting](ctx, c.caller, transport.Request{
		Op:      "wc.settings.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/settings/"+group+"/"+id, nil),
		Headers: jsonHeaders(),
	})
}

// UpdateSetting writes a new value for one option.
func (c *Client) UpdateSetting(ctx context.Context, group, id string, value interface{}) (Setting, error) {
	return transport.Call[Setting](ctx, c.caller, transport.Request{
		Op:      "wc.settings.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/settings/"+group+"/"+id, nil),
		Headers: jsonHeaders(),
		Body:    map[string]interface{}{"value": value},
	})
}
