package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/page3life/storefront-go/transport"
)

// ListShippingZones fetches all shipping zones.
func (c *Client) ListShippingZones(ctx context.Context) ([]ShippingZone, error) {
	return transport.Call[[]ShippingZone](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZones.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/shipping/zones", nil),
		Headers: jsonHeaders(),
	})
}

// GetShippingZone fetches one shipping zone by id.
func (c *Client) GetShippingZone(ctx context.Context, id int) (ShippingZone, error) {
	return transport.Call[ShippingZone](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZones.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
	})
}

// CreateShippingZone creates a shipping zone.
func (c *Client) CreateShippingZone(ctx context.Context, zone ShippingZone) (ShippingZone, error) {
	return transport.Call[ShippingZone](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZones.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/shipping/zones", nil),
		Headers: jsonHeaders(),
		Body:    zone,
	})
}

// UpdateShippingZone applies a partial update to a shipping zone.
func (c *Client) UpdateShippingZone(ctx context.Context, id int, zone ShippingZone) (ShippingZone, error) {
	return transport.Call[ShippingZone](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZones.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(id), nil),
		Headers: jsonHeaders(),
		Body:    zone,
	})
}

// DeleteShippingZone deletes a shipping zone.
func (c *Client) DeleteShippingZone(ctx context.Context, id int) (ShippingZone, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[ShippingZone](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZones.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(id), v),
		Headers: jsonHeaders(),
	})
}

// GetShippingZoneLocations fetches the locations attached to a zone.
func (c *Client) GetShippingZoneLocations(ctx context.Context, zoneID int) ([]ShippingZoneLocation, error) {
	return transport.Call[[]ShippingZoneLocation](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneLocations.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/locations", nil),
		Headers: jsonHeaders(),
	})
}

// UpdateShippingZoneLocations replaces the locations attached to a
// zone. The API has no per-location operations, the whole set is sent
// every time.
func (c *Client) UpdateShippingZoneLocations(ctx context.Context, zoneID int, locations []ShippingZoneLocation) ([]ShippingZoneLocation, error) {
	return transport.Call[[]ShippingZoneLocation](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneLocations.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/locations", nil),
		Headers: jsonHeaders(),
		Body:    locations,
	})
}

// ListShippingZoneMethods fetches the shipping methods enabled on a
// zone.
func (c *Client) ListShippingZoneMethods(ctx context.Context, zoneID int) ([]ShippingZoneMethod, error) {
	return transport.Call[[]ShippingZoneMethod](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneMethods.list",
		Method:  http.MethodGet,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/methods", nil),
		Headers: jsonHeaders(),
	})
}

// GetShippingZoneMethod fetches one shipping method instance on a zone.
func (c *Client) GetShippingZoneMethod(ctx context.Context, zoneID, instanceID int) (ShippingZoneMethod, error) {
	return transport.Call[ShippingZoneMethod](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneMethods.get",
		Method:  http.MethodGet,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/methods/"+strconv.Itoa(instanceID), nil),
		Headers: jsonHeaders(),
	})
}

// AddShippingZoneMethod enables a shipping method on a zone.
func (c *Client) AddShippingZoneMethod(ctx context.Context, zoneID int, methodID string) (ShippingZoneMethod, error) {
	return transport.Call[ShippingZoneMethod](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneMethods.create",
		Method:  http.MethodPost,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/methods", nil),
		Headers: jsonHeaders(),
		Body:    map[string]string{"method_id": methodID},
	})
}

// UpdateShippingZoneMethod applies a partial update to a shipping
// method instance.
func (c *Client) UpdateShippingZoneMethod(ctx context.Context, zoneID, instanceID int, method ShippingZoneMethod) (ShippingZoneMethod, error) {
	return transport.Call[ShippingZoneMethod](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneMethods.update",
		Method:  http.MethodPut,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/methods/"+strconv.Itoa(instanceID), nil),
		Headers: jsonHeaders(),
		Body:    method,
	})
}

// DeleteShippingZoneMethod removes a shipping method instance from a
// zone.
func (c *Client) DeleteShippingZoneMethod(ctx context.Context, zoneID, instanceID int) (ShippingZoneMethod, error) {
	v := url.Values{}
	v.Set("force", "true")
	return transport.Call[ShippingZoneMethod](ctx, c.caller, transport.Request{
		Op:      "wc.shippingZoneMethods.delete",
		Method:  http.MethodDelete,
		URL:     c.endpoint("/shipping/zones/"+strconv.Itoa(zoneID)+"/methods/"+strconv.Itoa(instanceID), v),
		Headers: jsonHeaders(),
	})
}
