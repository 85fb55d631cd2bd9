package legacy

import "testing"

func TestSortKeyWire(t *testing.T) {
	tests := []struct {
		key  SortKey
		want string
	}{
		{SortDefault, ""},
		{SortPriceLowToHigh, "price_low"},
		{SortPriceHighToLow, "price_high"},
		{SortNewest, "newest"},
		{SortPopularity, "popularity"},
		{SortKey(99), ""},
	}
	for _, tt := range tests {
		if got := tt.key.wire(); got != tt.want {
			t.Errorf("wire(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestStockStatusWire(t *testing.T) {
	if got := StockAny.wire(); got != "" {
		t.Errorf("StockAny.wire() = %q, want empty", got)
	}
	if got := StockIn.wire(); got != "in_stock" {
		t.Errorf("StockIn.wire() = %q", got)
	}
	if got := StockOut.wire(); got != "out_of_stock" {
		t.Errorf("StockOut.wire() = %q", got)
	}
}

func TestOrderStatusRoundTrip(t *testing.T) {
	for status, wire := range map[OrderStatus]string{
		OrderStatusPending:   "pending",
		OrderStatusConfirmed: "confirmed",
		OrderStatusShipped:   "shipped",
		OrderStatusDelivered: "delivered",
		OrderStatusCancelled: "cancelled",
	} {
		if got := status.String(); got != wire {
			t.Errorf("String(%d) = %q, want %q", status, got, wire)
		}
		if got := ParseOrderStatus(wire); got != status {
			t.Errorf("ParseOrderStatus(%q) = %d, want %d", wire, got, status)
		}
	}

	if got := ParseOrderStatus("refunded"); got != OrderStatusUnknown {
		t.Errorf("unrecognized status = %d, want OrderStatusUnknown", got)
	}
	if got := OrderStatusUnknown.String(); got != "unknown" {
		t.Errorf("OrderStatusUnknown.String() = %q", got)
	}
}
