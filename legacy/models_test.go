package legacy

import (
	"encoding/json"
	"testing"
)

func TestCartItemQuantityDefaultsToOne(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{"quantity absent", `{"product":{"_id":"p1"},"size":"M","price":100}`, 1},
		{"quantity present", `{"product":{"_id":"p1"},"quantity":3}`, 3},
		{"quantity explicit zero", `{"product":{"_id":"p1"},"quantity":0}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item CartItem
			if err := json.Unmarshal([]byte(tt.json), &item); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if item.Quantity != tt.want {
				t.Errorf("Quantity = %d, want %d", item.Quantity, tt.want)
			}
		})
	}
}

func TestOrderItemQuantityDefaultsToOne(t *testing.T) {
	var item OrderItem
	if err := json.Unmarshal([]byte(`{"product":{"_id":"p1"},"price":50}`), &item); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", item.Quantity)
	}
}

func TestCartItemWithAttributesQuantityDefault(t *testing.T) {
	var item CartItemWithAttributes
	if err := json.Unmarshal([]byte(`{"productId":7,"attributes":{"size":"L","color":"red"}}`), &item); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", item.Quantity)
	}
	if item.Attributes["size"] != "L" {
		t.Errorf("Attributes = %v", item.Attributes)
	}
}

func TestCreateOrderRequestRoundTrip(t *testing.T) {
	orig := CreateOrderRequest{AddressID: "addr-9", PaymentMethod: "COD"}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// wire names are fixed by the backend contract
	var wire map[string]string
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if wire["addressId"] != "addr-9" || wire["paymentMethod"] != "COD" {
		t.Errorf("wire form = %v", wire)
	}

	var back CreateOrderRequest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}

func TestCartDecodesNullAndMissingFields(t *testing.T) {
	body := `{
		"_id": "c1",
		"user": "u1",
		"cartItems": [{"product":{"_id":"p1","sizes":null},"size":"M"}],
		"totalPrice": 100
	}`

	var cart Cart
	if err := json.Unmarshal([]byte(body), &cart); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cart.ID != "c1" || len(cart.Items) != 1 {
		t.Fatalf("cart = %+v", cart)
	}
	if cart.Items[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want default 1", cart.Items[0].Quantity)
	}
	if cart.Items[0].Product.Sizes != nil {
		t.Errorf("Sizes = %v, want nil for null", cart.Items[0].Product.Sizes)
	}
}
