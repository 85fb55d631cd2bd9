package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/page3life/storefront-go/core"
	"github.com/page3life/storefront-go/transport"
)

// mockLogger implements core.Logger for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.logs = append(m.logs, msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.logs = append(m.logs, msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.logs = append(m.logs, msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.logs = append(m.logs, msg) }

// newTestClient wires a client against an httptest server with caching
// disabled and fast retries.
func newTestClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	cfg, err := core.NewConfig(
		core.WithLegacyBaseURL(serverURL),
		core.WithCacheDisabled(),
		core.WithRetry(core.RetryConfig{
			MaxRetries:    2,
			InitialDelay:  time.Millisecond,
			MaxDelay:      5 * time.Millisecond,
			BackoffFactor: 2.0,
		}),
	)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	logger := &mockLogger{}
	tr := transport.New(cfg, logger, nil)

	var tokens core.TokenProvider
	if token != "" {
		tokens = core.StaticToken(token)
	}
	return NewClient(cfg, tr, logger, nil, tokens)
}

func TestAddToCartRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/cart/add" {
			t.Errorf("path = %s, want /cart/add", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want 'Bearer tok-1'", got)
		}

		body, _ := io.ReadAll(r.Body)
		var req AddToCartRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("body decode: %v", err)
		}
		if req.ProductID != "p1" || req.Size == "" || req.Quantity != 2 {
			t.Errorf("body = %+v, want productId p1, a size, quantity 2", req)
		}

		json.NewEncoder(w).Encode(AddToCartResponse{Message: "added", Status: true})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "tok-1")

	resp, err := c.AddToCart(context.Background(), AddToCartRequest{ProductID: "p1", Size: "M", Quantity: 2})
	if err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if !resp.Status || resp.Message != "added" {
		t.Errorf("AddToCart() = %+v", resp)
	}
}

func TestAuthenticatedCallsRequireToken(t *testing.T) {
	c := newTestClient(t, "http://unused.invalid", "")

	_, err := c.GetCart(context.Background())
	if !errors.Is(err, core.ErrMissingToken) {
		t.Errorf("GetCart() error = %v, want ErrMissingToken", err)
	}

	_, err = c.AddToCart(context.Background(), AddToCartRequest{ProductID: "p1"})
	if !errors.Is(err, core.ErrMissingToken) {
		t.Errorf("AddToCart() error = %v, want ErrMissingToken", err)
	}
}

func TestListProductsQueryConstruction(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")

	_, err := c.ListProducts(context.Background(), ProductQuery{
		Category: "shirts",
		MinPrice: 99.5,
		Stock:    StockIn,
		Sort:     SortPriceLowToHigh,
		Page:     3,
	})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}

	want := map[string]string{
		"category": "shirts",
		"minPrice": "99.5",
		"stock":    "in_stock",
		"sort":     "price_low",
		"page":     "3",
	}
	for k, v := range want {
		if got := firstValue(gotQuery, k); got != v {
			t.Errorf("query %s = %q, want %q", k, got, v)
		}
	}
	// zero-valued filters must be absent, not sent empty
	for _, absent := range []string{"subCategory", "brand", "color", "maxPrice", "search", "limit"} {
		if _, ok := gotQuery[absent]; ok {
			t.Errorf("query must not contain %s", absent)
		}
	}
}

func TestListProductsUnknownFieldsTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"p1","name":"shirt","price":100,"surprise_field":[1,2,3]}]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")

	products, err := c.ListProducts(context.Background(), ProductQuery{})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" || products[0].Price != 100 {
		t.Errorf("products = %+v", products)
	}
}

func TestGetProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"product not found"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")

	_, err := c.GetProduct(context.Background(), "missing")
	if !core.IsNotFound(err) {
		t.Errorf("GetProduct() error = %v, want a 404 APIError", err)
	}
}

func TestCancelOrderUsesPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/orders/o1/cancel" {
			t.Errorf("path = %s, want /orders/o1/cancel", r.URL.Path)
		}
		json.NewEncoder(w).Encode(StatusResponse{Message: "cancelled", Status: true})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "tok-1")

	resp, err := c.CancelOrder(context.Background(), "o1")
	if err != nil {
		t.Fatalf("CancelOrder() error = %v", err)
	}
	if !resp.Status {
		t.Errorf("CancelOrder() = %+v", resp)
	}
}

func TestClearCartTreatsStatusAsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "tok-1")

	if err := c.ClearCart(context.Background()); err != nil {
		t.Fatalf("ClearCart() error = %v", err)
	}
}

func firstValue(q map[string][]string, key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
