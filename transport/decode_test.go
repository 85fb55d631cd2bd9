package transport

import (
	"testing"
)

func TestDecodeLenientIgnoresUnknownKeys(t *testing.T) {
	var got widget
	body := []byte(`{"id":"w1","name":"widget","brand_new_field":{"nested":true}}`)

	if err := DecodeLenient(body, &got); err != nil {
		t.Fatalf("DecodeLenient() error = %v", err)
	}
	if got.ID != "w1" || got.Name != "widget" {
		t.Errorf("got %+v, want id w1, name widget", got)
	}
}

func TestDecodeLenientZeroesMismatchedTypes(t *testing.T) {
	type product struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
		Name  string  `json:"name"`
	}

	var got product
	// price arrives as a string; the field is left at its zero value
	// while the rest of the document still decodes.
	body := []byte(`{"id":"p1","price":"not-a-number","name":"shirt"}`)

	if err := DecodeLenient(body, &got); err != nil {
		t.Fatalf("DecodeLenient() error = %v", err)
	}
	if got.ID != "p1" || got.Name != "shirt" {
		t.Errorf("got %+v, the well-typed fields must still decode", got)
	}
	if got.Price != 0 {
		t.Errorf("price = %v, want zero value for mismatched type", got.Price)
	}
}

func TestDecodeLenientRejectsMalformedJSON(t *testing.T) {
	var got widget
	if err := DecodeLenient([]byte(`{"id":`), &got); err == nil {
		t.Error("DecodeLenient() expected error for truncated JSON")
	}
}

func TestDecodeLenientNullFields(t *testing.T) {
	type product struct {
		ID   string   `json:"id"`
		Tags []string `json:"tags"`
	}

	var got product
	if err := DecodeLenient([]byte(`{"id":"p1","tags":null}`), &got); err != nil {
		t.Fatalf("DecodeLenient() error = %v", err)
	}
	if got.ID != "p1" {
		t.Errorf("id = %q, want p1", got.ID)
	}
	if got.Tags != nil {
		t.Errorf("tags = %v, want nil", got.Tags)
	}
}
