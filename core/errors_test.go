package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Backend: "legacy", Op: "cart.add", StatusCode: 401, Body: `{"error":"no token"}`}
	assert.Equal(t, `legacy cart.add: status 401: {"error":"no token"}`, err.Error())

	empty := &APIError{Backend: "woocommerce", Op: "products.list", StatusCode: 503}
	assert.Equal(t, "woocommerce products.list: status 503", empty.Error())
}

func TestClientErrorWrapping(t *testing.T) {
	inner := fmt.Errorf("boom: %w", ErrConnectionFailed)
	err := NewClientError("products.list", "legacy", inner)

	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Contains(t, err.Error(), "products.list")
	assert.Contains(t, err.Error(), "legacy")

	var ce *ClientError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "products.list", ce.Op)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", fmt.Errorf("wrapped: %w", ErrTimeout), true},
		{"connection failed", ErrConnectionFailed, true},
		{"api 500", &APIError{StatusCode: 500}, true},
		{"api 503 wrapped", NewClientError("op", "legacy", &APIError{StatusCode: 503}), true},
		{"api 429", &APIError{StatusCode: 429}, true},
		{"api 404", &APIError{StatusCode: 404}, false},
		{"api 400", &APIError{StatusCode: 400}, false},
		{"decode failure", ErrDecodeFailed, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsStatusHelpers(t *testing.T) {
	notFound := NewClientError("products.get", "legacy", &APIError{StatusCode: 404})
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsStatus(notFound, 404))
	assert.False(t, IsStatus(notFound, 500))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, IsConfigurationError(fmt.Errorf("bad: %w", ErrInvalidConfiguration)))
	assert.True(t, IsConfigurationError(ErrMissingConfiguration))
	assert.False(t, IsConfigurationError(ErrTimeout))
}
