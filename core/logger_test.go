package core

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewProductionLogger(&buf, "storefront-test", DebugLevel)

	logger.Info("request sent", map[string]interface{}{
		"operation": "cart.add",
		"status":    200,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request sent", entry["message"])
	assert.Equal(t, "storefront-test", entry["service"])
	assert.Equal(t, "cart.add", entry["operation"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestProductionLoggerLevelFiltering(t *testing.T) {
	t.Setenv("PAGE3_LOG_LEVEL", "")

	var buf bytes.Buffer
	logger := NewProductionLogger(&buf, "", WarnLevel)

	logger.Debug("too quiet", nil)
	logger.Info("still too quiet", nil)
	logger.Warn("this one", nil)
	logger.Error("and this one", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "this one")
	assert.Contains(t, lines[1], "and this one")
}

func TestProductionLoggerRedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewProductionLogger(&buf, "", DebugLevel)

	logger.Info("auth", map[string]interface{}{
		"authorization":   "Bearer abc123",
		"consumer_secret": "cs_supersecret",
		"token":           "tok_raw",
		"operation":       "products.list",
	})

	out := buf.String()
	assert.NotContains(t, out, "abc123")
	assert.NotContains(t, out, "cs_supersecret")
	assert.NotContains(t, out, "tok_raw")
	assert.Contains(t, out, "Bearer [REDACTED]")
	assert.Contains(t, out, "products.list")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, ErrorLevel, ParseLogLevel("Error"))
	assert.Equal(t, InfoLevel, ParseLogLevel(""))
	assert.Equal(t, InfoLevel, ParseLogLevel("garbage"))
}

func TestRedactSecret(t *testing.T) {
	assert.Equal(t, "", RedactSecret(""))
	assert.Equal(t, "Bearer [REDACTED]", RedactSecret("Bearer abc123"))
	assert.Equal(t, "Basic [REDACTED]", RedactSecret("Basic dXNlcjpwYXNz"))
	assert.Equal(t, "[REDACTED]", RedactSecret("raw-token"))
}

func TestRedactHeaders(t *testing.T) {
	in := map[string]string{
		"Authorization": "Bearer abc123",
		"Content-Type":  "application/json",
	}
	out := RedactHeaders(in)

	assert.Equal(t, "Bearer [REDACTED]", out["Authorization"])
	assert.Equal(t, "application/json", out["Content-Type"])
	// input must not be mutated
	assert.Equal(t, "Bearer abc123", in["Authorization"])

	assert.Nil(t, RedactHeaders(nil))
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "both credentials",
			in:   "https://x.com/wp-json/wc/v3/products?consumer_key=ck_abc&consumer_secret=cs_def&page=2",
			want: "https://x.com/wp-json/wc/v3/products?consumer_key=[REDACTED]&consumer_secret=[REDACTED]&page=2",
		},
		{
			name: "trailing secret",
			in:   "https://x.com/p?consumer_secret=cs_def",
			want: "https://x.com/p?consumer_secret=[REDACTED]",
		},
		{
			name: "no credentials",
			in:   "https://x.com/api/products?page=1",
			want: "https://x.com/api/products?page=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactURL(tt.in))
		})
	}
}
