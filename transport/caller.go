package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/page3life/storefront-go/core"
)

// Caller is the instrumented call wrapper shared by both backend
// clients. It logs a structured block before and after every outbound
// call, decodes the response into the expected type, and annotates
// failures without ever swallowing them.
type Caller struct {
	transport *Transport
	logger    core.Logger
	telemetry core.Telemetry
	backend   string
}

// NewCaller creates a caller for one backend ("legacy" or
// "woocommerce"). A nil logger or telemetry falls back to no-ops.
func NewCaller(t *Transport, backend string, logger core.Logger, telemetry core.Telemetry) *Caller {
	if logger == nil {
		logger = &core.NoOpLogger{}
	}
	if telemetry == nil {
		telemetry = &core.NoOpTelemetry{}
	}
	return &Caller{
		transport: t,
		logger:    logger,
		telemetry: telemetry,
		backend:   backend,
	}
}

// Request describes one outbound call.
type Request struct {
	Op      string // logical operation name, e.g. "cart.add"
	Method  string
	URL     string
	Headers map[string]string
	Body    interface{} // optional; JSON-encoded when non-nil
}

// Call executes the request and decodes the response body into T.
// Non-2xx statuses return *core.APIError carrying the raw body; the
// body is never decoded into T on error, so a backend error page can
// not surface as a confusing decode failure.
func Call[T any](ctx context.Context, c *Caller, req Request) (T, error) {
	var zero T
	body, err := c.execute(ctx, req)
	if err != nil {
		return zero, err
	}

	var result T
	if len(body) == 0 {
		return result, nil
	}
	if err := DecodeLenient(body, &result); err != nil {
		decodeErr := fmt.Errorf("%w: %v", core.ErrDecodeFailed, err)
		c.logFailure(ctx, req, decodeErr)
		return zero, core.NewClientError(req.Op, c.backend, decodeErr)
	}
	return result, nil
}

// CallUnit executes a request whose success is defined purely by
// status code, with no body to decode (e.g. delete operations).
func CallUnit(ctx context.Context, c *Caller, req Request) error {
	_, err := c.execute(ctx, req)
	return err
}

func (c *Caller) execute(ctx context.Context, req Request) ([]byte, error) {
	requestID := uuid.NewString()

	ctx, span := c.telemetry.StartSpan(ctx, "http."+req.Op)
	defer span.End()
	span.SetAttribute("http.method", req.Method)
	span.SetAttribute("http.url", core.RedactURL(req.URL))
	span.SetAttribute("backend", c.backend)
	span.SetAttribute("request_id", requestID)

	var bodyReader io.Reader
	var bodyJSON []byte
	if req.Body != nil {
		var err error
		bodyJSON, err = json.Marshal(req.Body)
		if err != nil {
			wrapped := fmt.Errorf("marshal request body: %w", err)
			span.RecordError(wrapped)
			c.logFailure(ctx, req, wrapped)
			return nil, core.NewClientError(req.Op, c.backend, wrapped)
		}
		bodyReader = bytes.NewReader(bodyJSON)
	}

	c.logRequest(req, requestID, bodyJSON)
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		wrapped := fmt.Errorf("create request: %w", err)
		span.RecordError(wrapped)
		c.logFailure(ctx, req, wrapped)
		return nil, core.NewClientError(req.Op, c.backend, wrapped)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.transport.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		c.logFailure(ctx, req, err)
		return nil, core.NewClientError(req.Op, c.backend, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		wrapped := fmt.Errorf("read response: %w", err)
		span.RecordError(wrapped)
		c.logFailure(ctx, req, wrapped)
		return nil, core.NewClientError(req.Op, c.backend, wrapped)
	}

	elapsed := time.Since(start)
	c.logResponse(req, requestID, resp, respBody, elapsed)
	span.SetAttribute("http.status_code", resp.StatusCode)
	c.telemetry.RecordMetric("http_request_duration_ms", float64(elapsed.Milliseconds()), map[string]string{
		"backend":   c.backend,
		"operation": req.Op,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &core.APIError{
			Backend:    c.backend,
			Op:         req.Op,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
		span.RecordError(apiErr)
		c.logFailure(ctx, req, apiErr)
		return nil, apiErr
	}

	return respBody, nil
}

func (c *Caller) logRequest(req Request, requestID string, body []byte) {
	fields := map[string]interface{}{
		"operation":  req.Op,
		"backend":    c.backend,
		"request_id": requestID,
		"method":     req.Method,
		"url":        core.RedactURL(req.URL),
		"headers":    core.RedactHeaders(req.Headers),
	}
	if body != nil {
		fields["body"] = string(body)
	}
	c.logger.Info("HTTP request", fields)
}

func (c *Caller) logResponse(req Request, requestID string, resp *http.Response, body []byte, elapsed time.Duration) {
	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}
	c.logger.Info("HTTP response", map[string]interface{}{
		"operation":      req.Op,
		"backend":        c.backend,
		"request_id":     requestID,
		"method":         req.Method,
		"url":            core.RedactURL(req.URL),
		"status":         resp.StatusCode,
		"status_text":    http.StatusText(resp.StatusCode),
		"content_length": len(body),
		"content_type":   resp.Header.Get("Content-Type"),
		"headers":        headers,
		"body":           prettyBody(body),
		"duration_ms":    elapsed.Milliseconds(),
	})
}

func (c *Caller) logFailure(ctx context.Context, req Request, err error) {
	c.logger.Error("HTTP call failed", map[string]interface{}{
		"operation":  req.Op,
		"backend":    c.backend,
		"method":     req.Method,
		"url":        core.RedactURL(req.URL),
		"error":      err.Error(),
		"error_type": fmt.Sprintf("%T", err),
		"stack":      string(debug.Stack()),
	})
}

// prettyBody renders a response body for logging: indented when it
// parses as JSON, raw text otherwise.
func prettyBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
