package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel controls which messages a ProductionLogger emits.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLogLevel converts a level name to a LogLevel, defaulting to INFO.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// ProductionLogger is a leveled structured logger that writes one JSON
// object per line. Secret-bearing fields are redacted before
// serialization so bearer tokens and API credentials never reach the
// sink in cleartext.
type ProductionLogger struct {
	mu      sync.Mutex
	out     io.Writer
	level   LogLevel
	service string
}

// NewProductionLogger creates a logger writing to out. A nil out
// defaults to stdout. Level can be overridden via PAGE3_LOG_LEVEL.
func NewProductionLogger(out io.Writer, service string, level LogLevel) *ProductionLogger {
	if out == nil {
		out = os.Stdout
	}
	if env := os.Getenv("PAGE3_LOG_LEVEL"); env != "" {
		level = ParseLogLevel(env)
	}
	return &ProductionLogger{
		out:     out,
		level:   level,
		service: service,
	}
}

func (l *ProductionLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(DebugLevel, "DEBUG", msg, fields)
}

func (l *ProductionLogger) Info(msg string, fields map[string]interface{}) {
	l.log(InfoLevel, "INFO", msg, fields)
}

func (l *ProductionLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(WarnLevel, "WARN", msg, fields)
}

func (l *ProductionLogger) Error(msg string, fields map[string]interface{}) {
	l.log(ErrorLevel, "ERROR", msg, fields)
}

func (l *ProductionLogger) log(level LogLevel, name, msg string, fields map[string]interface{}) {
	if level < l.level {
		return
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     name,
		"message":   msg,
	}
	if l.service != "" {
		entry["service"] = l.service
	}
	for k, v := range fields {
		entry[k] = redactValue(k, v)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":%q,"message":%q,"marshal_error":%q}`, name, msg, err.Error()))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(append(data, '\n'))
}

// sensitiveKeys are field names whose values must never be logged raw.
var sensitiveKeys = map[string]bool{
	"authorization":   true,
	"token":           true,
	"bearer_token":    true,
	"consumer_secret": true,
	"api_key":         true,
	"password":        true,
}

func redactValue(key string, v interface{}) interface{} {
	if !sensitiveKeys[strings.ToLower(key)] {
		return v
	}
	s, ok := v.(string)
	if !ok {
		return "[REDACTED]"
	}
	return RedactSecret(s)
}

// RedactSecret masks a credential value, preserving only the auth
// scheme prefix when present.
func RedactSecret(s string) string {
	if s == "" {
		return ""
	}
	for _, scheme := range []string{"Bearer ", "Basic "} {
		if strings.HasPrefix(s, scheme) {
			return scheme + "[REDACTED]"
		}
	}
	return "[REDACTED]"
}

// RedactHeaders returns a copy of headers with secret-bearing values
// masked. The original map is never modified.
func RedactHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			out[k] = RedactSecret(v)
		} else {
			out[k] = v
		}
	}
	return out
}

// RedactURL masks credential query parameters (consumer_key,
// consumer_secret) in a URL string for logging.
func RedactURL(raw string) string {
	for _, param := range []string{"consumer_secret", "consumer_key"} {
		raw = redactQueryParam(raw, param)
	}
	return raw
}

func redactQueryParam(raw, param string) string {
	idx := strings.Index(raw, param+"=")
	for idx != -1 {
		start := idx + len(param) + 1
		end := start
		for end < len(raw) && raw[end] != '&' && raw[end] != '#' {
			end++
		}
		raw = raw[:start] + "[REDACTED]" + raw[end:]
		next := strings.Index(raw[start:], param+"=")
		if next == -1 {
			break
		}
		idx = start + next
	}
	return raw
}
