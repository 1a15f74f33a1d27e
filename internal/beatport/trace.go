package beatport

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
)

// redactedFields are request/response keys whose values never reach the
// trace log. Redaction is applied recursively through nested objects and
// arrays, so account payloads with embedded billing blocks come out clean.
var redactedFields = map[string]string{
	"username":      "***",
	"password":      "***",
	"email":         "***@***.***",
	"first_name":    "***",
	"last_name":     "***",
	"firstName":     "***",
	"lastName":      "***",
	"name":          "***",
	"phone_number":  "***",
	"phone_primary": "***",
	"address1":      "***",
	"address2":      "***",
	"city":          "***",
	"zip":           "***",
	"card_type":     "***",
	"last_four":     "***",
}

// bearerKeepLen is how much of an Authorization header survives tracing.
const bearerKeepLen = 50

// Trace writes sanitized request/response records to a plain-text sink.
//
// Trace exists for debugging sessions against the live API: with the debug
// setting enabled every request and response (status, headers, body) lands
// in the log file, with credential-like fields masked and bearer tokens
// truncated. It is safe to share the resulting file.
type Trace struct {
	mu     sync.Mutex
	logger *log.Logger
}

// NewTrace creates a Trace writing to w.
func NewTrace(w io.Writer) *Trace {
	return &Trace{logger: log.New(w, "", log.LstdFlags)}
}

// Request logs an outgoing request. body may be nil for GETs.
func (t *Trace) Request(req *http.Request, body []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logger.Printf("REQUEST: %s %s", req.Method, req.URL.String())
	t.logHeader(req.Header)
	if len(body) > 0 {
		t.logger.Printf("BODY: %s", SanitizeBody(body))
	}
}

// Response logs a received response with its full (sanitized) body.
func (t *Trace) Response(resp *http.Response, body []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logger.Printf("RESPONSE: %d %s %s", resp.StatusCode, resp.Request.Method, resp.Request.URL.String())
	t.logHeader(resp.Header)
	if len(body) > 0 {
		t.logger.Printf("BODY: %s", SanitizeBody(body))
	}
}

func (t *Trace) logHeader(header http.Header) {
	for key, values := range header {
		for _, value := range values {
			if key == "Authorization" && len(value) > bearerKeepLen {
				value = value[:bearerKeepLen] + "..."
			}
			t.logger.Printf("  %s: %s", key, value)
		}
	}
}

// SanitizeBody masks credential-like fields in a JSON payload. Payloads
// that are not JSON objects or arrays pass through unchanged.
func SanitizeBody(body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}

	sanitized, err := json.Marshal(sanitizeValue(data))
	if err != nil {
		return string(body)
	}
	return string(sanitized)
}

// sanitizeValue walks a decoded JSON value, masking sensitive keys at every
// nesting level.
func sanitizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		clean := make(map[string]any, len(val))
		for key, inner := range val {
			if mask, ok := redactedFields[key]; ok {
				clean[key] = mask
				continue
			}
			clean[key] = sanitizeValue(inner)
		}
		return clean
	case []any:
		clean := make([]any, len(val))
		for i, inner := range val {
			clean[i] = sanitizeValue(inner)
		}
		return clean
	default:
		return v
	}
}
