package apierr

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxErrorBody bounds how much of an error response body is read for the
// message; NocoDB error payloads are small, this guards against HTML error
// pages from proxies.
const maxErrorBody = 8 << 10

// FromResponse builds an *Error from a non-2xx response. The body is
// consumed (up to maxErrorBody) so the connection can be reused.
func FromResponse(op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	e := &Error{
		Op:         op,
		StatusCode: resp.StatusCode,
		Message:    extractMessage(body),
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		e.RetryAfter = ParseRetryAfter(resp.Header.Get("Retry-After"), 60*time.Second)
	}
	return e
}

// extractMessage pulls the human-readable message out of NocoDB's error
// JSON ({"msg": ...} or {"message": ...}); falls back to the raw body.
func extractMessage(body []byte) string {
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Msg != "" {
			return payload.Msg
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}

// ParseRetryAfter parses a Retry-After header value, supporting both
// delta-seconds and HTTP-date forms per RFC 7231. Returns def when the
// header is absent or unparseable.
func ParseRetryAfter(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return def
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(raw); err == nil {
		d := time.Until(t)
		if d < 0 {
			return 0
		}
		return d
	}
	return def
}
