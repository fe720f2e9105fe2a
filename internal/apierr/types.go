// Package apierr provides the error taxonomy for the client SDK: typed HTTP
// errors carrying the server's status code and message, plus classification
// that drives the retry policy.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Category determines how errors should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, 429 Too Many Requests, timeouts.
	Recoverable Category = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Sentinel errors for the statuses callers most often branch on.
// Compare with errors.Is; the concrete *Error maps itself onto these.
var (
	ErrUnauthorized = errors.New("authentication failed")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("resource not found")
	ErrRateLimited  = errors.New("rate limit exceeded")
)

// Error is a non-2xx HTTP response surfaced to the caller.
type Error struct {
	Op         string        // logical operation, e.g. "list records"
	StatusCode int           // HTTP status code
	Message    string        // server-provided message, or the raw body
	RetryAfter time.Duration // populated for 429 when the server sent Retry-After
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// Is maps status codes onto the package sentinels so callers can use
// errors.Is without inspecting codes.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// Category classifies the error for retry purposes.
func (e *Error) Category() Category {
	return categoryForStatus(e.StatusCode)
}

// categoryForStatus maps HTTP status codes to retry categories.
// 4xx client errors are irrecoverable except 408 and 429; 5xx and anything
// unexpected are treated as recoverable.
func categoryForStatus(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// IsIrrecoverable reports whether err should not be retried. Non-HTTP
// errors (network failures) are considered recoverable.
func IsIrrecoverable(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Category() == Irrecoverable
	}
	return false
}
