package nocodb

import (
	"errors"

	"github.com/nocoverse/nocodb-go/internal/apierr"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrUnauthorized matches 401 responses (bad or missing token).
	ErrUnauthorized = apierr.ErrUnauthorized
	// ErrForbidden matches 403 responses.
	ErrForbidden = apierr.ErrForbidden
	// ErrNotFound matches 404 responses.
	ErrNotFound = apierr.ErrNotFound
	// ErrRateLimited matches 429 responses that survived the retry budget.
	ErrRateLimited = apierr.ErrRateLimited
)

// APIError is the concrete error type carrying the HTTP status code and the
// server-provided message for any non-2xx response.
type APIError = apierr.Error

// StatusCode extracts the HTTP status code from an error returned by the
// SDK, or 0 when err does not wrap an API error.
func StatusCode(err error) int {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// IsRateLimited reports whether err is a rate-limit rejection.
func IsRateLimited(err error) bool { return errors.Is(err, ErrRateLimited) }
