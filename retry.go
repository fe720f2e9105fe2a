package nocodb

import (
	"io"
	"net/http"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/nocoverse/nocodb-go/internal/apierr"
)

// RetryPolicy bounds the transport-level retries applied to recoverable
// failures: network errors, 408, 429 and 5xx responses. Irrecoverable 4xx
// responses are never retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// InitialInterval seeds the exponential backoff between attempts.
	InitialInterval time.Duration
	// MaxInterval caps the wait between attempts, including waits derived
	// from a Retry-After header.
	MaxInterval time.Duration
}

// DefaultRetryPolicy mirrors the retry posture of the stock NocoDB clients:
// a few attempts with short exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     10 * time.Second,
	}
}

// NoRetry disables transport retries; every request gets exactly one try.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

// retryTransport retries recoverable failures with exponential backoff and
// jitter. A 429 response waits for the server's Retry-After when present.
// Requests whose body cannot be replayed (GetBody unset) are never retried
// after the body has been consumed.
type retryTransport struct {
	base   http.RoundTripper
	policy RetryPolicy
}

func (rt *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	exp := backoff.NewExponentialBackOff()
	if rt.policy.InitialInterval > 0 {
		exp.InitialInterval = rt.policy.InitialInterval
	}
	if rt.policy.MaxInterval > 0 {
		exp.MaxInterval = rt.policy.MaxInterval
	}
	exp.MaxElapsedTime = 0 // attempts, not elapsed time, bound the loop
	exp.Reset()

	var resp *http.Response
	var err error
	for attempt := 1; ; attempt++ {
		if attempt > 1 && req.GetBody != nil {
			body, berr := req.GetBody()
			if berr != nil {
				return resp, err
			}
			req.Body = body
		}

		start := time.Now()
		resp, err = rt.base.RoundTrip(req)
		requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(req.Method, outcomeLabel(resp, err)).Inc()

		if err == nil && !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= rt.policy.MaxAttempts {
			return resp, err
		}
		// A consumed, non-replayable body cannot be sent again.
		if req.Body != nil && req.GetBody == nil {
			return resp, err
		}

		wait := exp.NextBackOff()
		if err == nil {
			if resp.StatusCode == http.StatusTooManyRequests {
				wait = apierr.ParseRetryAfter(resp.Header.Get("Retry-After"), wait)
				if rt.policy.MaxInterval > 0 && wait > rt.policy.MaxInterval {
					wait = rt.policy.MaxInterval
				}
			}
			// Drain so the connection can be reused across attempts.
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
			_ = resp.Body.Close()
		}

		retriesTotal.WithLabelValues(req.Method).Inc()
		select {
		case <-time.After(wait):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}

// retryableStatus reports whether a status code is worth another attempt:
// 408, 429 and the 5xx range.
func retryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return statusCode >= 500 && statusCode < 600
}

func outcomeLabel(resp *http.Response, err error) string {
	if err != nil {
		return "error"
	}
	return strconv.Itoa(resp.StatusCode)
}
