package nocodb

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c := &Client{http: &http.Client{}}
	if err := WithHTTPClient(hc)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http != hc {
		t.Fatal("http client not replaced")
	}
	if err := WithHTTPClient(nil)(c); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestWithRetryPolicy(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithRetryPolicy(NoRetry())(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.retry.MaxAttempts != 1 {
		t.Fatalf("retry policy not applied: %+v", c.retry)
	}
	if err := WithRetryPolicy(RetryPolicy{})(c); err == nil {
		t.Fatal("expected error for zero max attempts")
	}
}

func TestWithDebugLoggingWrapsTransport(t *testing.T) {
	t.Setenv("NOCODB_DEBUG", "true")

	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	hc := &http.Client{Transport: rt}
	c, err := New("http://example.com", "test-api-key", WithHTTPClient(hc), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}
