// Package api contains the per-resource HTTP bindings for the NocoDB v2
// REST API. Functions are stateless: the caller supplies the http.Client
// (with auth and retry transports already installed) and the base URL.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nocoverse/nocodb-go/internal/apierr"
)

// newJSONRequest builds a request carrying an optional JSON payload.
// Using bytes.Reader keeps GetBody populated so the retry transport can
// replay the body on recoverable failures.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// checkStatus maps a non-expected status to a typed error. The error body
// is consumed by apierr so the connection can be reused.
func checkStatus(op string, resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	return apierr.FromResponse(op, resp)
}
