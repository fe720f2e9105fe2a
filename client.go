// Package nocodb is a client SDK for the NocoDB v2 REST API.
//
// A Client is configured with a base URL and an API token (NocoDB's
// xc-token) and exposes synchronous methods over bases, tables, columns,
// records, views, links and file storage. Each call is a single
// request/response exchange; recoverable failures are retried by the
// transport according to the configured RetryPolicy.
package nocodb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nocoverse/nocodb-go/internal/api"
)

// Client core

type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string // xc-token credential, injected by the transport wrapper
	retry   RetryPolicy

	resolver *resolver
}

// New constructs a Client for the NocoDB instance at baseURL, authenticating
// with apiKey. Additional options can be provided via functional arguments.
// A trailing slash on baseURL is tolerated.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("nocodb: base URL cannot be empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("nocodb: API key cannot be empty")
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		resolver: newResolver(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	c.retry = DefaultRetryPolicy()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Transport stack, outermost first: token injection, then retries, then
	// whatever the options installed (debug logging, custom transport).
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &tokenTransport{
		base:   &retryTransport{base: base, policy: c.retry},
		apiKey: c.apiKey,
	}

	return c, nil
}

// NewFromEnv constructs a Client from NOCODB_* environment variables.
// It fails before any network call when the base URL or API key is missing.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithHTTPTimeout(cfg.HTTPTimeout)}, opts...)
	return New(cfg.BaseURL, cfg.APIKey, opts...)
}

// tokenTransport wraps an http.RoundTripper to add the xc-token header to
// every request.
type tokenTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("xc-token", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// BaseURL returns the configured root address of the NocoDB instance.
func (c *Client) BaseURL() string { return c.baseURL }

// Ping verifies reachability and authentication by listing bases.
func (c *Client) Ping(ctx context.Context) error {
	_, err := api.ListBases(ctx, c.http, c.baseURL)
	return err
}

// --------------------------------------------------------------------
// Base operations - delegated to internal/api
// --------------------------------------------------------------------

// ListBases returns every base visible to the configured token.
func (c *Client) ListBases(ctx context.Context) ([]Base, error) {
	return api.ListBases(ctx, c.http, c.baseURL)
}

// GetBase retrieves a base by ID.
func (c *Client) GetBase(ctx context.Context, baseID string) (*Base, error) {
	return api.GetBase(ctx, c.http, c.baseURL, baseID)
}

// CreateBase creates a new base.
func (c *Client) CreateBase(ctx context.Context, req CreateBaseRequest) (*Base, error) {
	b, err := api.CreateBase(ctx, c.http, c.baseURL, req)
	if err == nil {
		c.resolver.invalidateBases()
	}
	return b, err
}

// DeleteBase deletes a base and everything in it.
func (c *Client) DeleteBase(ctx context.Context, baseID string) error {
	err := api.DeleteBase(ctx, c.http, c.baseURL, baseID)
	if err == nil {
		c.resolver.invalidateBases()
	}
	return err
}

// --------------------------------------------------------------------
// Table operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTables returns table metadata for every table in the base.
func (c *Client) ListTables(ctx context.Context, baseID string) ([]Table, error) {
	return api.ListTables(ctx, c.http, c.baseURL, baseID)
}

// GetTable retrieves the full table meta, including its columns.
func (c *Client) GetTable(ctx context.Context, tableID string) (*Table, error) {
	return api.GetTable(ctx, c.http, c.baseURL, tableID)
}

// CreateTable creates a table in the base. When a table with the same title
// already exists it is returned unchanged instead of creating a duplicate.
func (c *Client) CreateTable(ctx context.Context, baseID string, req CreateTableRequest) (*Table, error) {
	existing, err := api.ListTables(ctx, c.http, c.baseURL, baseID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Title == req.Title {
			return &existing[i], nil
		}
	}
	t, err := api.CreateTable(ctx, c.http, c.baseURL, baseID, req)
	if err == nil {
		c.resolver.invalidateTables(baseID)
	}
	return t, err
}

// UpdateTable patches mutable table attributes.
func (c *Client) UpdateTable(ctx context.Context, tableID string, req UpdateTableRequest) error {
	return api.UpdateTable(ctx, c.http, c.baseURL, tableID, req)
}

// DeleteTable removes a table and its records.
func (c *Client) DeleteTable(ctx context.Context, tableID string) error {
	err := api.DeleteTable(ctx, c.http, c.baseURL, tableID)
	if err == nil {
		c.resolver.invalidateAll()
	}
	return err
}

// --------------------------------------------------------------------
// Column operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateColumn adds a column to a table. When a column with the same title
// already exists it is returned unchanged instead of creating a duplicate.
func (c *Client) CreateColumn(ctx context.Context, tableID string, col Column) (*Column, error) {
	table, err := api.GetTable(ctx, c.http, c.baseURL, tableID)
	if err != nil {
		return nil, err
	}
	for i := range table.Columns {
		if table.Columns[i].Title == col.Title {
			return &table.Columns[i], nil
		}
	}
	created, err := api.CreateColumn(ctx, c.http, c.baseURL, tableID, col)
	if err == nil {
		c.resolver.invalidateColumns(tableID)
	}
	return created, err
}

// GetColumn retrieves column metadata by ID.
func (c *Client) GetColumn(ctx context.Context, columnID string) (*Column, error) {
	return api.GetColumn(ctx, c.http, c.baseURL, columnID)
}

// UpdateColumn patches an existing column definition.
func (c *Client) UpdateColumn(ctx context.Context, columnID string, col Column) (*Column, error) {
	return api.UpdateColumn(ctx, c.http, c.baseURL, columnID, col)
}

// DeleteColumn removes a column from its table.
func (c *Client) DeleteColumn(ctx context.Context, columnID string) error {
	err := api.DeleteColumn(ctx, c.http, c.baseURL, columnID)
	if err == nil {
		c.resolver.invalidateAll()
	}
	return err
}

// --------------------------------------------------------------------
// Record operations - delegated to internal/api
// --------------------------------------------------------------------

// ListRecords lists rows from a table with optional filtering, sorting and
// pagination.
func (c *Client) ListRecords(ctx context.Context, tableID string, opts ListRecordsOptions) (*RecordList, error) {
	return api.ListRecords(ctx, c.http, c.baseURL, tableID, opts)
}

// GetRecord retrieves a single row by its primary key. fields optionally
// narrows the returned columns.
func (c *Client) GetRecord(ctx context.Context, tableID, recordID, fields string) (Record, error) {
	return api.GetRecord(ctx, c.http, c.baseURL, tableID, recordID, fields)
}

// CreateRecords inserts one or more rows and returns their primary keys.
func (c *Client) CreateRecords(ctx context.Context, tableID string, records []Record) ([]Record, error) {
	return api.CreateRecords(ctx, c.http, c.baseURL, tableID, records)
}

// UpdateRecords patches one or more rows; each record must carry its "Id".
func (c *Client) UpdateRecords(ctx context.Context, tableID string, records []Record) ([]Record, error) {
	return api.UpdateRecords(ctx, c.http, c.baseURL, tableID, records)
}

// DeleteRecords removes rows by primary key.
func (c *Client) DeleteRecords(ctx context.Context, tableID string, ids ...any) ([]Record, error) {
	refs := make([]LinkRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, LinkRef{ID: id})
	}
	return api.DeleteRecords(ctx, c.http, c.baseURL, tableID, refs)
}

// CountRecords returns the number of rows in the table; viewID optionally
// scopes the count to a view.
func (c *Client) CountRecords(ctx context.Context, tableID, viewID string) (int, error) {
	return api.CountRecords(ctx, c.http, c.baseURL, tableID, viewID)
}

// --------------------------------------------------------------------
// Link operations - delegated to internal/api
// --------------------------------------------------------------------

// ListLinks returns the rows linked to recordID through the link field.
func (c *Client) ListLinks(ctx context.Context, tableID, linkFieldID, recordID string, opts ListRecordsOptions) (*RecordList, error) {
	return api.ListLinks(ctx, c.http, c.baseURL, tableID, linkFieldID, recordID, opts)
}

// LinkRecords links the rows identified by ids to recordID.
func (c *Client) LinkRecords(ctx context.Context, tableID, linkFieldID, recordID string, ids ...any) error {
	return api.LinkRecords(ctx, c.http, c.baseURL, tableID, linkFieldID, recordID, linkRefs(ids))
}

// UnlinkRecords detaches the rows identified by ids from recordID.
func (c *Client) UnlinkRecords(ctx context.Context, tableID, linkFieldID, recordID string, ids ...any) error {
	return api.UnlinkRecords(ctx, c.http, c.baseURL, tableID, linkFieldID, recordID, linkRefs(ids))
}

func linkRefs(ids []any) []LinkRef {
	refs := make([]LinkRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, LinkRef{ID: id})
	}
	return refs
}

// --------------------------------------------------------------------
// View and storage operations - delegated to internal/api
// --------------------------------------------------------------------

// ListViews returns the views defined on a table.
func (c *Client) ListViews(ctx context.Context, tableID string) ([]View, error) {
	return api.ListViews(ctx, c.http, c.baseURL, tableID)
}

// UploadFile uploads a local file through the storage API. When mimeType is
// empty it is guessed from the file extension.
func (c *Client) UploadFile(ctx context.Context, filePath, title, mimeType string) ([]Attachment, error) {
	return api.UploadFile(ctx, c.http, c.baseURL, filePath, title, mimeType)
}
