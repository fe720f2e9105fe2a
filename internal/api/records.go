package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nocoverse/nocodb-go/internal/types"
)

// ListRecords lists rows from a table with optional filtering, sorting and
// pagination. The returned PageInfo reports the server-side total.
func ListRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID string, opts types.ListRecordsOptions) (*types.RecordList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/v2/tables/%s/records", baseURL, tableID)
	if q := opts.Values().Encode(); q != "" {
		u += "?" + q
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("list records", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var rl types.RecordList
	if err := json.NewDecoder(resp.Body).Decode(&rl); err != nil {
		return nil, err
	}
	return &rl, nil
}

// GetRecord retrieves a single row by its ID. fields optionally narrows the
// returned columns (comma-separated field titles).
func GetRecord(ctx context.Context, httpClient *http.Client, baseURL, tableID, recordID, fields string) (types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(recordID, "recordId"); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/v2/tables/%s/records/%s", baseURL, tableID, recordID)
	if fields != "" {
		u += "?fields=" + url.QueryEscape(fields)
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get record", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var rec types.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateRecords inserts one or more rows. The server responds with the
// primary keys of the created rows.
func CreateRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID string, records []types.Record) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("records cannot be empty")
	}
	url := fmt.Sprintf("%s/api/v2/tables/%s/records", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, records)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("create records", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var created []types.Record
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRecords patches one or more rows. Each record must carry its "Id"
// field; all other fields are applied as updates.
func UpdateRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID string, records []types.Record) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("records cannot be empty")
	}
	url := fmt.Sprintf("%s/api/v2/tables/%s/records", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodPatch, url, records)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("update records", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var updated []types.Record
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRecords removes rows by primary key.
func DeleteRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID string, refs []types.LinkRef) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("record ids cannot be empty")
	}
	url := fmt.Sprintf("%s/api/v2/tables/%s/records", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, url, refs)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("delete records", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var deleted []types.Record
	if err := json.NewDecoder(resp.Body).Decode(&deleted); err != nil {
		return nil, err
	}
	return deleted, nil
}

// CountRecords returns the number of rows in the table, optionally scoped
// to a view.
func CountRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID, viewID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return 0, err
	}
	u := fmt.Sprintf("%s/api/v2/tables/%s/records/count", baseURL, tableID)
	if viewID != "" {
		u += "?viewId=" + url.QueryEscape(viewID)
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("count records", resp, http.StatusOK); err != nil {
		return 0, err
	}
	var cr types.CountResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return 0, err
	}
	return cr.Count, nil
}
