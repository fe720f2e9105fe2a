package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nocoverse/nocodb-go/internal/types"
)

// ListTables returns table metadata for every table in the base. Columns
// are not populated; use GetTable for the full meta.
func ListTables(ctx context.Context, httpClient *http.Client, baseURL, baseID string) ([]types.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(baseID, "baseId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/bases/%s/tables", baseURL, baseID)
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("list tables", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var tl types.TableList
	if err := json.NewDecoder(resp.Body).Decode(&tl); err != nil {
		return nil, err
	}
	return tl.List, nil
}

// GetTable retrieves the full table meta, including its columns.
func GetTable(ctx context.Context, httpClient *http.Client, baseURL, tableID string) (*types.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/tables/%s", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get table", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var t types.Table
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTable creates a table in the base from the given schema.
func CreateTable(ctx context.Context, httpClient *http.Client, baseURL, baseID string, req types.CreateTableRequest) (*types.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(baseID, "baseId"); err != nil {
		return nil, err
	}
	if err := types.ValidateTitlePresent(req.Title, "title"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/bases/%s/tables", baseURL, baseID)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("create table", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var t types.Table
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTable patches mutable table attributes (title, table_name, meta).
func UpdateTable(ctx context.Context, httpClient *http.Client, baseURL, tableID string, req types.UpdateTableRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/v2/meta/tables/%s", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodPatch, url, req)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus("update table", resp, http.StatusOK)
}

// DeleteTable removes a table and its records.
func DeleteTable(ctx context.Context, httpClient *http.Client, baseURL, tableID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/v2/meta/tables/%s", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus("delete table", resp, http.StatusOK)
}
