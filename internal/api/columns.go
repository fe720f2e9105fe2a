package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nocoverse/nocodb-go/internal/types"
)

// CreateColumn adds a column to an existing table.
func CreateColumn(ctx context.Context, httpClient *http.Client, baseURL, tableID string, col types.Column) (*types.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	if err := types.ValidateTitlePresent(col.Title, "title"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/tables/%s/columns", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, col)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("create column", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var created types.Column
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetColumn retrieves column metadata by ID.
func GetColumn(ctx context.Context, httpClient *http.Client, baseURL, columnID string) (*types.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(columnID, "columnId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/columns/%s", baseURL, columnID)
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get column", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var c types.Column
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateColumn patches an existing column definition.
func UpdateColumn(ctx context.Context, httpClient *http.Client, baseURL, columnID string, col types.Column) (*types.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(columnID, "columnId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/columns/%s", baseURL, columnID)
	httpReq, err := newJSONRequest(ctx, http.MethodPatch, url, col)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("update column", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var updated types.Column
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteColumn removes a column from its table.
func DeleteColumn(ctx context.Context, httpClient *http.Client, baseURL, columnID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(columnID, "columnId"); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/v2/meta/columns/%s", baseURL, columnID)
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus("delete column", resp, http.StatusOK)
}
