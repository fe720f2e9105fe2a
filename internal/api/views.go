package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nocoverse/nocodb-go/internal/types"
)

// ListViews returns the views defined on a table.
func ListViews(ctx context.Context, httpClient *http.Client, baseURL, tableID string) ([]types.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/tables/%s/views", baseURL, tableID)
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("list views", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var vl types.ViewList
	if err := json.NewDecoder(resp.Body).Decode(&vl); err != nil {
		return nil, err
	}
	return vl.List, nil
}
