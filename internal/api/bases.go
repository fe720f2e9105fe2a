package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nocoverse/nocodb-go/internal/types"
)

// ListBases returns every base visible to the token.
func ListBases(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.Base, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/bases", baseURL)
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("list bases", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var bl types.BaseList
	if err := json.NewDecoder(resp.Body).Decode(&bl); err != nil {
		return nil, err
	}
	return bl.List, nil
}

// GetBase retrieves a base by ID.
func GetBase(ctx context.Context, httpClient *http.Client, baseURL, baseID string) (*types.Base, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(baseID, "baseId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/bases/%s", baseURL, baseID)
	httpReq, err := newJSONRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get base", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var b types.Base
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBase creates a new base.
func CreateBase(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateBaseRequest) (*types.Base, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateTitlePresent(req.Title, "title"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/v2/meta/bases", baseURL)
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("create base", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var b types.Base
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBase deletes a base and everything in it.
func DeleteBase(ctx context.Context, httpClient *http.Client, baseURL, baseID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(baseID, "baseId"); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/v2/meta/bases/%s", baseURL, baseID)
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus("delete base", resp, http.StatusOK)
}
