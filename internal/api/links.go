package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nocoverse/nocodb-go/internal/types"
)

func linksURL(baseURL, tableID, linkFieldID, recordID string) string {
	return fmt.Sprintf("%s/api/v2/tables/%s/links/%s/records/%s", baseURL, tableID, linkFieldID, recordID)
}

func validateLinkIDs(tableID, linkFieldID, recordID string) error {
	if err := types.ValidateIDPresent(tableID, "tableId"); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(linkFieldID, "linkFieldId"); err != nil {
		return err
	}
	return types.ValidateIDPresent(recordID, "recordId")
}

// ListLinks returns the rows linked to recordID through the given link field.
func ListLinks(ctx context.Context, httpClient *http.Client, baseURL, tableID, linkFieldID, recordID string, opts types.ListRecordsOptions) (*types.RecordList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateLinkIDs(tableID, linkFieldID, recordID); err != nil {
		return nil, err
	}
	u := linksURL(baseURL, tableID, linkFieldID, recordID)
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

	if err := checkStatus("list links", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var rl types.RecordList
	if err := json.NewDecoder(resp.Body).Decode(&rl); err != nil {
		return nil, err
	}
	return &rl, nil
}

// LinkRecords links the referenced rows to recordID through the link field.
func LinkRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID, linkFieldID, recordID string, refs []types.LinkRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateLinkIDs(tableID, linkFieldID, recordID); err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("links cannot be empty")
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, linksURL(baseURL, tableID, linkFieldID, recordID), refs)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus("link records", resp, http.StatusOK)
}

// UnlinkRecords detaches the referenced rows from recordID.
func UnlinkRecords(ctx context.Context, httpClient *http.Client, baseURL, tableID, linkFieldID, recordID string, refs []types.LinkRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateLinkIDs(tableID, linkFieldID, recordID); err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("links cannot be empty")
	}
	httpReq, err := newJSONRequest(ctx, http.MethodDelete, linksURL(baseURL, tableID, linkFieldID, recordID), refs)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	return checkStatus("unlink records", resp, http.StatusOK)
}
