package nocodb

import (
	"context"

	"github.com/nocoverse/nocodb-go/internal/schema"
)

// FetchSchema returns the complete schema of a base: every table with its
// full column metadata. One meta request is issued per table.
func (c *Client) FetchSchema(ctx context.Context, baseID string) ([]Table, error) {
	tables, err := c.ListTables(ctx, baseID)
	if err != nil {
		return nil, err
	}
	full := make([]Table, 0, len(tables))
	for _, t := range tables {
		meta, err := c.GetTable(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		full = append(full, *meta)
	}
	return full, nil
}

// CreateSchema replays a schema (as returned by FetchSchema) into the given
// base. Server-managed columns and link fields are stripped first; tables
// whose title already exists are left untouched. The result maps table
// title to the existing or newly created table.
func (c *Client) CreateSchema(ctx context.Context, baseID string, tables []Table) (map[string]*Table, error) {
	created := make(map[string]*Table, len(tables))
	for _, req := range schema.SanitizeTables(tables) {
		t, err := c.CreateTable(ctx, baseID, req)
		if err != nil {
			return created, err
		}
		created[req.Title] = t
	}
	return created, nil
}
