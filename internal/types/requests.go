package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// CreateBaseRequest holds parameters for a new base.
type CreateBaseRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Meta        *BaseMeta `json:"meta,omitempty"`
}

// BaseMeta carries presentation metadata for a base.
type BaseMeta struct {
	IconColor string `json:"iconColor,omitempty"`
}

// CreateTableRequest holds the schema for a new table. TableName is the
// physical name; when empty the server derives it from Title.
type CreateTableRequest struct {
	TableName string   `json:"table_name,omitempty"`
	Title     string   `json:"title"`
	Columns   []Column `json:"columns,omitempty"`
	Meta      any      `json:"meta,omitempty"`
}

// UpdateTableRequest holds the mutable table attributes.
type UpdateTableRequest struct {
	TableName string `json:"table_name,omitempty"`
	Title     string `json:"title,omitempty"`
	Meta      any    `json:"meta,omitempty"`
}

// LinkRef identifies a record on the far side of a link field.
type LinkRef struct {
	ID any `json:"Id"`
}

// ListRecordsOptions narrows a record listing. The zero value lists with
// server defaults.
type ListRecordsOptions struct {
	// Fields is a comma-separated list of field titles to include.
	Fields string
	// Sort is a comma-separated list of field titles; prefix with '-' for
	// descending order.
	Sort string
	// Where is a filter expression in NocoDB query syntax,
	// e.g. "(Status,eq,open)".
	Where string
	// Offset and Limit page through results. Limit 0 means server default.
	Offset int
	Limit  int
	// ViewID scopes the listing to a view's filters and sorts.
	ViewID string
}

// Values encodes the options as URL query parameters.
func (o ListRecordsOptions) Values() url.Values {
	v := url.Values{}
	if o.Fields != "" {
		v.Set("fields", o.Fields)
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Where != "" {
		v.Set("where", o.Where)
	}
	if o.Offset > 0 {
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.ViewID != "" {
		v.Set("viewId", o.ViewID)
	}
	return v
}
