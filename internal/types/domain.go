package types

// ------------------------------
// Core Domain Entities
// ------------------------------
//
// NocoDB returns timestamps as strings whose format depends on the backing
// database; they are passed through verbatim rather than parsed.

// Record is a single row as returned by the data API: a mapping from field
// title to value, exactly as the server sent it.
type Record map[string]any

// Base represents a NocoDB base (a project-level container of tables).
type Base struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Color       string `json:"color,omitempty"`
	IsMeta      bool   `json:"is_meta,omitempty"`
	Meta        any    `json:"meta,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Table represents table metadata. Columns are only populated by endpoints
// that return the full table meta.
type Table struct {
	ID        string   `json:"id"`
	SourceID  string   `json:"source_id,omitempty"`
	BaseID    string   `json:"base_id,omitempty"`
	TableName string   `json:"table_name,omitempty"`
	Title     string   `json:"title"`
	Type      string   `json:"type,omitempty"`
	Enabled   bool     `json:"enabled,omitempty"`
	Meta      any      `json:"meta,omitempty"`
	Columns   []Column `json:"columns,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// Column represents column metadata. UIDT is NocoDB's UI data type
// ("SingleLineText", "Number", "Links", ...).
type Column struct {
	ID         string `json:"id,omitempty"`
	SourceID   string `json:"source_id,omitempty"`
	BaseID     string `json:"base_id,omitempty"`
	TableID    string `json:"fk_model_id,omitempty"`
	Title      string `json:"title"`
	ColumnName string `json:"column_name,omitempty"`
	UIDT       string `json:"uidt,omitempty"`
	DataType   string `json:"dt,omitempty"`
	PrimaryKey bool   `json:"pk,omitempty"`
	Required   bool   `json:"rqd,omitempty"`
	Unique     bool   `json:"un,omitempty"`
	AutoIncr   bool   `json:"ai,omitempty"`
	Meta       any    `json:"meta,omitempty"`
	ColOptions any    `json:"colOptions,omitempty"`
}

// View represents a saved view over a table.
type View struct {
	ID        string `json:"id"`
	TableID   string `json:"fk_model_id,omitempty"`
	Title     string `json:"title"`
	Type      int    `json:"type,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// Attachment describes a file stored via the storage API.
type Attachment struct {
	URL      string `json:"url,omitempty"`
	Path     string `json:"path,omitempty"`
	Title    string `json:"title,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// PageInfo carries the pagination metadata returned by list endpoints.
type PageInfo struct {
	TotalRows   int  `json:"totalRows"`
	Page        int  `json:"page,omitempty"`
	PageSize    int  `json:"pageSize,omitempty"`
	IsFirstPage bool `json:"isFirstPage,omitempty"`
	IsLastPage  bool `json:"isLastPage"`
}
