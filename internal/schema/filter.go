// Package schema implements the bulk schema composites: turning the full
// table metadata of one base into create payloads that can be replayed
// against another, with server-managed fields stripped out.
package schema

import "github.com/nocoverse/nocodb-go/internal/types"

// forbiddenColumnNames are columns NocoDB maintains itself; replaying them
// in a create payload is rejected by the server.
var forbiddenColumnNames = map[string]struct{}{
	"updated_at": {},
	"created_at": {},
	"created_by": {},
	"updated_by": {},
	"nc_order":   {},
}

// forbiddenUIDTs are relational column types that cannot be created from a
// plain schema payload; links must be re-established separately.
var forbiddenUIDTs = map[string]struct{}{
	"LinkToAnotherRecord": {},
	"Links":               {},
	"ForeignKey":          {},
}

// validUIDTs is the set of UI data types accepted in create payloads.
var validUIDTs = map[string]struct{}{
	"Links": {}, "ID": {}, "SingleLineText": {}, "LongText": {},
	"Attachment": {}, "Checkbox": {}, "MultiSelect": {}, "SingleSelect": {},
	"Collaborator": {}, "Date": {}, "Year": {}, "Time": {},
	"PhoneNumber": {}, "Email": {}, "URL": {}, "Number": {},
	"Decimal": {}, "Currency": {}, "Percent": {}, "Duration": {},
	"Rating": {}, "Formula": {}, "Rollup": {}, "Count": {},
	"DateTime": {}, "CreateTime": {}, "LastModifiedTime": {},
	"AutoNumber": {}, "Geometry": {}, "JSON": {}, "SpecificDBType": {},
}

// ValidUIDT reports whether uidt is a UI data type the server accepts in
// column create payloads.
func ValidUIDT(uidt string) bool {
	_, ok := validUIDTs[uidt]
	return ok
}

// SanitizeColumn strips server-managed metadata from a column, keeping only
// the fields a create payload may carry. ok is false when the column must
// be dropped entirely (system column or relational type).
func SanitizeColumn(col types.Column) (types.Column, bool) {
	if _, bad := forbiddenColumnNames[col.ColumnName]; bad {
		return types.Column{}, false
	}
	if _, bad := forbiddenUIDTs[col.UIDT]; bad {
		return types.Column{}, false
	}
	return types.Column{
		Title:      col.Title,
		ColumnName: col.ColumnName,
		UIDT:       col.UIDT,
		DataType:   col.DataType,
		PrimaryKey: col.PrimaryKey,
		Required:   col.Required,
		Unique:     col.Unique,
		AutoIncr:   col.AutoIncr,
		Meta:       col.Meta,
		ColOptions: col.ColOptions,
	}, true
}

// SanitizeTable converts full table metadata into a create payload with
// forbidden columns removed.
func SanitizeTable(t types.Table) types.CreateTableRequest {
	req := types.CreateTableRequest{
		TableName: t.TableName,
		Title:     t.Title,
		Meta:      t.Meta,
	}
	for _, col := range t.Columns {
		if clean, ok := SanitizeColumn(col); ok {
			req.Columns = append(req.Columns, clean)
		}
	}
	return req
}

// SanitizeTables applies SanitizeTable to a whole schema. Tables without a
// title are skipped.
func SanitizeTables(tables []types.Table) []types.CreateTableRequest {
	out := make([]types.CreateTableRequest, 0, len(tables))
	for _, t := range tables {
		if t.Title == "" {
			continue
		}
		out = append(out, SanitizeTable(t))
	}
	return out
}
