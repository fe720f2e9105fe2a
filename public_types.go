package nocodb

import "github.com/nocoverse/nocodb-go/internal/types"

// Public type aliases so SDK consumers can import only the nocodb package.

// Domain entities
type (
	Record     = types.Record
	Base       = types.Base
	Table      = types.Table
	Column     = types.Column
	View       = types.View
	Attachment = types.Attachment
	PageInfo   = types.PageInfo
)

// Requests
type (
	CreateBaseRequest  = types.CreateBaseRequest
	BaseMeta           = types.BaseMeta
	CreateTableRequest = types.CreateTableRequest
	UpdateTableRequest = types.UpdateTableRequest
	ListRecordsOptions = types.ListRecordsOptions
	LinkRef            = types.LinkRef
)

// Responses
type (
	RecordList    = types.RecordList
	CountResponse = types.CountResponse
)

// Errors re-exported in errors.go
