package types

// ------------------------------
// Response Types
// ------------------------------
//
// Meta list endpoints wrap their payload in {"list": [...], "pageInfo": {...}};
// the data API uses the same envelope for records.

// RecordList wraps the record listing response.
type RecordList struct {
	List     []Record `json:"list"`
	PageInfo PageInfo `json:"pageInfo"`
}

// BaseList wraps the base listing response.
type BaseList struct {
	List     []Base   `json:"list"`
	PageInfo PageInfo `json:"pageInfo,omitempty"`
}

// TableList wraps the table listing response.
type TableList struct {
	List     []Table  `json:"list"`
	PageInfo PageInfo `json:"pageInfo,omitempty"`
}

// ViewList wraps the view listing response.
type ViewList struct {
	List []View `json:"list"`
}

// CountResponse wraps the record count endpoint response.
type CountResponse struct {
	Count int `json:"count"`
}
