package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nocoverse/nocodb-go/internal/types"
)

const linksPath = "/api/v2/tables/t1/links/c7/records/42"

func TestListLinks_Success(t *testing.T) {
	t.Parallel()
	resp := types.RecordList{List: []types.Record{{"Id": float64(5), "Title": "Task"}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != linksPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()
	got, err := ListLinks(context.Background(), srv.Client(), srv.URL, "t1", "c7", "42", types.ListRecordsOptions{})
	if err != nil || got == nil || len(got.List) != 1 {
		t.Fatalf("ListLinks unexpected: got=%+v err=%v", got, err)
	}
}

func TestLinkAndUnlinkRecords(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != linksPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var refs []types.LinkRef
		_ = json.NewDecoder(r.Body).Decode(&refs)
		if len(refs) == 0 {
			t.Error("expected link refs in body")
		}
		_, _ = w.Write([]byte("true"))
	}))
	defer srv.Close()
	if err := LinkRecords(context.Background(), srv.Client(), srv.URL, "t1", "c7", "42", []types.LinkRef{{ID: 5}}); err != nil {
		t.Fatalf("LinkRecords error: %v", err)
	}
	if err := UnlinkRecords(context.Background(), srv.Client(), srv.URL, "t1", "c7", "42", []types.LinkRef{{ID: 5}}); err != nil {
		t.Fatalf("UnlinkRecords error: %v", err)
	}
}

func TestLinks_ValidationErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if err := LinkRecords(context.Background(), srv.Client(), srv.URL, "", "c7", "42", []types.LinkRef{{ID: 1}}); err == nil {
		t.Fatal("expected validation error for empty tableId")
	}
	if err := LinkRecords(context.Background(), srv.Client(), srv.URL, "t1", "", "42", []types.LinkRef{{ID: 1}}); err == nil {
		t.Fatal("expected validation error for empty linkFieldId")
	}
	if err := LinkRecords(context.Background(), srv.Client(), srv.URL, "t1", "c7", "42", nil); err == nil {
		t.Fatal("expected validation error for empty links")
	}
	if err := UnlinkRecords(context.Background(), srv.Client(), srv.URL, "t1", "c7", "", []types.LinkRef{{ID: 1}}); err == nil {
		t.Fatal("expected validation error for empty recordId")
	}
}
