package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nocoverse/nocodb-go/internal/types"
)

func TestListTables_Success(t *testing.T) {
	t.Parallel()
	resp := types.TableList{List: []types.Table{{ID: "t1", Title: "Projects"}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/meta/bases/p1/tables" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()
	got, err := ListTables(context.Background(), srv.Client(), srv.URL, "p1")
	if err != nil || len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("ListTables unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetTable_IncludesColumns(t *testing.T) {
	t.Parallel()
	want := types.Table{ID: "t1", Title: "Projects", Columns: []types.Column{{ID: "c1", Title: "Name", UIDT: "SingleLineText"}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/meta/tables/t1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := GetTable(context.Background(), srv.Client(), srv.URL, "t1")
	if err != nil || got == nil || len(got.Columns) != 1 || got.Columns[0].UIDT != "SingleLineText" {
		t.Fatalf("GetTable unexpected: got=%+v err=%v", got, err)
	}
}

func TestCreateTable_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v2/meta/bases/p1/tables" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req types.CreateTableRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(types.Table{ID: "t9", Title: req.Title})
	}))
	defer srv.Close()
	got, err := CreateTable(context.Background(), srv.Client(), srv.URL, "p1", types.CreateTableRequest{Title: "Tasks"})
	if err != nil || got == nil || got.ID != "t9" {
		t.Fatalf("CreateTable unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdateAndDeleteTable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch, http.MethodDelete:
			_, _ = w.Write([]byte("true"))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()
	if err := UpdateTable(context.Background(), srv.Client(), srv.URL, "t1", types.UpdateTableRequest{Title: "Renamed"}); err != nil {
		t.Fatalf("UpdateTable error: %v", err)
	}
	if err := DeleteTable(context.Background(), srv.Client(), srv.URL, "t1"); err != nil {
		t.Fatalf("DeleteTable error: %v", err)
	}
}

func TestTables_NonOKStatuses(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()
	if _, err := ListTables(context.Background(), srv.Client(), srv.URL, "p1"); err == nil {
		t.Fatal("expected error for ListTables non-200")
	}
	if _, err := CreateTable(context.Background(), srv.Client(), srv.URL, "p1", types.CreateTableRequest{Title: "x"}); err == nil {
		t.Fatal("expected error for CreateTable non-200")
	}
	if err := DeleteTable(context.Background(), srv.Client(), srv.URL, "t1"); err == nil {
		t.Fatal("expected error for DeleteTable non-200")
	}
}

func TestTables_ValidationErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := ListTables(context.Background(), srv.Client(), srv.URL, ""); err == nil {
		t.Fatal("expected validation error for empty baseId")
	}
	if _, err := CreateTable(context.Background(), srv.Client(), srv.URL, "p1", types.CreateTableRequest{}); err == nil {
		t.Fatal("expected validation error for empty title")
	}
	if _, err := GetTable(context.Background(), srv.Client(), srv.URL, ""); err == nil {
		t.Fatal("expected validation error for empty tableId")
	}
}
