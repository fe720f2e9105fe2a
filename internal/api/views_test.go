package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nocoverse/nocodb-go/internal/types"
)

func TestListViews_Success(t *testing.T) {
	t.Parallel()
	resp := types.ViewList{List: []types.View{{ID: "vw1", Title: "Grid", IsDefault: true}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/meta/tables/t1/views" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()
	got, err := ListViews(context.Background(), srv.Client(), srv.URL, "t1")
	if err != nil || len(got) != 1 || !got[0].IsDefault {
		t.Fatalf("ListViews unexpected: got=%+v err=%v", got, err)
	}
}

func TestListViews_Errors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	if _, err := ListViews(context.Background(), srv.Client(), srv.URL, "t1"); err == nil {
		t.Fatal("expected error for non-200")
	}
	if _, err := ListViews(context.Background(), srv.Client(), srv.URL, ""); err == nil {
		t.Fatal("expected validation error for empty tableId")
	}
}
