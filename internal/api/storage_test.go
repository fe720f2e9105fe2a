package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nocoverse/nocodb-go/internal/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUploadFile_Success(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "report.csv", "a,b\n1,2\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/storage/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			_ = f.Close()
			if hdr.Filename != "report" {
				t.Errorf("unexpected filename %q", hdr.Filename)
			}
		}
		_ = json.NewEncoder(w).Encode([]types.Attachment{{Title: "report", Path: "download/report.csv", Size: 8}})
	}))
	defer srv.Close()

	atts, err := UploadFile(context.Background(), srv.Client(), srv.URL, path, "report", "")
	if err != nil || len(atts) != 1 || atts[0].Title != "report" {
		t.Fatalf("UploadFile unexpected: got=%+v err=%v", atts, err)
	}
}

func TestUploadFile_MimeTypeByExtension(t *testing.T) {
	t.Parallel()
	path := writeTempFile(t, "notes.json", `{"k":1}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		_, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		if ct := hdr.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("unexpected content type %q", ct)
		}
		_ = json.NewEncoder(w).Encode([]types.Attachment{{Title: "notes"}})
	}))
	defer srv.Close()
	if _, err := UploadFile(context.Background(), srv.Client(), srv.URL, path, "notes", ""); err != nil {
		t.Fatalf("UploadFile error: %v", err)
	}
}

func TestUploadFile_MissingFile(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := UploadFile(context.Background(), srv.Client(), srv.URL, "/nonexistent/file.bin", "x", ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestUploadFile_EmptyTitle(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := UploadFile(context.Background(), srv.Client(), srv.URL, "whatever", "", ""); err == nil {
		t.Fatal("expected validation error for empty title")
	}
}
