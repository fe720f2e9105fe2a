package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nocoverse/nocodb-go/internal/types"
)

// MaxUploadSize caps file uploads at 100 MiB, matching the server default.
const MaxUploadSize = 100 << 20

// UploadFile uploads a local file through the storage API and returns the
// stored attachment descriptors. When mimeType is empty it is guessed from
// the file extension, falling back to application/octet-stream.
func UploadFile(ctx context.Context, httpClient *http.Client, baseURL, filePath, title, mimeType string) ([]types.Attachment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateTitlePresent(title, "title"); err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxUploadSize {
		return nil, fmt.Errorf("file size %d exceeds maximum %d bytes", info.Size(), MaxUploadSize)
	}
	if mimeType == "" {
		if byExt := mime.TypeByExtension(filepath.Ext(filePath)); byExt != "" {
			mimeType = byExt
		} else {
			mimeType = "application/octet-stream"
		}
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	// The whole payload is buffered so the retry transport can replay it.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="file"; filename=%q`, title)}
	hdr["Content-Type"] = []string{mimeType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v2/storage/upload", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("upload file", resp, http.StatusOK); err != nil {
		return nil, err
	}
	var atts []types.Attachment
	if err := json.NewDecoder(resp.Body).Decode(&atts); err != nil {
		return nil, err
	}
	return atts, nil
}
