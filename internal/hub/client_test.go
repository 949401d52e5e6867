package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/datasets/lerobot/pusht/tree/main", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"type": "file", "path": "meta/info.json", "size": 42},
			{"type": "directory", "path": "videos", "size": 0},
			{"type": "file", "path": "data/chunk-000/episode_000000.parquet", "size": 100}
		]`))
	})
	for path, content := range files {
		mux.HandleFunc("/datasets/lerobot/pusht/resolve/main/"+path, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(content))
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_ListTree(t *testing.T) {
	server := newTestServer(t, nil)
	client := NewClient(server.URL, "main", "lerobotlab-test")

	entries, err := client.ListTree(context.Background(), "lerobot/pusht")
	if err != nil {
		t.Fatalf("ListTree() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if !entries[0].IsFile() {
		t.Error("entries[0].IsFile() = false, want true")
	}
	if entries[1].IsFile() {
		t.Error("directory entry reported as file")
	}
	if entries[2].Size != 100 {
		t.Errorf("entries[2].Size = %d, want 100", entries[2].Size)
	}
}

func TestClient_ListTree_NotFound(t *testing.T) {
	server := newTestServer(t, nil)
	client := NewClient(server.URL, "main", "lerobotlab-test")

	if _, err := client.ListTree(context.Background(), "nobody/nothing"); err == nil {
		t.Error("ListTree() error = nil for unknown repo, want error")
	}
}

func TestClient_DownloadFile(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"meta/info.json": `{"codebase_version": "v2.0"}`,
	})
	client := NewClient(server.URL, "main", "lerobotlab-test")

	dest := filepath.Join(t.TempDir(), "nested", "dir", "info.json")
	var lastWritten int64
	err := client.DownloadFile(context.Background(), "lerobot/pusht", "meta/info.json", dest,
		func(written, total int64) { lastWritten = written })
	if err != nil {
		t.Fatalf("DownloadFile() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != `{"codebase_version": "v2.0"}` {
		t.Errorf("downloaded content = %q", data)
	}
	if lastWritten != int64(len(data)) {
		t.Errorf("progress reported %d bytes, want %d", lastWritten, len(data))
	}
}

func TestClient_FileSize(t *testing.T) {
	content := `{"codebase_version": "v2.0"}`
	server := newTestServer(t, map[string]string{"meta/info.json": content})
	client := NewClient(server.URL, "main", "lerobotlab-test")

	size, err := client.FileSize(context.Background(), "lerobot/pusht", "meta/info.json")
	if err != nil {
		t.Fatalf("FileSize() error = %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("FileSize() = %d, want %d", size, len(content))
	}
}

func TestClient_DownloadFile_NotFound(t *testing.T) {
	server := newTestServer(t, nil)
	client := NewClient(server.URL, "main", "lerobotlab-test")

	dest := filepath.Join(t.TempDir(), "missing.json")
	if err := client.DownloadFile(context.Background(), "lerobot/pusht", "meta/missing.json", dest, nil); err == nil {
		t.Error("DownloadFile() error = nil for missing file, want error")
	}
}
