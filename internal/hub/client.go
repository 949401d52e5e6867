package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Client wraps HTTP operations against the Hugging Face Hub.
//
// Client provides:
//   - Repository tree listing via the datasets API
//   - File downloads streamed to disk with progress tracking
//   - File size retrieval via HEAD requests
//
// Example usage:
//
//	client := hub.NewClient("https://huggingface.co", "main", "lerobotlab")
//
//	entries, err := client.ListTree(ctx, "lerobot/pusht")
//
//	err = client.DownloadFile(ctx, "lerobot/pusht", "meta/info.json", dest,
//	    func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    })
type Client struct {
	httpClient *http.Client
	endpoint   string
	revision   string
	userAgent  string
}

// TreeEntry is one entry of a repository tree listing.
type TreeEntry struct {
	// Type is "file" or "directory".
	Type string `json:"type"`

	// Path is the entry's path relative to the repository root,
	// e.g. "videos/chunk-000/observation.images.webcam1/episode_000000.mp4".
	Path string `json:"path"`

	// Size is the file size in bytes (zero for directories).
	Size int64 `json:"size"`
}

// IsFile reports whether the entry is a regular file.
func (e TreeEntry) IsFile() bool {
	return e.Type == "file"
}

// NewClient creates a new Hub client.
//
// endpoint is the Hub base URL (normally "https://huggingface.co"),
// revision the git revision to read from (normally "main").
func NewClient(endpoint, revision, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
		endpoint:  endpoint,
		revision:  revision,
		userAgent: userAgent,
	}
}

// ProgressWriter wraps a writer to track download progress.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// ListTree returns the full recursive file listing of a dataset repository.
//
// It calls GET {endpoint}/api/datasets/{repoID}/tree/{revision}?recursive=true
// and decodes the JSON array of entries.
func (c *Client) ListTree(ctx context.Context, repoID string) ([]TreeEntry, error) {
	u := fmt.Sprintf("%s/api/datasets/%s/tree/%s?recursive=true",
		c.endpoint, repoID, url.PathEscape(c.revision))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing %s: HTTP %d: %s", repoID, resp.StatusCode, resp.Status)
	}

	var entries []TreeEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding tree listing for %s: %w", repoID, err)
	}

	return entries, nil
}

// FileSize returns the size of a repository file via HEAD request.
//
// Returns an error if the request fails or the server doesn't report a
// Content-Length header.
func (c *Client) FileSize(ctx context.Context, repoID, path string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.resolveURL(repoID, path), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("no Content-Length header for %s/%s", repoID, path)
	}

	return resp.ContentLength, nil
}

// DownloadFile downloads a repository file to destPath with an optional
// progress callback.
//
// The file is streamed directly to disk, avoiding loading the entire file
// into memory; parent directories are created as needed. Pass nil for
// onProgress to disable progress tracking.
func (c *Client) DownloadFile(ctx context.Context, repoID, path, destPath string, onProgress func(written, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolveURL(repoID, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s/%s: HTTP %d: %s", repoID, path, resp.StatusCode, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	_, err = io.Copy(writer, resp.Body)
	return err
}

// resolveURL builds the raw-file URL for a repository path.
func (c *Client) resolveURL(repoID, path string) string {
	return fmt.Sprintf("%s/datasets/%s/resolve/%s/%s",
		c.endpoint, repoID, url.PathEscape(c.revision), path)
}
