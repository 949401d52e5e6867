package download

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lerobotlab/lerobotlab/internal/config"
	"github.com/lerobotlab/lerobotlab/internal/hub"
	"github.com/lerobotlab/lerobotlab/internal/model"
	"github.com/lerobotlab/lerobotlab/internal/progress"
	"golang.org/x/sync/errgroup"
)

// Manager coordinates dataset downloads from the Hugging Face Hub.
//
// Datasets are fetched sequentially in selection-document order so that
// progress reporting matches the document; files within one dataset are
// fetched concurrently up to the configured limit.
type Manager struct {
	settings *config.Settings
	client   *hub.Client

	totalFiles      atomic.Int32
	downloadedFiles atomic.Int32
	receivedBytes   atomic.Int64

	onProgress progress.Func
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress progress.Func) *Manager {
	return &Manager{
		settings:   settings,
		client:     hub.NewClient(settings.HubEndpoint, settings.HubRevision, settings.UserAgent),
		onProgress: onProgress,
	}
}

// DownloadSelection downloads every dataset in the selection under root.
//
// Per-dataset failures are reported through the progress callback and do not
// stop subsequent datasets; the error return is reserved for context
// cancellation. Files that already exist locally with a size close enough to
// the remote size are skipped.
//
// Only the parts of each repository that the selection needs are fetched:
// the meta/ and data/ trees plus the video directories of the selected
// streams.
func (m *Manager) DownloadSelection(ctx context.Context, sel *model.SelectionDocument, root string) error {
	for i, ds := range sel.Datasets {
		m.onProgress.Emit(progress.LevelInfo, "[%d/%d] Downloading dataset: %s", i+1, len(sel.Datasets), ds.RepoID)

		if err := m.downloadDataset(ctx, &ds, root); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.onProgress.Emit(progress.LevelError, "Error downloading %s: %v", ds.RepoID, err)
			continue
		}

		m.onProgress.Emit(progress.LevelSuccess, "Downloaded dataset: %s", ds.RepoID)
	}

	return ctx.Err()
}

// Progress returns current download progress.
func (m *Manager) Progress() (received int64, filesReceived, filesTotal int32) {
	return m.receivedBytes.Load(), m.downloadedFiles.Load(), m.totalFiles.Load()
}

func (m *Manager) downloadDataset(ctx context.Context, ds *model.DatasetSelection, root string) error {
	entries, err := m.client.ListTree(ctx, ds.RepoID)
	if err != nil {
		return err
	}

	var files []hub.TreeEntry
	for _, entry := range entries {
		if entry.IsFile() && wantFile(entry.Path, ds.SelectedVideos) {
			files = append(files, entry)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("repository %s has no files matching the selection", ds.RepoID)
	}

	m.totalFiles.Add(int32(len(files)))
	localDir := ds.LocalDir(root)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentFileDownloads)

	for _, file := range files {
		file := file
		g.Go(func() error {
			return m.downloadFile(ctx, ds.RepoID, file, filepath.Join(localDir, filepath.FromSlash(file.Path)))
		})
	}

	return g.Wait()
}

func (m *Manager) downloadFile(ctx context.Context, repoID string, file hub.TreeEntry, destPath string) error {
	// Skip files that already exist with an acceptable size. Tree listings
	// report size 0 for LFS-backed files, so fall back to a HEAD request
	// before deciding whether the local copy is complete.
	if info, err := os.Stat(destPath); err == nil {
		remoteSize := file.Size
		if remoteSize == 0 {
			if size, err := m.client.FileSize(ctx, repoID, file.Path); err == nil {
				remoteSize = size
			}
		}
		if remoteSize > 0 {
			sizeDiff := float64(info.Size()-remoteSize) / float64(remoteSize)
			if math.Abs(sizeDiff) <= m.settings.AllowedFileSizeDifference {
				m.onProgress.Emit(progress.LevelVerbose, "Skipping existing: %s", file.Path)
				m.downloadedFiles.Add(1)
				m.receivedBytes.Add(info.Size())
				return nil
			}
		}
	}

	var err error
	for tries := 0; tries < m.settings.DownloadMaxRetries; tries++ {
		err = m.client.DownloadFile(ctx, repoID, file.Path, destPath, nil)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.onProgress.Emit(progress.LevelWarning, "Retry %d/%d for %s", tries+1, m.settings.DownloadMaxRetries, file.Path)
		m.waitForRetry(ctx, tries)
	}

	if err != nil {
		return err
	}

	m.downloadedFiles.Add(1)
	m.receivedBytes.Add(file.Size)
	m.onProgress.Emit(progress.LevelVerbose, "Downloaded: %s", file.Path)
	return nil
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.DownloadRetryCooldown * math.Pow(m.settings.DownloadRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

// wantFile reports whether a repository path is needed for the selection.
//
// Metadata and tabular episode data are always fetched; video files are
// fetched only for the selected streams. Video paths follow the LeRobot v2
// layout: videos/chunk-XXX/<stream>/episode_XXXXXX.mp4.
func wantFile(path string, selectedVideos []string) bool {
	if strings.HasPrefix(path, "meta/") || strings.HasPrefix(path, "data/") {
		return true
	}
	if !strings.HasPrefix(path, "videos/") {
		return false
	}
	for _, stream := range selectedVideos {
		if strings.Contains(path, "/"+stream+"/") {
			return true
		}
	}
	return false
}
