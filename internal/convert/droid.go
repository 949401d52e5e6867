package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lerobotlab/lerobotlab/internal/fsutil"
	"github.com/lerobotlab/lerobotlab/internal/model"
)

// DROIDConverter converts LeRobot datasets to the DROID episode layout.
//
// Each episode becomes its own directory with the trajectory data and the
// selected camera recordings grouped under recordings/MP4:
//
//	<output>/<org>_<name>/
//	    episode_000000/
//	        trajectory.parquet
//	        recordings/MP4/<stream>.mp4
//	    ...
//	    droid_manifest.json
//
// Video files are copied verbatim; re-encoding is out of scope.
type DROIDConverter struct {
	verbose bool
}

// NewDROIDConverter creates a DROID converter.
func NewDROIDConverter(verbose bool) *DROIDConverter {
	return &DROIDConverter{verbose: verbose}
}

// droidManifest is written once per converted dataset.
type droidManifest struct {
	RepoID       string    `json:"repo_id"`
	Format       string    `json:"format"`
	Episodes     int       `json:"episodes"`
	VideoStreams []string  `json:"video_streams"`
	ConvertedAt  time.Time `json:"converted_at"`
}

// ConvertDataset converts one dataset from inputDir into the DROID layout
// under outputDir. Per-dataset problems are reported in the result's status;
// only structural failures (context cancellation, unwritable output) return
// a Go error.
func (c *DROIDConverter) ConvertDataset(ctx context.Context, repoID string, selectedVideos []string, inputDir, outputDir string) (*model.ConversionResult, error) {
	ds := model.DatasetSelection{RepoID: repoID, SelectedVideos: selectedVideos}
	datasetDir := ds.LocalDir(inputDir)

	if _, err := os.Stat(datasetDir); err != nil {
		return &model.ConversionResult{
			Status:  model.StatusError,
			Message: fmt.Sprintf("dataset not found at %s", datasetDir),
		}, nil
	}

	episodes, err := discoverEpisodes(datasetDir, selectedVideos)
	if err != nil {
		return &model.ConversionResult{
			Status:  model.StatusError,
			Message: err.Error(),
		}, nil
	}

	destRoot := filepath.Join(outputDir, datasetDirName(repoID))

	converted := 0
	for _, ep := range episodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		epDir := filepath.Join(destRoot, ep.name)

		if err := fsutil.CopyFile(ep.dataFile, filepath.Join(epDir, "trajectory.parquet")); err != nil {
			return nil, fmt.Errorf("copying trajectory for %s/%s: %w", repoID, ep.name, err)
		}

		for _, stream := range selectedVideos {
			src, ok := ep.videos[stream]
			if !ok {
				return &model.ConversionResult{
					Status:  model.StatusError,
					Message: fmt.Sprintf("episode %s has no video for stream %s", ep.name, stream),
				}, nil
			}
			dst := filepath.Join(epDir, "recordings", "MP4", stream+".mp4")
			if err := fsutil.CopyFile(src, dst); err != nil {
				return nil, fmt.Errorf("copying %s for %s/%s: %w", stream, repoID, ep.name, err)
			}
		}

		converted++
	}

	manifest := droidManifest{
		RepoID:       repoID,
		Format:       FormatDROID,
		Episodes:     converted,
		VideoStreams: selectedVideos,
		ConvertedAt:  time.Now().UTC(),
	}
	if err := fsutil.WriteJSON(filepath.Join(destRoot, "droid_manifest.json"), manifest); err != nil {
		return nil, fmt.Errorf("writing manifest for %s: %w", repoID, err)
	}

	message := fmt.Sprintf("converted %s to DROID format", repoID)
	if c.verbose {
		message = fmt.Sprintf("%s (%d episodes, streams: %s)", message, converted, strings.Join(selectedVideos, ", "))
	}

	return &model.ConversionResult{
		Status:            model.StatusOK,
		Message:           message,
		EpisodesConverted: converted,
	}, nil
}
