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

// VJEPA2ACConverter converts LeRobot datasets to the V-JEPA2-AC training
// layout.
//
// V-JEPA2-AC consumes videos grouped by camera stream alongside the
// action/state trajectories, so the output groups by stream rather than by
// episode:
//
//	<output>/<org>_<name>/
//	    videos/<stream>/episode_000000.mp4
//	    trajectories/episode_000000.parquet
//	    vjepa2_ac_manifest.json
//
// Video files are copied verbatim; re-encoding is out of scope.
type VJEPA2ACConverter struct {
	verbose bool
}

// NewVJEPA2ACConverter creates a V-JEPA2-AC converter.
func NewVJEPA2ACConverter(verbose bool) *VJEPA2ACConverter {
	return &VJEPA2ACConverter{verbose: verbose}
}

// vjepa2acManifest is written once per converted dataset.
type vjepa2acManifest struct {
	RepoID       string    `json:"repo_id"`
	Format       string    `json:"format"`
	Episodes     int       `json:"episodes"`
	VideoStreams []string  `json:"video_streams"`
	EpisodeNames []string  `json:"episode_names"`
	ConvertedAt  time.Time `json:"converted_at"`
}

// ConvertDataset converts one dataset from inputDir into the V-JEPA2-AC
// layout under outputDir. Per-dataset problems are reported in the result's
// status; only structural failures return a Go error.
func (c *VJEPA2ACConverter) ConvertDataset(ctx context.Context, repoID string, selectedVideos []string, inputDir, outputDir string) (*model.ConversionResult, error) {
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

	names := make([]string, 0, len(episodes))
	for _, ep := range episodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := fsutil.CopyFile(ep.dataFile, filepath.Join(destRoot, "trajectories", ep.name+".parquet")); err != nil {
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
			dst := filepath.Join(destRoot, "videos", stream, ep.name+".mp4")
			if err := fsutil.CopyFile(src, dst); err != nil {
				return nil, fmt.Errorf("copying %s for %s/%s: %w", stream, repoID, ep.name, err)
			}
		}

		names = append(names, ep.name)
	}

	manifest := vjepa2acManifest{
		RepoID:       repoID,
		Format:       FormatVJEPA2AC,
		Episodes:     len(names),
		VideoStreams: selectedVideos,
		EpisodeNames: names,
		ConvertedAt:  time.Now().UTC(),
	}
	if err := fsutil.WriteJSON(filepath.Join(destRoot, "vjepa2_ac_manifest.json"), manifest); err != nil {
		return nil, fmt.Errorf("writing manifest for %s: %w", repoID, err)
	}

	message := fmt.Sprintf("converted %s to V-JEPA2-AC format", repoID)
	if c.verbose {
		message = fmt.Sprintf("%s (%d episodes, streams: %s)", message, len(names), strings.Join(selectedVideos, ", "))
	}

	return &model.ConversionResult{
		Status:            model.StatusOK,
		Message:           message,
		EpisodesConverted: len(names),
	}, nil
}
