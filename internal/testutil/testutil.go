// Package testutil provides shared fixtures for lerobotlab tests: canonical
// selection documents and a synthetic LeRobot dataset tree generator.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerobotlab/lerobotlab/internal/model"
)

// SingleDatasetJSON is a selection document naming one dataset with two
// camera streams (1 dataset, 3 episodes).
const SingleDatasetJSON = `{
  "metadata": {
    "saved_at": "2025-08-02T23:46:33.501Z",
    "total_datasets": 1,
    "total_episodes": 3,
    "total_frames": 1997
  },
  "datasets": [
    {
      "repo_id": "marioblz/eval_act_so101_test14",
      "selected_videos": [
        "observation.images.webcam1",
        "observation.images.webcam2"
      ]
    }
  ]
}`

// MultiDatasetJSON is a selection document naming four datasets with one
// camera stream each (4 datasets, 1387 episodes).
const MultiDatasetJSON = `{
  "metadata": {
    "saved_at": "2025-08-02T21:45:02.190Z",
    "total_datasets": 4,
    "total_episodes": 1387,
    "total_frames": 696391
  },
  "datasets": [
    {"repo_id": "1lyz123576/so101_test", "selected_videos": ["observation.images.phone"]},
    {"repo_id": "smanni/train_so100_all", "selected_videos": ["observation.images.intel_realsense"]},
    {"repo_id": "bjb7/so101_pen_touch_test_1", "selected_videos": ["observation.images.camera_4"]},
    {"repo_id": "shreyasgite/so100_base_env", "selected_videos": ["observation.images.laptop"]}
  ]
}`

// Selection parses one of the fixture documents, failing the test on error.
func Selection(t *testing.T, jsonDoc string) *model.SelectionDocument {
	t.Helper()
	sel, err := model.ParseSelection([]byte(jsonDoc))
	if err != nil {
		t.Fatalf("parsing fixture selection: %v", err)
	}
	return sel
}

// WriteSelectionFile writes a fixture document to dir and returns its path.
func WriteSelectionFile(t *testing.T, dir, jsonDoc string) string {
	t.Helper()
	path := filepath.Join(dir, "selection.json")
	if err := os.WriteFile(path, []byte(jsonDoc), 0644); err != nil {
		t.Fatalf("writing selection file: %v", err)
	}
	return path
}

// WriteLeRobotDataset materializes a synthetic LeRobot v2 dataset tree for
// repoID under root: data/chunk-000/episode_*.parquet, one video file per
// stream per episode, and meta/info.json. File contents are placeholders;
// converters copy bytes verbatim and never parse them.
func WriteLeRobotDataset(t *testing.T, root, repoID string, streams []string, episodes int) string {
	t.Helper()

	ds := model.DatasetSelection{RepoID: repoID, SelectedVideos: streams}
	dir := ds.LocalDir(root)

	metaDir := filepath.Join(dir, "meta")
	if err := os.MkdirAll(metaDir, 0755); err != nil {
		t.Fatalf("creating meta dir: %v", err)
	}
	info := fmt.Sprintf(`{"codebase_version": "v2.0", "total_episodes": %d}`, episodes)
	if err := os.WriteFile(filepath.Join(metaDir, "info.json"), []byte(info), 0644); err != nil {
		t.Fatalf("writing info.json: %v", err)
	}

	for ep := 0; ep < episodes; ep++ {
		name := fmt.Sprintf("episode_%06d", ep)

		dataDir := filepath.Join(dir, "data", "chunk-000")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			t.Fatalf("creating data dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dataDir, name+".parquet"), []byte("parquet:"+name), 0644); err != nil {
			t.Fatalf("writing parquet: %v", err)
		}

		for _, stream := range streams {
			videoDir := filepath.Join(dir, "videos", "chunk-000", stream)
			if err := os.MkdirAll(videoDir, 0755); err != nil {
				t.Fatalf("creating video dir: %v", err)
			}
			if err := os.WriteFile(filepath.Join(videoDir, name+".mp4"), []byte("mp4:"+stream+":"+name), 0644); err != nil {
				t.Fatalf("writing video: %v", err)
			}
		}
	}

	return dir
}
