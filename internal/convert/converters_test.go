package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerobotlab/lerobotlab/internal/model"
	"github.com/lerobotlab/lerobotlab/internal/testutil"
)

const testRepoID = "marioblz/eval_act_so101_test14"

var testStreams = []string{"observation.images.webcam1", "observation.images.webcam2"}

func TestDROIDConverter_ConvertDataset(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	testutil.WriteLeRobotDataset(t, inputDir, testRepoID, testStreams, 3)

	conv := NewDROIDConverter(false)
	result, err := conv.ConvertDataset(context.Background(), testRepoID, testStreams, inputDir, outputDir)
	if err != nil {
		t.Fatalf("ConvertDataset() error = %v", err)
	}

	if !result.OK() {
		t.Fatalf("result = %q: %s", result.Status, result.Message)
	}
	if result.EpisodesConverted != 3 {
		t.Errorf("EpisodesConverted = %d, want 3", result.EpisodesConverted)
	}

	destRoot := filepath.Join(outputDir, "marioblz_eval_act_so101_test14")
	for _, want := range []string{
		filepath.Join(destRoot, "episode_000000", "trajectory.parquet"),
		filepath.Join(destRoot, "episode_000002", "recordings", "MP4", "observation.images.webcam1.mp4"),
		filepath.Join(destRoot, "episode_000001", "recordings", "MP4", "observation.images.webcam2.mp4"),
		filepath.Join(destRoot, "droid_manifest.json"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected output file missing: %s", want)
		}
	}
}

func TestVJEPA2ACConverter_ConvertDataset(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	testutil.WriteLeRobotDataset(t, inputDir, testRepoID, testStreams, 2)

	conv := NewVJEPA2ACConverter(false)
	result, err := conv.ConvertDataset(context.Background(), testRepoID, testStreams, inputDir, outputDir)
	if err != nil {
		t.Fatalf("ConvertDataset() error = %v", err)
	}

	if !result.OK() {
		t.Fatalf("result = %q: %s", result.Status, result.Message)
	}
	if result.EpisodesConverted != 2 {
		t.Errorf("EpisodesConverted = %d, want 2", result.EpisodesConverted)
	}

	destRoot := filepath.Join(outputDir, "marioblz_eval_act_so101_test14")
	for _, want := range []string{
		filepath.Join(destRoot, "trajectories", "episode_000000.parquet"),
		filepath.Join(destRoot, "trajectories", "episode_000001.parquet"),
		filepath.Join(destRoot, "videos", "observation.images.webcam1", "episode_000000.mp4"),
		filepath.Join(destRoot, "videos", "observation.images.webcam2", "episode_000001.mp4"),
		filepath.Join(destRoot, "vjepa2_ac_manifest.json"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected output file missing: %s", want)
		}
	}
}

func TestConverters_MissingDataset(t *testing.T) {
	for _, format := range SupportedFormats() {
		t.Run(format, func(t *testing.T) {
			conv, err := NewConverter(format, false)
			if err != nil {
				t.Fatal(err)
			}

			result, err := conv.ConvertDataset(context.Background(), "nobody/nothing", []string{"x"}, t.TempDir(), t.TempDir())
			if err != nil {
				t.Fatalf("ConvertDataset() error = %v, want error result instead", err)
			}
			if result.Status != model.StatusError {
				t.Errorf("Status = %q, want %q for a missing dataset", result.Status, model.StatusError)
			}
		})
	}
}

func TestConverters_MissingStream(t *testing.T) {
	inputDir := t.TempDir()
	testutil.WriteLeRobotDataset(t, inputDir, testRepoID, []string{"observation.images.webcam1"}, 1)

	for _, format := range SupportedFormats() {
		t.Run(format, func(t *testing.T) {
			conv, err := NewConverter(format, false)
			if err != nil {
				t.Fatal(err)
			}

			// Ask for a stream the dataset doesn't have.
			result, err := conv.ConvertDataset(context.Background(), testRepoID,
				[]string{"observation.images.missing"}, inputDir, t.TempDir())
			if err != nil {
				t.Fatalf("ConvertDataset() error = %v, want error result instead", err)
			}
			if result.Status != model.StatusError {
				t.Errorf("Status = %q, want %q for a missing stream", result.Status, model.StatusError)
			}
		})
	}
}

func TestDROIDConverter_VerboseMessage(t *testing.T) {
	inputDir := t.TempDir()
	testutil.WriteLeRobotDataset(t, inputDir, testRepoID, testStreams, 1)

	conv := NewDROIDConverter(true)
	result, err := conv.ConvertDataset(context.Background(), testRepoID, testStreams, inputDir, t.TempDir())
	if err != nil {
		t.Fatalf("ConvertDataset() error = %v", err)
	}
	if result.Message == "" {
		t.Error("verbose result has empty message")
	}
}
