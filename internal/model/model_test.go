package model

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseSelection(t *testing.T) {
	doc := `{
		"metadata": {"total_episodes": 3, "total_frames": 1997},
		"datasets": [
			{"repo_id": "a/b", "selected_videos": ["observation.images.webcam1"]}
		]
	}`

	sel, err := ParseSelection([]byte(doc))
	if err != nil {
		t.Fatalf("ParseSelection() error = %v", err)
	}

	if len(sel.Datasets) != 1 {
		t.Fatalf("len(Datasets) = %d, want 1", len(sel.Datasets))
	}
	if sel.Datasets[0].RepoID != "a/b" {
		t.Errorf("RepoID = %q, want %q", sel.Datasets[0].RepoID, "a/b")
	}
	if sel.Metadata.TotalFrames != 1997 {
		t.Errorf("TotalFrames = %d, want 1997", sel.Metadata.TotalFrames)
	}
}

func TestParseSelection_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid JSON", `{`},
		{"no datasets", `{"datasets": []}`},
		{"missing datasets key", `{"metadata": {}}`},
		{"missing repo_id", `{"datasets": [{"selected_videos": ["x"]}]}`},
		{"missing selected_videos", `{"datasets": [{"repo_id": "a/b"}]}`},
		{"empty selected_videos", `{"datasets": [{"repo_id": "a/b", "selected_videos": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSelection([]byte(tt.doc))
			if !errors.Is(err, ErrMalformedSelection) {
				t.Errorf("ParseSelection() error = %v, want ErrMalformedSelection", err)
			}
		})
	}
}

func TestParseSelection_MetadataOptional(t *testing.T) {
	sel, err := ParseSelection([]byte(`{"datasets": [{"repo_id": "a/b", "selected_videos": ["x"]}]}`))
	if err != nil {
		t.Fatalf("ParseSelection() error = %v", err)
	}
	if sel.Metadata.TotalFrames != 0 {
		t.Errorf("TotalFrames = %d, want 0 for absent metadata", sel.Metadata.TotalFrames)
	}
}

func TestDatasetSelection_LocalDir(t *testing.T) {
	tests := []struct {
		repoID string
		want   string
	}{
		{"lerobot/pusht", filepath.Join("/data", "lerobot", "pusht")},
		{"marioblz/eval_act_so101_test14", filepath.Join("/data", "marioblz", "eval_act_so101_test14")},
		{"weird:name/with|chars", filepath.Join("/data", "weird_name", "with_chars")},
	}

	for _, tt := range tests {
		t.Run(tt.repoID, func(t *testing.T) {
			ds := DatasetSelection{RepoID: tt.repoID, SelectedVideos: []string{"x"}}
			if got := ds.LocalDir("/data"); got != tt.want {
				t.Errorf("LocalDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConversionResult_OK(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusOK, true},
		{StatusError, false},
		{"okay", false}, // typo'd statuses must not pass as success
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			r := ConversionResult{Status: tt.status}
			if got := r.OK(); got != tt.want {
				t.Errorf("OK() = %v, want %v", got, tt.want)
			}
		})
	}
}
