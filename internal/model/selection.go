package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrMalformedSelection is returned when a selection document (or one of its
// dataset entries) is missing required fields. A malformed entry indicates a
// corrupt document, so loading fails as a whole rather than per entry.
var ErrMalformedSelection = errors.New("malformed selection document")

// SelectionDocument is a user-authored manifest naming which datasets to
// process and which video streams within each dataset to keep.
//
// The document is loaded once from JSON and never mutated afterwards.
// A minimal document looks like:
//
//	{
//	  "metadata": {
//	    "saved_at": "2025-08-02T23:46:33.501Z",
//	    "total_datasets": 1,
//	    "total_episodes": 3,
//	    "total_frames": 1997
//	  },
//	  "datasets": [
//	    {
//	      "repo_id": "marioblz/eval_act_so101_test14",
//	      "selected_videos": ["observation.images.webcam1"]
//	    }
//	  ]
//	}
//
// Only the datasets array is required; metadata and all of its fields are
// optional and used for reporting and time estimation.
type SelectionDocument struct {
	// Metadata holds optional aggregate counts saved by the selection tool.
	Metadata Metadata `json:"metadata"`

	// Datasets lists the datasets to process, in processing order.
	Datasets []DatasetSelection `json:"datasets"`
}

// Metadata carries optional aggregate information about a selection.
// Zero values mean the field was absent from the document.
type Metadata struct {
	// SavedAt is when the selection was authored (RFC 3339 string, kept
	// verbatim since it is only ever displayed).
	SavedAt string `json:"saved_at,omitempty"`

	// TotalDatasets is the number of datasets in the selection.
	TotalDatasets int `json:"total_datasets,omitempty"`

	// TotalEpisodes is the number of episodes across all datasets.
	TotalEpisodes int `json:"total_episodes,omitempty"`

	// TotalFrames is the number of frames across all datasets,
	// used by convert.EstimateConversionTime.
	TotalFrames int64 `json:"total_frames,omitempty"`
}

// DatasetSelection names one dataset and the video streams to keep from it.
type DatasetSelection struct {
	// RepoID is the Hugging Face Hub dataset identifier, e.g.
	// "lerobot/pusht" or "marioblz/eval_act_so101_test14".
	RepoID string `json:"repo_id"`

	// SelectedVideos lists the video stream keys to convert, in order,
	// e.g. "observation.images.webcam1". Must be non-empty.
	SelectedVideos []string `json:"selected_videos"`
}

// LoadSelection reads and validates a selection document from a JSON file.
//
// Returns an error wrapping ErrMalformedSelection if the document has no
// datasets array or any entry fails Validate.
func LoadSelection(path string) (*SelectionDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selection file: %w", err)
	}
	return ParseSelection(data)
}

// ParseSelection decodes and validates a selection document from JSON bytes.
func ParseSelection(data []byte) (*SelectionDocument, error) {
	var doc SelectionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSelection, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the structural invariants of the document: a non-empty
// datasets array whose entries all pass DatasetSelection.Validate.
func (d *SelectionDocument) Validate() error {
	if len(d.Datasets) == 0 {
		return fmt.Errorf("%w: no datasets", ErrMalformedSelection)
	}
	for i, ds := range d.Datasets {
		if err := ds.Validate(); err != nil {
			return fmt.Errorf("dataset %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks that the entry carries both required fields.
func (s *DatasetSelection) Validate() error {
	if s.RepoID == "" {
		return fmt.Errorf("%w: missing repo_id", ErrMalformedSelection)
	}
	if len(s.SelectedVideos) == 0 {
		return fmt.Errorf("%w: missing selected_videos for %s", ErrMalformedSelection, s.RepoID)
	}
	return nil
}

// LocalDir returns the on-disk directory for this dataset under root.
//
// Repo IDs have the form "org/name"; each component is sanitized and kept as
// a separate path element, so "lerobot/pusht" under "/data" becomes
// "/data/lerobot/pusht".
func (s *DatasetSelection) LocalDir(root string) string {
	parts := strings.Split(s.RepoID, "/")
	elems := make([]string, 0, len(parts)+1)
	elems = append(elems, root)
	for _, p := range parts {
		elems = append(elems, sanitizePathComponent(p))
	}
	return filepath.Join(elems...)
}

// sanitizePathComponent removes characters that are invalid in file or folder
// names so repo IDs map cleanly onto the filesystem.
func sanitizePathComponent(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
