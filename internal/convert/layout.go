package convert

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// episode is one recorded trajectory discovered in a LeRobot dataset
// directory: its tabular data file plus the video file of each stream that
// was both selected and present on disk.
type episode struct {
	// name is the episode stem, e.g. "episode_000000".
	name string

	// dataFile is the absolute path of the episode's parquet file.
	dataFile string

	// videos maps stream key -> absolute video file path.
	videos map[string]string
}

// discoverEpisodes scans a local LeRobot v2 dataset directory and returns
// its episodes in name order.
//
// The expected layout is:
//
//	data/chunk-XXX/episode_XXXXXX.parquet
//	videos/chunk-XXX/<stream>/episode_XXXXXX.mp4
//	meta/info.json
//
// Episodes are keyed by the parquet files; a selected stream with no video
// file for an episode simply leaves that stream out of the episode's video
// map (the converter decides how to report it).
func discoverEpisodes(datasetDir string, selectedVideos []string) ([]episode, error) {
	dataFiles, err := filepath.Glob(filepath.Join(datasetDir, "data", "chunk-*", "episode_*.parquet"))
	if err != nil {
		return nil, err
	}
	if len(dataFiles) == 0 {
		return nil, fmt.Errorf("no episode data found under %s", datasetDir)
	}

	episodes := make([]episode, 0, len(dataFiles))
	for _, dataFile := range dataFiles {
		name := strings.TrimSuffix(filepath.Base(dataFile), filepath.Ext(dataFile))

		ep := episode{
			name:     name,
			dataFile: dataFile,
			videos:   make(map[string]string, len(selectedVideos)),
		}

		for _, stream := range selectedVideos {
			matches, err := filepath.Glob(filepath.Join(datasetDir, "videos", "chunk-*", stream, name+".mp4"))
			if err != nil {
				return nil, err
			}
			if len(matches) > 0 {
				ep.videos[stream] = matches[0]
			}
		}

		episodes = append(episodes, ep)
	}

	// Glob returns sorted paths per chunk, but episodes can span chunks.
	sort.Slice(episodes, func(i, j int) bool { return episodes[i].name < episodes[j].name })

	return episodes, nil
}

// datasetDirName flattens a repo ID into a single directory name for the
// converted artifact set, e.g. "lerobot/pusht" -> "lerobot_pusht".
func datasetDirName(repoID string) string {
	return strings.ReplaceAll(repoID, "/", "_")
}
