package convert

import (
	"fmt"

	"github.com/lerobotlab/lerobotlab/internal/model"
)

// framesPerSecond is the assumed conversion throughput used for time
// estimates.
const framesPerSecond = 1000.0

// EstimateConversionTime produces a human-readable duration estimate for a
// selection based on its total frame count, assuming a fixed throughput of
// 1000 frames per second.
//
// The estimate is bucketed:
//
//	< 60 seconds   -> "~N seconds"
//	< 1 hour       -> "~N.N minutes"
//	otherwise      -> "~N.N hours"
//
// The second return value is false when the selection's metadata carries no
// frame count. The function is pure: identical input yields identical
// output.
func EstimateConversionTime(sel *model.SelectionDocument) (string, bool) {
	totalFrames := sel.Metadata.TotalFrames
	if totalFrames <= 0 {
		return "", false
	}

	seconds := float64(totalFrames) / framesPerSecond

	switch {
	case seconds < 60:
		return fmt.Sprintf("~%.0f seconds", seconds), true
	case seconds < 3600:
		return fmt.Sprintf("~%.1f minutes", seconds/60), true
	default:
		return fmt.Sprintf("~%.1f hours", seconds/3600), true
	}
}
