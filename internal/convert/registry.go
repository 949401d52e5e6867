package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerobotlab/lerobotlab/internal/model"
)

// Supported target format names, in the order they are advertised.
const (
	FormatDROID    = "droid"
	FormatVJEPA2AC = "vjepa2-ac"
)

// Converter performs the actual format transformation for one target format.
//
// ConvertDataset converts a single dataset and reports the outcome as data:
// per-dataset problems (missing dataset directory, no episodes, a selected
// stream absent) come back as a result with model.StatusError, not as a Go
// error. The error return is reserved for structural failures such as an
// unwritable output directory or context cancellation.
type Converter interface {
	ConvertDataset(ctx context.Context, repoID string, selectedVideos []string, inputDir, outputDir string) (*model.ConversionResult, error)
}

// SupportedFormats returns the fixed list of supported target formats.
func SupportedFormats() []string {
	return []string{FormatDROID, FormatVJEPA2AC}
}

// ValidateFormat matches format case-insensitively against the supported
// set and returns the canonical (lowercase) name. Unknown formats fail with
// ErrUnsupportedFormat, listing the valid options.
func ValidateFormat(format string) (string, error) {
	lower := strings.ToLower(format)
	for _, f := range SupportedFormats() {
		if lower == f {
			return lower, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported formats: %s)",
		ErrUnsupportedFormat, format, strings.Join(SupportedFormats(), ", "))
}

// NewConverter returns the converter for a target format.
//
// The format set is closed: exactly one converter exists per supported
// format. ValidateFormat is expected to have run already, but the factory
// re-validates defensively and fails with ErrUnsupportedFormat for anything
// outside the registry.
func NewConverter(format string, verbose bool) (Converter, error) {
	switch strings.ToLower(format) {
	case FormatDROID:
		return NewDROIDConverter(verbose), nil
	case FormatVJEPA2AC:
		return NewVJEPA2ACConverter(verbose), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported formats: %s)",
			ErrUnsupportedFormat, format, strings.Join(SupportedFormats(), ", "))
	}
}
