package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerobotlab/lerobotlab/internal/config"
	"github.com/lerobotlab/lerobotlab/internal/download"
	"github.com/lerobotlab/lerobotlab/internal/model"
	"github.com/lerobotlab/lerobotlab/internal/progress"
)

// tempDownloadsDir is the subdirectory of the output path used to stage
// downloads when no input path is supplied. It is removed (best effort)
// after the run.
const tempDownloadsDir = "temp_downloads"

// Downloader produces the input directory contents when the caller did not
// supply one. Satisfied by *download.Manager.
type Downloader interface {
	DownloadSelection(ctx context.Context, sel *model.SelectionDocument, root string) error
}

// Options configures a conversion run.
type Options struct {
	// OutputPath is where converted artifact sets are written. Created
	// (with parents) if absent.
	OutputPath string

	// InputPath is an existing directory of already-downloaded datasets.
	// When empty, datasets are downloaded into a temporary subdirectory of
	// OutputPath first.
	InputPath string

	// Format is the target format name; must pass ValidateFormat.
	Format string

	// Verbose enables per-dataset detail in progress output.
	Verbose bool

	// OnProgress receives progress events. May be nil.
	OnProgress progress.Func

	// Settings configures the download manager when InputPath is empty.
	// Nil means config.DefaultSettings().
	Settings *config.Settings

	// downloader and newConverter are test seams; nil selects the real
	// download manager and converter factory.
	downloader   Downloader
	newConverter func(format string, verbose bool) (Converter, error)
}

// Summary aggregates the outcome of one conversion run.
type Summary struct {
	// DatasetsConverted is the number of datasets that converted cleanly.
	DatasetsConverted int

	// DatasetsFailed is the number of datasets whose converter reported an
	// error status.
	DatasetsFailed int

	// EpisodesConverted is the total episode count across all converted
	// datasets, where reported.
	EpisodesConverted int

	// OutputDir is the resolved output directory.
	OutputDir string
}

// ConvertDatasets converts every dataset in the selection to the requested
// format.
//
// The run proceeds as follows:
//
//  1. Validate the format and the selection document; nothing is created on
//     disk for an unsupported format or a corrupt document.
//  2. Create the output directory (idempotent).
//  3. Resolve the input directory: an explicit InputPath must exist
//     (ErrMissingInput otherwise); with no InputPath, datasets are first
//     downloaded into <output>/temp_downloads.
//  4. Process each dataset in document order. A converter result with any
//     status other than "ok" is reported as a per-dataset failure and does
//     not stop the loop.
//  5. Emit a summary and, if a temporary download directory was created,
//     remove it (best effort).
//
// Structural failures (invalid documents, unreadable paths, converter
// dispatch failures, anything a converter returns as a Go error) abort the
// run and come back wrapped in a single *RunError. Per-dataset failures only
// affect the Summary counts.
func ConvertDatasets(ctx context.Context, sel *model.SelectionDocument, opts Options) (*Summary, error) {
	summary, err := convertDatasets(ctx, sel, opts)
	if err != nil {
		return nil, &RunError{Err: err}
	}
	return summary, nil
}

func convertDatasets(ctx context.Context, sel *model.SelectionDocument, opts Options) (*Summary, error) {
	emit := opts.OnProgress

	// Structural preconditions come first: nothing is created on disk for an
	// unsupported format or a corrupt document.
	format, err := ValidateFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputPath, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	outputDir, err := filepath.Abs(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		emit.Emit(progress.LevelVerbose, "Created output directory: %s", outputDir)
	}

	inputDir, cleanup, err := resolveInputDir(ctx, sel, outputDir, opts)
	if err != nil {
		return nil, err
	}
	if cleanup != nil {
		defer cleanup()
	}

	emit.Emit(progress.LevelInfo, "Converting %d datasets to %s format...", len(sel.Datasets), strings.ToUpper(format))
	if opts.Verbose && sel.Metadata.TotalEpisodes > 0 {
		emit.Emit(progress.LevelVerbose, "Total episodes to convert: %d", sel.Metadata.TotalEpisodes)
	}

	summary := &Summary{OutputDir: outputDir}

	newConverter := opts.newConverter
	if newConverter == nil {
		newConverter = NewConverter
	}

	for i, ds := range sel.Datasets {
		emit.Emit(progress.LevelInfo, "[%d/%d] Converting dataset: %s", i+1, len(sel.Datasets), ds.RepoID)
		if opts.Verbose {
			emit.Emit(progress.LevelVerbose, "Selected videos: %s", strings.Join(ds.SelectedVideos, ", "))
		}

		converter, err := newConverter(format, opts.Verbose)
		if err != nil {
			return nil, err
		}

		result, err := converter.ConvertDataset(ctx, ds.RepoID, ds.SelectedVideos, inputDir, outputDir)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", ds.RepoID, err)
		}

		if !result.OK() {
			summary.DatasetsFailed++
			emit.EmitKind(progress.KindDatasetDone, progress.LevelError, "%s: %s", ds.RepoID, failureMessage(result))
			continue
		}

		summary.DatasetsConverted++
		summary.EpisodesConverted += result.EpisodesConverted
		emit.EmitKind(progress.KindDatasetDone, progress.LevelSuccess, "%s", result.Message)
		if opts.Verbose && result.EpisodesConverted > 0 {
			emit.Emit(progress.LevelVerbose, "Episodes converted: %d", result.EpisodesConverted)
		}
	}

	emit.Emit(progress.LevelInfo, "%d/%d datasets converted to %s format",
		summary.DatasetsConverted, len(sel.Datasets), strings.ToUpper(format))
	emit.Emit(progress.LevelInfo, "Output directory: %s", outputDir)

	return summary, nil
}

// resolveInputDir returns the directory datasets are read from, downloading
// them first when no input path was given. The returned cleanup func (nil
// when nothing was staged) removes the temporary download directory.
func resolveInputDir(ctx context.Context, sel *model.SelectionDocument, outputDir string, opts Options) (string, func(), error) {
	emit := opts.OnProgress

	if opts.InputPath != "" {
		inputDir, err := filepath.Abs(opts.InputPath)
		if err != nil {
			return "", nil, err
		}
		if _, err := os.Stat(inputDir); err != nil {
			return "", nil, fmt.Errorf("%w: %s", ErrMissingInput, opts.InputPath)
		}
		return inputDir, nil, nil
	}

	inputDir := filepath.Join(outputDir, tempDownloadsDir)
	emit.Emit(progress.LevelInfo, "Downloading datasets for conversion...")

	dl := opts.downloader
	if dl == nil {
		settings := opts.Settings
		if settings == nil {
			settings = config.DefaultSettings()
		}
		dl = download.NewManager(settings, opts.OnProgress)
	}

	if err := dl.DownloadSelection(ctx, sel, inputDir); err != nil {
		return "", nil, fmt.Errorf("downloading datasets: %w", err)
	}

	cleanup := func() {
		if opts.Verbose {
			emit.Emit(progress.LevelVerbose, "Cleaning up temporary download files...")
		}
		// Best effort: a leftover staging directory is not a failure.
		if err := os.RemoveAll(inputDir); err != nil {
			emit.Emit(progress.LevelWarning, "Could not remove %s: %v", inputDir, err)
		}
	}

	return inputDir, cleanup, nil
}

// failureMessage renders a non-ok result for reporting. Unknown status
// values are called out explicitly instead of passing silently.
func failureMessage(result *model.ConversionResult) string {
	if result.Status == model.StatusError {
		return result.Message
	}
	return fmt.Sprintf("unexpected converter status %q: %s", result.Status, result.Message)
}
