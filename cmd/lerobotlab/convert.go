package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lerobotlab/lerobotlab/internal/config"
	"github.com/lerobotlab/lerobotlab/internal/convert"
	"github.com/lerobotlab/lerobotlab/internal/model"
	"github.com/lerobotlab/lerobotlab/internal/paths"
	"github.com/lerobotlab/lerobotlab/internal/progress"
)

func runConvert(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	outputPath := fs.String("output-path", "", "Directory to write converted datasets into (required)")
	inputPath := fs.String("input-path", "", "Directory of already-downloaded datasets (downloads first when omitted)")
	format := fs.String("format", "", fmt.Sprintf("Target format: %s (required)", strings.Join(convert.SupportedFormats(), " or ")))
	configPath := fs.String("config", "", "Path to config file")
	verbose := fs.Bool("verbose", false, "Show verbose output")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lerobotlab convert <selection.json> --output-path <dir> --format {%s} [--input-path <dir>] [--verbose]\n",
			strings.Join(convert.SupportedFormats(), "|"))
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() != 1 || *outputPath == "" || *format == "" {
		fs.Usage()
		return ExitInvalidArgs
	}

	// Validate everything before touching the filesystem.
	canonical, err := convert.ValidateFormat(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitInvalidArgs
	}

	sel, err := model.LoadSelection(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	output, err := paths.ValidateOutputPath(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	input := ""
	if *inputPath != "" {
		input, err = paths.ValidateInputPath(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return ExitError
	}

	if estimate, ok := convert.EstimateConversionTime(sel); ok {
		fmt.Printf("Estimated conversion time: %s\n", estimate)
	}

	summary, err := convert.ConvertDatasets(ctx, sel, convert.Options{
		OutputPath: output,
		InputPath:  input,
		Format:     canonical,
		Verbose:    *verbose,
		OnProgress: progress.Printer(os.Stdout, *verbose),
		Settings:   settings,
	})
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Conversion cancelled.")
			return ExitInterrupted
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	if summary.DatasetsFailed > 0 {
		fmt.Printf("\nDone with failures: %d converted, %d failed\n", summary.DatasetsConverted, summary.DatasetsFailed)
		return ExitError
	}

	return ExitSuccess
}
