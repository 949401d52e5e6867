package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lerobotlab/lerobotlab/internal/config"
	"github.com/lerobotlab/lerobotlab/internal/download"
	"github.com/lerobotlab/lerobotlab/internal/model"
	"github.com/lerobotlab/lerobotlab/internal/paths"
	"github.com/lerobotlab/lerobotlab/internal/progress"
)

func runDownload(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	downloadPath := fs.String("download-path", "", "Directory to download datasets into (required)")
	configPath := fs.String("config", "", "Path to config file")
	verbose := fs.Bool("verbose", false, "Show verbose output")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lerobotlab download <selection.json> --download-path <dir> [--verbose]")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() != 1 || *downloadPath == "" {
		fs.Usage()
		return ExitInvalidArgs
	}

	sel, err := model.LoadSelection(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	root, err := paths.ValidateOutputPath(*downloadPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return ExitError
	}

	manager := download.NewManager(settings, progress.Printer(os.Stdout, *verbose))

	fmt.Printf("Downloading %d datasets to %s\n\n", len(sel.Datasets), root)

	if err := manager.DownloadSelection(ctx, sel, root); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Download cancelled.")
			return ExitInterrupted
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		return ExitError
	}

	received, files, totalFiles := manager.Progress()
	fmt.Printf("\nDownloaded %d/%d files (%.2f MB)\n", files, totalFiles, float64(received)/1024/1024)
	return ExitSuccess
}
