// Package download provides the download orchestration logic for fetching
// LeRobot datasets from the Hugging Face Hub.
//
// # Manager
//
// The Manager coordinates the download process for a selection document:
//
//  1. List each dataset repository's file tree
//  2. Filter to meta/, data/, and the selected video streams
//  3. Download files concurrently within each dataset
//  4. Skip files that already exist locally with a matching size
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event progress.Event) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.DownloadSelection(ctx, sel, "/data/lerobot")
//
// # Concurrency
//
// Datasets are fetched one at a time, in selection-document order, so the
// reported progress matches the document. Files within a dataset are fetched
// in parallel up to settings.MaxConcurrentFileDownloads.
//
// # Retry Logic
//
// Failed file downloads are retried with exponential cooldown, configurable
// via settings.DownloadMaxRetries and settings.DownloadRetryCooldown. A
// dataset whose download ultimately fails is reported and skipped; later
// datasets are still processed.
package download
