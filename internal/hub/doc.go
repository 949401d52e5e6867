// Package hub provides an HTTP client for the Hugging Face Hub datasets API.
//
// The Client in this package handles:
//   - Recursive repository tree listings
//   - Raw file downloads streamed to disk with progress tracking
//   - File size retrieval via HEAD requests
//
// # Basic Usage
//
//	client := hub.NewClient("https://huggingface.co", "main", "lerobotlab")
//
//	// List all files in a dataset repository
//	entries, err := client.ListTree(ctx, "lerobot/pusht")
//
//	// Download one file with a progress callback
//	client.DownloadFile(ctx, "lerobot/pusht", "meta/info.json", dest,
//	    func(written, total int64) { /* update UI */ })
//
// The client is deliberately unauthenticated: LeRobot datasets are public.
package hub
