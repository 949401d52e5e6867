// Package config provides configuration management for lerobotlab.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Hugging Face Hub endpoint, 8 concurrent file downloads,
//	// 5 retries with exponential cooldown
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Hub endpoint, revision, and User-Agent
//   - Concurrent file download limits
//   - Retry behavior
//   - Size tolerance for skipping already-downloaded files
package config
