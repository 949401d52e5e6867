package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Hub settings
	HubEndpoint string `json:"hub_endpoint"`
	HubRevision string `json:"hub_revision"`
	UserAgent   string `json:"user_agent"`

	// Download settings
	MaxConcurrentFileDownloads int     `json:"max_concurrent_files"`
	DownloadMaxRetries         int     `json:"download_max_retries"`
	DownloadRetryCooldown      float64 `json:"download_retry_cooldown"`
	DownloadRetryExponent      float64 `json:"download_retry_exponent"`
	AllowedFileSizeDifference  float64 `json:"allowed_file_size_difference"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		HubEndpoint: "https://huggingface.co",
		HubRevision: "main",
		UserAgent:   "lerobotlab",

		MaxConcurrentFileDownloads: 8,
		DownloadMaxRetries:         5,
		DownloadRetryCooldown:      0.2,
		DownloadRetryExponent:      4.0,
		AllowedFileSizeDifference:  0.05,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
