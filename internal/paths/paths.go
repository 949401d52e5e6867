// Package paths validates input and output directories before any
// conversion or download work begins.
//
// Both validators are read-only: they normalize the path and check
// existence, type, and permissions, but never create directories.
// Directory creation is the orchestrator's job.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrInvalidPath is returned when a path is missing, is the wrong type,
// or lacks the required permissions.
var ErrInvalidPath = errors.New("invalid path")

// ValidateOutputPath checks that path's parent directory exists and is
// writable, returning the cleaned absolute path. The target itself does not
// need to exist yet; it is created later by the orchestrator.
func ValidateOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	parent := filepath.Dir(abs)
	info, err := os.Stat(parent)
	if err != nil {
		return "", fmt.Errorf("%w: parent directory does not exist: %s", ErrInvalidPath, parent)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: parent is not a directory: %s", ErrInvalidPath, parent)
	}
	if err := unix.Access(parent, unix.W_OK); err != nil {
		return "", fmt.Errorf("%w: no write permission for directory: %s", ErrInvalidPath, parent)
	}

	return abs, nil
}

// ValidateInputPath checks that path exists, is a directory, and is
// readable, returning the cleaned absolute path.
func ValidateInputPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: input directory does not exist: %s", ErrInvalidPath, abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: input path is not a directory: %s", ErrInvalidPath, abs)
	}
	if err := unix.Access(abs, unix.R_OK); err != nil {
		return "", fmt.Errorf("%w: no read permission for directory: %s", ErrInvalidPath, abs)
	}

	return abs, nil
}
