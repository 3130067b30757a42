// Package paths normalizes user-supplied paths the way run
// configuration expects: environment variables and ~ expanded, result
// always absolute.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Full expands environment variables and a leading ~ in path and
// returns its absolute form. An empty path is an error.
func Full(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path must not be empty")
	}

	expanded := os.ExpandEnv(path)
	if expanded == "~" || strings.HasPrefix(expanded, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory for '%s': %w", path, err)
		}
		expanded = filepath.Join(home, expanded[1:])
	}

	absolute, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to absolutize '%s': %w", path, err)
	}
	return absolute, nil
}

// Ensure normalizes path like [Full] and creates the directory if it
// does not exist yet.
func Ensure(path string) (string, error) {
	full, err := Full(path)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(full, 0755); err != nil {
		return "", fmt.Errorf("failed to create '%s': %w", full, err)
	}
	return full, nil
}
