package testdb

import (
	"fmt"
	"os"
	"path/filepath"
)

// findProjectRoot locates the project root directory by traversing upwards
// from the current working directory until it finds a go.mod file. Tests run
// with their package directory as the working directory, so this resolves
// the same root regardless of which package triggered the migration.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("failed to find project root: no go.mod found above %s", dir)
		}
		dir = parent
	}
}
