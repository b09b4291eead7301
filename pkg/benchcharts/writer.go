package benchcharts

import (
	"os"
	"path/filepath"
)

// WriteResult creates every missing ancestor directory of path and writes
// content to it, replacing any existing file.
func WriteResult(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Op: "mkdir", Err: err}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	return nil
}

// WriteResultAsync runs WriteResult in the background. The returned channel
// receives exactly one value, nil on success.
func WriteResultAsync(path, content string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- WriteResult(path, content)
	}()
	return done
}
