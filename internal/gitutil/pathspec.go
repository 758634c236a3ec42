package gitutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// WithPathspecFile writes paths NUL-separated to a temporary file, calls fn
// with its name and removes the file on every return path. Long path lists
// go through a file because argv is limited.
func WithPathspecFile(paths []string, fn func(name string) error) (err error) {
	f, err := os.CreateTemp("", "accel-pr-pathspec-*")
	if err != nil {
		return fmt.Errorf("failed to create pathspec file: %w", err)
	}
	name := f.Name()
	defer func() {
		if rmErr := os.Remove(name); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = errors.Join(err, fmt.Errorf("failed to remove pathspec file: %w", rmErr))
		}
	}()

	_, writeErr := f.WriteString(strings.Join(paths, "\x00"))
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		return fmt.Errorf("failed to write pathspec file %s: %w", name, errors.Join(writeErr, closeErr))
	}
	return fn(name)
}
