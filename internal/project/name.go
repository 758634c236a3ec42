// Package project resolves and checks the project subtree being submitted:
// its identity, its root structure and its metadata.json.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/sevigo/accelerator-pr/internal/core"
)

var (
	ErrInvalidName = errors.New("project name is not CamelCase")
	ErrEmptyPath   = errors.New("project path is empty")
)

// One or more words, each an upper-case letter followed by lower-case letters.
var nameRegexp = regexp.MustCompile(`^(?:[A-Z][a-z]*)+$`)

// ValidName reports whether name can be used as a project and branch name.
func ValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

// Resolve builds the project identity from a root path and an optional name.
// When name is empty the leaf directory name is used.
func Resolve(path, name string) (core.Project, error) {
	if path == "" {
		return core.Project{}, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return core.Project{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if name == "" {
		name = filepath.Base(abs)
	}
	if !ValidName(name) {
		return core.Project{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return core.Project{Name: name, RootPath: abs}, nil
}
