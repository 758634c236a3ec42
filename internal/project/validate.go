package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
)

var (
	ErrMissingItems    = errors.New("items are missing from the project root")
	ErrNotAllowedItems = errors.New("items are not allowed in the project root")
)

// Validator checks the entries directly under a project root against a
// structure policy. It never touches the network or version control.
type Validator struct {
	fs     afero.Fs
	policy *config.StructurePolicy
}

// NewValidator returns a Validator. A nil fsys means the OS filesystem and a
// nil policy means the embedded default.
func NewValidator(fsys afero.Fs, policy *config.StructurePolicy) *Validator {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if policy == nil {
		policy = config.DefaultStructurePolicy()
	}
	return &Validator{fs: fsys, policy: policy}
}

// Validate fails with ErrMissingItems when a required entry is absent, and
// with ErrNotAllowedItems when an entry matches neither a required name nor
// an allowed name or glob.
func (v *Validator) Validate(p core.Project) error {
	entries, err := afero.ReadDir(v.fs, p.RootPath)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", p.RootPath, err)
	}
	present := make([]string, 0, len(entries))
	for _, e := range entries {
		present = append(present, e.Name())
	}

	required := v.policy.RequiredFor(p.Name)
	var missing []string
	for _, r := range required {
		if !slices.Contains(present, r) {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingItems, strings.Join(missing, ", "))
	}

	var extra []string
	for _, name := range present {
		if slices.Contains(required, name) || v.allowed(name) {
			continue
		}
		extra = append(extra, name)
	}
	if len(extra) > 0 {
		return fmt.Errorf("%w: %s; allowed items are %s", ErrNotAllowedItems,
			strings.Join(extra, ", "), strings.Join(append(required, v.policy.Allowed...), ", "))
	}
	return nil
}

func (v *Validator) allowed(name string) bool {
	for _, pattern := range v.policy.Allowed {
		if pattern == name {
			return true
		}
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
