// Package repomanager owns the shadow stores: version-control metadata kept
// next to a project, apart from the work tree it tracks.
package repomanager

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
)

// Manager locates, acquires and removes shadow stores.
type Manager struct {
	cfg      *config.Config
	backends core.BackendFactory
	logger   *slog.Logger
}

// New creates a new Manager.
func New(cfg *config.Config, backends core.BackendFactory, logger *slog.Logger) *Manager {
	return &Manager{cfg: cfg, backends: backends, logger: logger}
}

// Location returns where the store of p lives: <parent>/<metadata_dir>/<name>.
func (m *Manager) Location(p core.Project) string {
	return filepath.Join(m.container(p), p.Name)
}

func (m *Manager) container(p core.Project) string {
	return filepath.Join(p.ParentDir(), m.cfg.Git.MetadataDir)
}

// Acquire takes ownership of the store of p. The returned Store must be
// released on every path once Acquire succeeds.
func (m *Manager) Acquire(p core.Project) (*Store, error) {
	gitDir := m.Location(p)
	info, err := os.Stat(gitDir)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrStoreInUse, gitDir)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to inspect shadow store %s: %w", gitDir, err)
	}
	if err := os.MkdirAll(m.container(p), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store container: %w", err)
	}

	m.logger.Debug("shadow store acquired", "project", p.Name, "git_dir", gitDir)
	return &Store{
		manager: m,
		project: p,
		gitDir:  gitDir,
		tree:    m.backends(gitDir, p.ParentDir()),
	}, nil
}

// Remove deletes the store of p and prunes its container when empty. A
// missing store is not an error.
func (m *Manager) Remove(p core.Project) error {
	gitDir := m.Location(p)
	if err := removeAll(gitDir); err != nil {
		return fmt.Errorf("failed to remove shadow store %s: %w", gitDir, err)
	}
	m.pruneContainer(p)
	return nil
}

// Exists reports whether a store for p is present on disk.
func (m *Manager) Exists(p core.Project) bool {
	info, err := os.Stat(m.Location(p))
	return err == nil && info.IsDir()
}

func (m *Manager) pruneContainer(p core.Project) {
	dir := m.container(p)
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return
	}
	if err := os.Remove(dir); err != nil {
		m.logger.Warn("failed to prune store container", "path", dir, "error", err)
	}
}

// removeAll is os.RemoveAll that also clears read-only bits, which git sets
// on pack files and which block removal on some platforms.
func removeAll(path string) error {
	if err := os.RemoveAll(path); err == nil {
		return nil
	}
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mode := info.Mode().Perm() | 0o200
		if d.IsDir() {
			mode |= 0o700
		}
		_ = os.Chmod(p, mode)
		return nil
	})
	return os.RemoveAll(path)
}
