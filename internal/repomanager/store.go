package repomanager

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/gitutil"
)

// ScopeOptions identifies the remotes and commit identity of a store.
type ScopeOptions struct {
	ForkURL     string
	UpstreamURL string
	User        core.User
}

// Store is an acquired shadow store for one project.
type Store struct {
	manager *Manager
	project core.Project
	gitDir  string

	// tree works on the real parent directory.
	tree core.RepositoryBackend
	// scratch is an empty work tree used for the first checkout of a fresh
	// clone, so it cannot overwrite the user's files.
	scratch  string
	checkout core.RepositoryBackend

	reused   bool
	released bool
}

func (s *Store) GitDir() string { return s.gitDir }

// Tree is the backend bound to the project's parent directory.
func (s *Store) Tree() core.RepositoryBackend { return s.tree }

// Checkout is the backend for branch switching. For a fresh clone it works
// on the scratch tree, otherwise on the real tree.
func (s *Store) Checkout() core.RepositoryBackend {
	if s.checkout != nil {
		return s.checkout
	}
	return s.tree
}

// Reused reports whether Scope found a usable store from an earlier run.
func (s *Store) Reused() bool { return s.reused }

// Scope makes the store track the fork, restricted to the project subtree.
// A leftover store whose origin is the fork and whose project branch was
// checked out is reused; anything else is replaced by a fresh filtered clone.
func (s *Store) Scope(ctx context.Context, opts ScopeOptions) error {
	if s.released {
		return ErrReleased
	}
	logger := s.manager.logger
	cfg := s.manager.cfg

	origin, err := s.tree.RemoteURL(ctx, "origin")
	if err != nil {
		logger.WarnContext(ctx, "could not read the store's origin, cloning again", "error", err)
	}
	switch {
	case origin != "" && gitutil.SameRepository(origin, opts.ForkURL):
		err := s.reuse(ctx, opts)
		if err == nil {
			s.reused = true
			logger.InfoContext(ctx, "reusing shadow store", "git_dir", s.gitDir)
			return nil
		}
		logger.InfoContext(ctx, "leftover shadow store is incomplete, replacing it", "reason", err)
	case origin != "":
		logger.InfoContext(ctx, "shadow store tracks another repository, replacing it", "origin", origin)
	}
	if err := removeAll(s.gitDir); err != nil {
		return fmt.Errorf("failed to clear stale shadow store: %w", err)
	}

	scratch, err := os.MkdirTemp("", "accel-pr-scratch-*")
	if err != nil {
		return fmt.Errorf("failed to create scratch tree: %w", err)
	}
	s.scratch = scratch
	s.checkout = s.manager.backends(s.gitDir, scratch)

	err = s.checkout.Clone(ctx, core.CloneOptions{
		URL:            opts.ForkURL,
		Into:           scratch,
		SeparateGitDir: s.gitDir,
		Depth:          cfg.Git.CloneDepth,
		Filter:         cfg.Git.CloneFilter,
		NoCheckout:     true,
		NoSingleBranch: true,
	})
	if err != nil {
		return err
	}
	if err := s.checkout.AddRemote(ctx, "upstream", cfg.GitHub.MainBranch, opts.UpstreamURL); err != nil {
		return fmt.Errorf("failed to add upstream remote: %w", err)
	}
	if err := s.configure(ctx, s.checkout, opts.User); err != nil {
		return err
	}
	if err := s.checkout.SparseCheckoutSet(ctx, s.sparseRules()); err != nil {
		return fmt.Errorf("failed to scope the store to %s: %w", s.project.Name, err)
	}
	return nil
}

// reuse validates a leftover store on the real tree. A store without the
// project branch never finished its scratch checkout, so switching on the
// real tree could spill the whole repository into the parent directory.
// The upstream remote and sparse rules are applied again since a crash may
// have stopped the clone before they were written.
func (s *Store) reuse(ctx context.Context, opts ScopeOptions) error {
	cfg := s.manager.cfg
	local, err := s.tree.BranchExistsLocal(ctx, s.project.BranchRef())
	if err != nil {
		return fmt.Errorf("failed to look up branch %s: %w", s.project.Name, err)
	}
	if !local {
		return fmt.Errorf("branch %s was never checked out", s.project.Name)
	}

	if err := s.tree.GC(ctx); err != nil {
		s.manager.logger.WarnContext(ctx, "store maintenance failed", "error", err)
	}
	if err := s.tree.AddRemote(ctx, "upstream", cfg.GitHub.MainBranch, opts.UpstreamURL); err != nil {
		return fmt.Errorf("failed to add upstream remote: %w", err)
	}
	if err := s.configure(ctx, s.tree, opts.User); err != nil {
		return err
	}
	if err := s.tree.SparseCheckoutSet(ctx, s.sparseRules()); err != nil {
		return fmt.Errorf("failed to scope the store to %s: %w", s.project.Name, err)
	}
	return nil
}

// sparseRules keep every top-level entry out except the project directory.
func (s *Store) sparseRules() []string {
	return []string{"!/*", "/" + s.project.Name + "/"}
}

func (s *Store) configure(ctx context.Context, b core.RepositoryBackend, user core.User) error {
	settings := [][2]string{
		{"advice.updateSparsePath", "false"},
		{"core.safecrlf", "false"},
		{"gc.auto", "0"},
		{"maintenance.auto", "false"},
		{"user.email", user.Email},
		{"user.name", user.Login},
	}
	for _, kv := range settings {
		if err := b.ConfigSet(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to set %s: %w", kv[0], err)
		}
	}
	return nil
}

// CloseScratch drops the scratch tree once the branch is checked out.
// Later steps run against the real tree.
func (s *Store) CloseScratch() error {
	if s.scratch == "" {
		return nil
	}
	err := removeAll(s.scratch)
	s.scratch = ""
	s.checkout = nil
	return err
}

// Release removes the store, the scratch tree and, when empty, the store
// container. It is safe to call more than once.
func (s *Store) Release() error {
	if s.released {
		return nil
	}
	s.released = true

	errs := []error{s.CloseScratch()}
	if err := s.manager.Remove(s.project); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.manager.logger.Debug("shadow store released", "git_dir", s.gitDir)
	return nil
}
