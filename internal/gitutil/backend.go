// Package gitutil implements the repository backend over the git CLI, with the
// metadata store kept apart from the work tree it tracks.
package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/oauth2"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
)

// Client creates backends sharing one git binary and one set of credentials.
type Client struct {
	binary string
	host   string
	tokens oauth2.TokenSource
	logger *slog.Logger
}

// NewClient returns a new Client instance. A nil token source leaves
// authentication to the user's git credential helper.
func NewClient(cfg *config.Config, tokens oauth2.TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	binary := cfg.Git.Binary
	if binary == "" {
		binary = "git"
	}
	return &Client{binary: binary, host: cfg.GitHub.Host, tokens: tokens, logger: logger}
}

// Backend binds git to a metadata store and a work tree. It satisfies
// core.BackendFactory.
func (c *Client) Backend(gitDir, workTree string) core.RepositoryBackend {
	return &Backend{client: c, gitDir: gitDir, workTree: workTree}
}

// Backend is a core.RepositoryBackend over the git CLI.
type Backend struct {
	client   *Client
	gitDir   string
	workTree string
}

var _ core.RepositoryBackend = (*Backend)(nil)

// GitDir is the metadata store the backend is bound to.
func (b *Backend) GitDir() string { return b.gitDir }

// WorkTree is the directory git treats as the checkout.
func (b *Backend) WorkTree() string { return b.workTree }

// Version returns the raw version of the git binary with the "git version"
// prefix removed, e.g. "2.43.0.windows.1" or "2.50.1 (Apple Git-155)".
func (b *Backend) Version(ctx context.Context) (string, error) {
	res, err := b.run(ctx, runOpts{unscoped: true}, "version")
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(res.Stdout)
	return strings.TrimSpace(strings.TrimPrefix(out, "git version")), nil
}

// SelfUpdate runs Git for Windows' updater.
func (b *Backend) SelfUpdate(ctx context.Context) error {
	if runtime.GOOS != "windows" {
		return ErrSelfUpdateUnsupported
	}
	_, err := b.run(ctx, runOpts{unscoped: true, network: true}, "update-git-for-windows")
	return err
}

// Clone creates the metadata store at opts.SeparateGitDir. The work tree
// given in opts.Into only receives a gitfile.
func (b *Backend) Clone(ctx context.Context, opts core.CloneOptions) error {
	args := []string{"clone"}
	if opts.NoCheckout {
		args = append(args, "--no-checkout")
	}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.NoSingleBranch {
		args = append(args, "--no-single-branch")
	}
	if opts.Filter != "" {
		args = append(args, "--filter="+opts.Filter)
	}
	if opts.SeparateGitDir != "" {
		args = append(args, "--separate-git-dir="+opts.SeparateGitDir)
	}
	args = append(args, opts.URL, opts.Into)

	b.client.logger.InfoContext(ctx, "cloning repository", "url", opts.URL, "git_dir", opts.SeparateGitDir)
	if _, err := b.run(ctx, runOpts{unscoped: true, network: true}, args...); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}
	return nil
}

// RemoteURL reads the first URL of a remote from the store's config. A
// missing store or remote yields an empty URL.
func (b *Backend) RemoteURL(_ context.Context, name string) (string, error) {
	return readRemoteURL(b.gitDir, name)
}

// AddRemote adds a remote fetching only trackedBranch. A remote that already
// exists is pointed at url and trackedBranch instead.
func (b *Backend) AddRemote(ctx context.Context, name, trackedBranch, url string) error {
	existing, err := readRemoteURL(b.gitDir, name)
	if err != nil {
		return err
	}
	if existing != "" {
		if _, err := b.run(ctx, runOpts{}, "remote", "set-url", name, url); err != nil {
			return err
		}
		if trackedBranch == "" {
			return nil
		}
		_, err := b.run(ctx, runOpts{}, "remote", "set-branches", name, trackedBranch)
		return err
	}

	args := []string{"remote", "add"}
	if trackedBranch != "" {
		args = append(args, "-t", trackedBranch)
	}
	args = append(args, name, url)
	_, err = b.run(ctx, runOpts{}, args...)
	return err
}

// ConfigSet writes key to the store's local config.
func (b *Backend) ConfigSet(ctx context.Context, key, value string) error {
	_, err := b.run(ctx, runOpts{}, "config", key, value)
	return err
}

// SparseCheckoutSet applies non-cone sparse rules.
func (b *Backend) SparseCheckoutSet(ctx context.Context, rules []string) error {
	args := append([]string{"sparse-checkout", "set", "--no-cone"}, rules...)
	_, err := b.run(ctx, runOpts{network: true}, args...)
	return err
}

// Switch checks out branch, creating it from createFrom when that is set.
func (b *Backend) Switch(ctx context.Context, branch, createFrom string) error {
	args := []string{"switch"}
	if createFrom != "" {
		args = append(args, "-c", branch, createFrom)
	} else {
		args = append(args, branch)
	}
	if _, err := b.run(ctx, runOpts{network: true}, args...); err != nil {
		return fmt.Errorf("git switch failed: %w", err)
	}
	return nil
}

// BranchExistsRemote never fails: exit code 2 from ls-remote means the ref is
// absent and any other failure is Ambiguous.
func (b *Backend) BranchExistsRemote(ctx context.Context, remote, ref string) core.Probe {
	_, err := b.run(ctx, runOpts{network: true}, "ls-remote", "--exit-code", "--quiet", remote, ref)
	switch {
	case err == nil:
		return core.Found
	case ExitCodeOf(err) == 2:
		return core.NotFound
	default:
		b.client.logger.DebugContext(ctx, "remote ref probe failed", "ref", ref, "error", err)
		return core.Ambiguous
	}
}

// BranchExistsLocal uses show-ref --exists, which needs git 2.43.
func (b *Backend) BranchExistsLocal(ctx context.Context, ref string) (bool, error) {
	_, err := b.run(ctx, runOpts{}, "show-ref", "--exists", ref)
	switch {
	case err == nil:
		return true, nil
	case ExitCodeOf(err) == 2:
		return false, nil
	default:
		return false, err
	}
}

func (b *Backend) Fetch(ctx context.Context, remote, branch string) error {
	if _, err := b.run(ctx, runOpts{network: true}, "fetch", remote, branch); err != nil {
		return fmt.Errorf("git fetch failed: %w", err)
	}
	return nil
}

func (b *Backend) PullFastForward(ctx context.Context, remote, branch string) error {
	if _, err := b.run(ctx, runOpts{network: true}, "pull", "--ff-only", remote, branch); err != nil {
		return fmt.Errorf("git pull failed: %w", err)
	}
	return nil
}

// RevListCount counts commits reachable from include but from none of exclude.
func (b *Backend) RevListCount(ctx context.Context, include string, exclude ...string) (int, error) {
	args := []string{"rev-list", "--count", include}
	for _, e := range exclude {
		args = append(args, "^"+e)
	}
	res, err := b.run(ctx, runOpts{}, args...)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(res.Stdout))
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", res.Stdout, err)
	}
	return n, nil
}

// DiffNames lists changed paths relative to the work tree. An empty filter
// lists every change.
func (b *Backend) DiffNames(ctx context.Context, filter string, pathspec []string) ([]string, error) {
	args := []string{"diff", "--name-only"}
	if filter != "" {
		args = append(args, "--diff-filter="+filter)
	}
	args = append(args, "--relative", "--")
	args = append(args, pathspec...)
	res, err := b.run(ctx, runOpts{}, args...)
	if err != nil {
		return nil, err
	}
	return lines(res.Stdout), nil
}

// Remove stages the removal of the NUL-separated paths in pathspecFile.
func (b *Backend) Remove(ctx context.Context, pathspecFile string) error {
	_, err := b.run(ctx, runOpts{}, "rm", "--quiet", "--pathspec-from-file="+pathspecFile, "--pathspec-file-nul")
	return err
}

// Add stages the NUL-separated paths in pathspecFile.
func (b *Backend) Add(ctx context.Context, pathspecFile string) error {
	_, err := b.run(ctx, runOpts{}, "add", "--pathspec-from-file="+pathspecFile, "--pathspec-file-nul")
	return err
}

func (b *Backend) AddIntentToAdd(ctx context.Context, pathspec []string) error {
	args := append([]string{"add", "--intent-to-add", "--"}, pathspec...)
	_, err := b.run(ctx, runOpts{}, args...)
	return err
}

func (b *Backend) Commit(ctx context.Context, message string) error {
	if _, err := b.run(ctx, runOpts{}, "commit", "--no-verify", "-m", message); err != nil {
		return fmt.Errorf("git commit failed: %w", err)
	}
	return nil
}

// Push pushes branch and sets upstream tracking.
func (b *Backend) Push(ctx context.Context, remote, branch string) error {
	if _, err := b.run(ctx, runOpts{network: true}, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("git push failed: %w", err)
	}
	return nil
}

// StashPush stashes tracked and untracked edits under pathspec. Having
// nothing to stash is not an error.
func (b *Backend) StashPush(ctx context.Context, message string, pathspec []string) error {
	args := append([]string{"stash", "push", "--include-untracked", "-m", message, "--"}, pathspec...)
	_, err := b.run(ctx, runOpts{}, args...)
	return err
}

// StashFind looks a stash entry up by the message it was pushed with.
func (b *Backend) StashFind(ctx context.Context, message string) (string, bool, error) {
	res, err := b.run(ctx, runOpts{}, "stash", "list", "--format=%gd%x09%gs")
	if err != nil {
		return "", false, err
	}
	for _, l := range lines(res.Stdout) {
		ref, subject, ok := strings.Cut(l, "\t")
		if !ok {
			continue
		}
		if subject == message || strings.HasSuffix(subject, ": "+message) {
			return ref, true, nil
		}
	}
	return "", false, nil
}

func (b *Backend) StashApply(ctx context.Context, ref string) error {
	_, err := b.run(ctx, runOpts{}, "stash", "apply", ref)
	return err
}

// StashExport writes the stash entry as a patch to dest.
func (b *Backend) StashExport(ctx context.Context, ref, dest string) error {
	res, err := b.run(ctx, runOpts{}, "stash", "show", "-p", "--include-untracked", ref)
	if err != nil {
		return err
	}
	if res.Stdout == "" {
		return fmt.Errorf("stash %s has no changes to export", ref)
	}
	if err := os.WriteFile(dest, []byte(res.Stdout), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

func (b *Backend) GC(ctx context.Context) error {
	_, err := b.run(ctx, runOpts{}, "gc", "--quiet")
	return err
}
