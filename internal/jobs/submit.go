// Package jobs defines the publish run that moves a project onto the user's
// fork and into a pull request.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/gitutil"
	"github.com/sevigo/accelerator-pr/internal/partition"
	"github.com/sevigo/accelerator-pr/internal/repomanager"
)

const originRemote = "origin"

// SubmitJob publishes one project subtree and reconciles its pull request.
// Steps run strictly in order; nothing here prompts the user.
type SubmitJob struct {
	cfg         *config.Config
	hosting     core.HostingAPI
	backends    core.BackendFactory
	stores      *repomanager.Manager
	partitioner *partition.Partitioner
	logger      *slog.Logger

	progress Progress
	sleep    func(ctx context.Context, d time.Duration) error
}

var _ core.Job = (*SubmitJob)(nil)

// NewSubmitJob creates a new SubmitJob.
func NewSubmitJob(
	cfg *config.Config,
	hosting core.HostingAPI,
	backends core.BackendFactory,
	stores *repomanager.Manager,
	partitioner *partition.Partitioner,
	logger *slog.Logger,
) *SubmitJob {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if hosting == nil {
		panic("hosting API cannot be nil")
	}
	if backends == nil {
		panic("backend factory cannot be nil")
	}
	if stores == nil {
		panic("store manager cannot be nil")
	}
	if partitioner == nil {
		panic("partitioner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &SubmitJob{
		cfg:         cfg,
		hosting:     hosting,
		backends:    backends,
		stores:      stores,
		partitioner: partitioner,
		logger:      logger,
		progress:    nopProgress{},
		sleep:       sleepContext,
	}
}

// WithProgress makes the job report its steps to p.
func (j *SubmitJob) WithProgress(p Progress) *SubmitJob {
	if p != nil {
		j.progress = p
	}
	return j
}

// Run executes the publish run for sub.
func (j *SubmitJob) Run(ctx context.Context, sub *core.Submission) (res *core.SubmitResult, err error) {
	if sub == nil || sub.Metadata == nil {
		return nil, errors.New("submission and its metadata cannot be nil")
	}
	p := sub.Project
	result := &core.SubmitResult{Branch: p.Name}
	j.logger.Info("starting submission", "project", p.Name, "root", p.RootPath, "metadata", sub.MetadataSource, "dry_run", sub.DryRun)

	j.progress.Step("Checking git")
	if err := gitutil.CheckVersion(ctx, j.backends("", ""), j.cfg.Git.MinVersion, j.cfg.Git.MinUpdatableVersion, j.logger); err != nil {
		return nil, err
	}
	j.progress.Done()

	j.progress.Step("Authenticating with GitHub")
	user, err := j.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	j.progress.Done("Logged in as " + user.Login)

	j.progress.Step("Preparing fork")
	if sub.DryRun {
		// Dry runs never change the fork; they compare against it as it is.
		exists, err := j.viewFork(ctx, user.Login)
		if err != nil {
			return nil, err
		}
		if !exists {
			result.ForkMissing = true
			j.progress.Done("No fork yet")
			j.logger.Info("dry run, the fork does not exist yet", "fork", j.cfg.ForkFullName(user.Login))
			return result, nil
		}
	} else {
		recreated, err := j.ensureFork(ctx, user.Login)
		if err != nil {
			return nil, err
		}
		result.ForkRecreate = recreated
	}
	j.progress.Done(j.cfg.ForkFullName(user.Login))

	j.progress.Step("Preparing shadow repository")
	store, err := j.stores.Acquire(p)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := store.Release(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("cleanup failed: %w", rerr))
		}
	}()

	err = store.Scope(ctx, repomanager.ScopeOptions{
		ForkURL:     j.cfg.ForkURL(user.Login),
		UpstreamURL: j.cfg.UpstreamURL(),
		User:        user,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare the shadow repository: %w", err)
	}
	if store.Reused() {
		j.progress.Done("Reusing store left by an earlier run")
	} else {
		j.progress.Done(store.GitDir())
	}

	j.progress.Step("Switching to branch " + p.Name)
	state, err := j.reconcileBranch(ctx, store, p, result)
	if err != nil {
		return nil, err
	}
	j.progress.Done("Branch was " + state.String())

	j.progress.Step("Computing changes")
	tree := store.Tree()
	pathspec := j.pathspec(p)
	verb := j.commitVerb(ctx, tree, p)
	result.Verb = verb

	deleted, err := j.stageDeletions(ctx, tree, pathspec)
	if err != nil {
		return nil, err
	}
	result.Deleted = len(deleted)

	if err := tree.AddIntentToAdd(ctx, pathspec); err != nil {
		return nil, fmt.Errorf("failed to register new files: %w", err)
	}
	changed, err := tree.DiffNames(ctx, "", pathspec)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	result.Changed = len(changed)

	groups, err := j.partitioner.Partition(tree.WorkTree(), changed, j.cfg.Git.PushLimit)
	if err != nil {
		return nil, err
	}
	result.Groups = groups
	j.progress.Done(fmt.Sprintf("%d changed, %d deleted, %d chunk(s)", len(changed), len(deleted), len(groups)))

	if sub.DryRun {
		j.logger.Info("dry run, nothing was published", "project", p.Name)
		return result, nil
	}

	j.progress.Step("Pushing to " + j.cfg.ForkFullName(user.Login))
	pushed, err := j.pushGroups(ctx, tree, p, verb, groups, len(deleted) > 0)
	if err != nil {
		return nil, err
	}
	if !pushed && state == core.BranchLocalOnly {
		// A store left by an interrupted run may hold commits that never
		// reached the fork.
		if err := tree.Push(ctx, originRemote, p.Name); err != nil {
			return nil, fmt.Errorf("failed to push branch %s: %w", p.Name, err)
		}
		pushed = true
	}
	if pushed {
		j.progress.Done()
	} else {
		j.progress.Done("Nothing to push")
	}

	if !pushed && state != core.BranchRemoteExists {
		j.logger.Warn("nothing was published and the fork has no branch, skipping the pull request", "branch", p.Name)
		return result, nil
	}

	j.progress.Step("Opening pull request")
	review, err := j.reconcileReview(ctx, user.Login, p, sub.Metadata)
	if err != nil {
		return nil, err
	}
	result.Review = review
	j.progress.Done(review.URL)

	j.logger.Info("submission completed", "project", p.Name, "review", review.URL)
	return result, nil
}

// authenticate makes sure the hosting credentials carry the required scopes
// and returns the account they belong to.
func (j *SubmitJob) authenticate(ctx context.Context) (core.User, error) {
	scopes := j.cfg.GitHub.RequiredScopes
	status, err := j.hosting.AuthStatus(ctx)
	if err != nil {
		return core.User{}, err
	}
	if !status.Satisfies(scopes...) {
		j.logger.Info("login required", "logged_in", status.LoggedIn, "scopes", strings.Join(status.Scopes, ","))
		if err := j.hosting.AuthLogin(ctx, scopes); err != nil {
			return core.User{}, fmt.Errorf("GitHub login failed: %w", err)
		}
	}
	user, err := j.hosting.CurrentUser(ctx)
	if err != nil {
		return core.User{}, err
	}
	return user, nil
}

// ensureFork leaves the user with a fork whose main branch matches upstream.
// A fork that cannot be synced is deleted and created again, once. It
// reports whether that happened.
func (j *SubmitJob) ensureFork(ctx context.Context, login string) (bool, error) {
	name := j.cfg.GitHub.RepoName
	exists, err := j.viewFork(ctx, login)
	if err != nil {
		return false, err
	}
	if !exists {
		j.logger.Info("fork not found, creating it", "fork", j.cfg.ForkFullName(login))
		return false, j.createFork(ctx)
	}

	err = j.hosting.RepoSync(ctx, login, name, j.cfg.GitHub.MainBranch)
	if err == nil {
		return false, nil
	}
	j.logger.Warn("fork is out of sync with upstream, recreating it", "fork", j.cfg.ForkFullName(login), "error", err)
	j.progress.Info("Your fork is out of sync with %s; it will be deleted and forked again", j.cfg.UpstreamFullName())

	if err := j.hosting.AuthRefresh(ctx, j.cfg.GitHub.DeleteScopes); err != nil {
		return false, fmt.Errorf("failed to obtain permission to delete the fork: %w", err)
	}
	if err := j.hosting.RepoDelete(ctx, login, name); err != nil {
		return false, err
	}
	return true, j.createFork(ctx)
}

// viewFork reports whether the user's fork exists. A repository of the same
// name that is not a fork of upstream is an error.
func (j *SubmitJob) viewFork(ctx context.Context, login string) (bool, error) {
	rec, err := j.hosting.RepoView(ctx, login, j.cfg.GitHub.RepoName)
	if err != nil {
		return false, err
	}
	if !rec.Exists {
		return false, nil
	}
	if !rec.IsFork || !strings.EqualFold(rec.Parent, j.cfg.UpstreamFullName()) {
		return false, fmt.Errorf("repository %s exists but is not a fork of %s; rename or delete it first",
			j.cfg.ForkFullName(login), j.cfg.UpstreamFullName())
	}
	return true, nil
}

func (j *SubmitJob) createFork(ctx context.Context) error {
	if err := j.hosting.RepoFork(ctx); err != nil {
		return err
	}
	// Fork creation is asynchronous and GitHub offers no readiness signal.
	return j.sleep(ctx, j.cfg.Fork.SettleDelay)
}

// reconcileBranch checks out the project branch and, when the fork is
// ahead, fast-forwards it while carrying the user's pending edits across.
func (j *SubmitJob) reconcileBranch(ctx context.Context, store *repomanager.Store, p core.Project, result *core.SubmitResult) (core.BranchState, error) {
	checkout := store.Checkout()
	branch := p.Name

	state := core.BranchAbsent
	switch checkout.BranchExistsRemote(ctx, originRemote, p.BranchRef()) {
	case core.Found:
		state = core.BranchRemoteExists
	case core.Ambiguous:
		j.logger.Warn("could not tell whether the fork has the branch, assuming it does not", "branch", branch)
		fallthrough
	default:
		local, err := checkout.BranchExistsLocal(ctx, p.BranchRef())
		if err != nil {
			j.logger.Warn("local branch probe failed, assuming it does not exist", "branch", branch, "error", err)
		}
		if local {
			state = core.BranchLocalOnly
		}
	}
	j.logger.Info("branch state", "branch", branch, "state", state)

	createFrom := ""
	if state == core.BranchAbsent {
		createFrom = j.cfg.GitHub.MainBranch
	}
	if err := checkout.Switch(ctx, branch, createFrom); err != nil {
		return state, err
	}
	if err := store.CloseScratch(); err != nil {
		j.logger.Warn("failed to remove scratch tree", "error", err)
	}
	if state != core.BranchRemoteExists {
		return state, nil
	}

	tree := store.Tree()
	if err := tree.Fetch(ctx, originRemote, branch); err != nil {
		return state, err
	}
	behind, err := tree.RevListCount(ctx, "refs/remotes/"+originRemote+"/"+branch, p.BranchRef())
	if err != nil {
		return state, fmt.Errorf("failed to compare with the fork's branch: %w", err)
	}
	if behind > 0 {
		j.progress.Info("The fork is %d commit(s) ahead, merging its changes", behind)
		if err := j.replayEdits(ctx, tree, p, result); err != nil {
			return state, err
		}
	}
	return state, nil
}

// replayEdits stashes the project's edits, pulls the fork's branch and
// reapplies the stash. A failed reapply keeps going; the stash is exported
// next to the project so the edits survive the store's removal.
func (j *SubmitJob) replayEdits(ctx context.Context, tree core.RepositoryBackend, p core.Project, result *core.SubmitResult) error {
	message := fmt.Sprintf("%s: pending edits of %s", config.AppName, p.Name)
	if err := tree.StashPush(ctx, message, j.pathspec(p)); err != nil {
		return fmt.Errorf("failed to stash local edits: %w", err)
	}

	pullErr := tree.PullFastForward(ctx, originRemote, p.Name)

	ref, found, err := tree.StashFind(ctx, message)
	if err != nil {
		j.logger.Warn("failed to look up stashed edits", "error", err)
	}
	if found {
		if err := tree.StashApply(ctx, ref); err != nil {
			j.logger.Warn("local edits could not be reapplied", "stash", ref, "error", err)
			patch := filepath.Join(p.ParentDir(), p.Name+".stash.patch")
			if xerr := tree.StashExport(ctx, ref, patch); xerr != nil {
				j.logger.Warn("failed to export stashed edits", "error", xerr)
			} else {
				result.StashPatch = patch
				j.progress.Info("Edits that could not be reapplied were saved to %s", patch)
			}
		}
	}
	if pullErr != nil {
		return fmt.Errorf("failed to update branch %s from the fork: %w", p.Name, pullErr)
	}
	return nil
}

// commitVerb is cosmetic: "Add" while the branch has nothing beyond main.
func (j *SubmitJob) commitVerb(ctx context.Context, tree core.RepositoryBackend, p core.Project) string {
	ahead, err := tree.RevListCount(ctx, p.BranchRef(), "refs/heads/"+j.cfg.GitHub.MainBranch)
	if err != nil {
		j.logger.Warn("could not count branch commits", "error", err)
		return "Add"
	}
	if ahead <= 0 {
		return "Add"
	}
	return "Modify"
}

// pathspec covers the project root minus the ignored directories. The long
// exclude form is required: in ":^/abs" the slash reads as the top magic.
func (j *SubmitJob) pathspec(p core.Project) []string {
	spec := []string{p.RootPath}
	for _, dir := range j.cfg.Git.IgnoredDirs {
		spec = append(spec, ":(exclude)"+filepath.Join(p.RootPath, dir))
	}
	return spec
}

func (j *SubmitJob) stageDeletions(ctx context.Context, tree core.RepositoryBackend, pathspec []string) ([]string, error) {
	deleted, err := tree.DiffNames(ctx, "D", pathspec)
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted files: %w", err)
	}
	if len(deleted) == 0 {
		return nil, nil
	}
	err = gitutil.WithPathspecFile(deleted, func(name string) error {
		return tree.Remove(ctx, name)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stage deleted files: %w", err)
	}
	return deleted, nil
}

// pushGroups commits and pushes each group in order. It reports whether
// anything was pushed.
func (j *SubmitJob) pushGroups(ctx context.Context, tree core.RepositoryBackend, p core.Project, verb string, groups []core.ChangeGroup, hasDeletions bool) (bool, error) {
	if len(groups) == 0 {
		if !hasDeletions {
			return false, nil
		}
		return true, j.commitAndPush(ctx, tree, p, "Delete files")
	}

	for i, g := range groups {
		err := gitutil.WithPathspecFile(g.Files, func(name string) error {
			return tree.Add(ctx, name)
		})
		if err != nil {
			return i > 0, fmt.Errorf("failed to stage chunk %d: %w", i+1, err)
		}
		message := verb + " files"
		if len(groups) > 1 {
			message = fmt.Sprintf("%s chunk %d of %d", verb, i+1, len(groups))
		}
		if err := j.commitAndPush(ctx, tree, p, message); err != nil {
			return i > 0, err
		}
		j.progress.Info("%s (%d files, %d bytes)", message, len(g.Files), g.TotalBytes)
	}
	return true, nil
}

func (j *SubmitJob) commitAndPush(ctx context.Context, tree core.RepositoryBackend, p core.Project, message string) error {
	if err := tree.Commit(ctx, message); err != nil {
		return err
	}
	if err := tree.Push(ctx, originRemote, p.Name); err != nil {
		return err
	}
	j.logger.Info("pushed", "branch", p.Name, "message", message)
	return nil
}

// reconcileReview opens a pull request unless an open one exists, then shows
// it in the browser.
func (j *SubmitJob) reconcileReview(ctx context.Context, login string, p core.Project, meta *core.Metadata) (core.ReviewRequest, error) {
	head := core.HeadRef(login, p.Name)
	review, err := j.hosting.PullRequestView(ctx, head)
	if err != nil {
		j.logger.Warn("could not look up the pull request, creating one", "head", head, "error", err)
		review = core.ReviewRequest{Head: head, State: core.ReviewAbsent}
	}

	if review.State != core.ReviewOpen {
		review, err = j.hosting.PullRequestCreate(ctx, j.cfg.GitHub.MainBranch, head, "Accelerator "+p.Name, ReviewBody(meta))
		if err != nil {
			return core.ReviewRequest{}, err
		}
		j.logger.Info("pull request created", "number", review.Number, "url", review.URL)
	}

	if err := j.hosting.OpenInBrowser(ctx, review.URL); err != nil {
		j.logger.Warn("could not open the browser", "url", review.URL, "error", err)
	}
	return review, nil
}

// ReviewBody renders the pull request description from the project metadata.
func ReviewBody(meta *core.Metadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", meta.Title, meta.Description)
	fmt.Fprintf(&b, "- **Algorithm:** %s\n", meta.Algorithm)
	fmt.Fprintf(&b, "- **Sensors:** %s\n", strings.Join(meta.Sensors, ", "))
	return b.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
