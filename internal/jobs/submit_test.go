package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/partition"
	"github.com/sevigo/accelerator-pr/internal/repomanager"
	"github.com/sevigo/accelerator-pr/mocks"
)

type jobFixture struct {
	job     *SubmitJob
	cfg     *config.Config
	parent  string
	project core.Project
	gitDir  string
	fs      afero.Fs

	hosting *mocks.MockHostingAPI
	version *mocks.MockRepositoryBackend
	scratch *mocks.MockRepositoryBackend
	tree    *mocks.MockRepositoryBackend

	slept []time.Duration
}

var testMetadata = &core.Metadata{
	Title:       "Foo detector",
	Description: "Detects foo",
	Algorithm:   "Classification",
	Sensors:     []string{"Radar"},
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	parent := t.TempDir()
	f := &jobFixture{
		parent:  parent,
		project: core.Project{Name: "Foo", RootPath: filepath.Join(parent, "Foo")},
		fs:      afero.NewMemMapFs(),
		hosting: mocks.NewMockHostingAPI(ctrl),
		version: mocks.NewMockRepositoryBackend(ctrl),
		scratch: mocks.NewMockRepositoryBackend(ctrl),
		tree:    mocks.NewMockRepositoryBackend(ctrl),
	}
	f.cfg = &config.Config{
		GitHub: config.GitHubConfig{
			Host:           "github.com",
			UpstreamOwner:  "Infineon",
			RepoName:       "models",
			MainBranch:     "main",
			RequiredScopes: []string{"workflow"},
			DeleteScopes:   []string{"workflow", "delete_repo"},
		},
		Git: config.GitConfig{
			MetadataDir:         ".git_deepcraft",
			IgnoredDirs:         []string{"Models"},
			PushLimit:           20,
			CloneDepth:          1,
			MinVersion:          "2.43.0",
			MinUpdatableVersion: "2.16.2",
		},
		Fork: config.ForkConfig{SettleDelay: 2 * time.Second},
	}

	factory := func(gitDir, workTree string) core.RepositoryBackend {
		switch {
		case gitDir == "":
			return f.version
		case workTree == parent:
			return f.tree
		default:
			return f.scratch
		}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stores := repomanager.New(f.cfg, factory, logger)
	f.gitDir = stores.Location(f.project)
	f.job = NewSubmitJob(f.cfg, f.hosting, factory, stores, partition.New(f.fs), logger)
	f.job.sleep = func(_ context.Context, d time.Duration) error {
		f.slept = append(f.slept, d)
		return nil
	}
	f.tree.EXPECT().WorkTree().Return(parent).AnyTimes()
	return f
}

func (f *jobFixture) file(t *testing.T, rel string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, filepath.Join(f.parent, rel), make([]byte, size), 0o644))
}

func (f *jobFixture) submission(dryRun bool) *core.Submission {
	return &core.Submission{Project: f.project, Metadata: testMetadata, DryRun: dryRun}
}

func (f *jobFixture) pathspec() []string {
	return []string{f.project.RootPath, ":(exclude)" + filepath.Join(f.project.RootPath, "Models")}
}

func (f *jobFixture) expectPreflight() {
	f.version.EXPECT().Version(gomock.Any()).Return("2.45.0", nil)
	f.hosting.EXPECT().AuthStatus(gomock.Any()).Return(core.AuthStatus{LoggedIn: true, Scopes: []string{"repo", "workflow"}, ScopesReported: true}, nil)
	f.hosting.EXPECT().CurrentUser(gomock.Any()).Return(core.User{Login: "octo", Email: "octo@example.com"}, nil)
}

func (f *jobFixture) expectSyncedFork() {
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").
		Return(core.ForkRecord{Owner: "octo", Name: "models", Exists: true, IsFork: true, Parent: "Infineon/models"}, nil)
	f.hosting.EXPECT().RepoSync(gomock.Any(), "octo", "models", "main").Return(nil)
}

func (f *jobFixture) expectFreshScope(t *testing.T) {
	f.tree.EXPECT().RemoteURL(gomock.Any(), "origin").Return("", nil)
	f.scratch.EXPECT().Clone(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, opts core.CloneOptions) error {
		assert.Equal(t, "https://github.com/octo/models.git", opts.URL)
		return os.MkdirAll(filepath.Join(opts.SeparateGitDir, "objects"), 0o755)
	})
	f.scratch.EXPECT().AddRemote(gomock.Any(), "upstream", "main", "https://github.com/Infineon/models.git").Return(nil)
	f.scratch.EXPECT().ConfigSet(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.scratch.EXPECT().SparseCheckoutSet(gomock.Any(), []string{"!/*", "/Foo/"}).Return(nil)
}

// expectNewBranch covers a branch the fork does not have yet.
func (f *jobFixture) expectNewBranch() {
	f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.NotFound)
	f.scratch.EXPECT().BranchExistsLocal(gomock.Any(), "refs/heads/Foo").Return(false, nil)
	f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "main").Return(nil)
}

func (f *jobFixture) expectDiff(ahead int, deleted, changed []string) {
	f.tree.EXPECT().RevListCount(gomock.Any(), "refs/heads/Foo", "refs/heads/main").Return(ahead, nil)
	f.tree.EXPECT().DiffNames(gomock.Any(), "D", f.pathspec()).Return(deleted, nil)
	f.tree.EXPECT().AddIntentToAdd(gomock.Any(), f.pathspec()).Return(nil)
	f.tree.EXPECT().DiffNames(gomock.Any(), "", f.pathspec()).Return(changed, nil)
}

func (f *jobFixture) expectNewReview() {
	f.hosting.EXPECT().PullRequestView(gomock.Any(), "octo:Foo").Return(core.ReviewRequest{Head: "octo:Foo", State: core.ReviewAbsent}, nil)
	f.hosting.EXPECT().PullRequestCreate(gomock.Any(), "main", "octo:Foo", "Accelerator Foo", ReviewBody(testMetadata)).
		Return(core.ReviewRequest{Number: 7, URL: "https://github.com/Infineon/models/pull/7", Head: "octo:Foo", Base: "main", State: core.ReviewOpen}, nil)
	f.hosting.EXPECT().OpenInBrowser(gomock.Any(), "https://github.com/Infineon/models/pull/7").Return(nil)
}

// readPathspec returns the paths listed in a NUL-separated pathspec file.
func readPathspec(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return strings.Split(string(data), "\x00")
}

func (f *jobFixture) assertReleased(t *testing.T) {
	t.Helper()
	assert.NoDirExists(t, f.gitDir)
	assert.NoDirExists(t, filepath.Dir(f.gitDir))
}

func TestSubmitJob_NewBranchSingleChunk(t *testing.T) {
	f := newJobFixture(t)
	f.file(t, "Foo/a.txt", 5)
	f.file(t, "Foo/b.txt", 5)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, nil, []string{"Foo/a.txt", "Foo/b.txt"})
	gomock.InOrder(
		f.tree.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) error {
			assert.Equal(t, []string{filepath.Join(f.parent, "Foo/a.txt"), filepath.Join(f.parent, "Foo/b.txt")}, readPathspec(t, name))
			return nil
		}),
		f.tree.EXPECT().Commit(gomock.Any(), "Add files").Return(nil),
		f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(nil),
	)
	f.expectNewReview()

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.Equal(t, "Foo", res.Branch)
	assert.Equal(t, "Add", res.Verb)
	assert.Equal(t, 2, res.Changed)
	assert.Len(t, res.Groups, 1)
	assert.Equal(t, 7, res.Review.Number)
	assert.False(t, res.ForkRecreate)
	f.assertReleased(t)
}

func TestSubmitJob_RemoteAheadStashPullReapply(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.Found)
	f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "").Return(nil)
	f.tree.EXPECT().Fetch(gomock.Any(), "origin", "Foo").Return(nil)
	f.tree.EXPECT().RevListCount(gomock.Any(), "refs/remotes/origin/Foo", "refs/heads/Foo").Return(3, nil)
	gomock.InOrder(
		f.tree.EXPECT().StashPush(gomock.Any(), gomock.Any(), f.pathspec()).Return(nil),
		f.tree.EXPECT().PullFastForward(gomock.Any(), "origin", "Foo").Return(nil),
		f.tree.EXPECT().StashFind(gomock.Any(), gomock.Any()).Return("stash@{0}", true, nil),
		f.tree.EXPECT().StashApply(gomock.Any(), "stash@{0}").Return(nil),
	)
	f.expectDiff(4, nil, nil)
	f.hosting.EXPECT().PullRequestView(gomock.Any(), "octo:Foo").
		Return(core.ReviewRequest{Number: 3, URL: "https://github.com/Infineon/models/pull/3", State: core.ReviewOpen}, nil)
	f.hosting.EXPECT().OpenInBrowser(gomock.Any(), "https://github.com/Infineon/models/pull/3").Return(errors.New("no browser"))

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.Equal(t, "Modify", res.Verb)
	assert.Equal(t, 3, res.Review.Number)
	assert.Empty(t, res.StashPatch)
	f.assertReleased(t)
}

func TestSubmitJob_FailedReapplyDoesNotAbort(t *testing.T) {
	f := newJobFixture(t)
	f.file(t, "Foo/a.txt", 1)
	patch := filepath.Join(f.parent, "Foo.stash.patch")

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.Found)
	f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "").Return(nil)
	f.tree.EXPECT().Fetch(gomock.Any(), "origin", "Foo").Return(nil)
	f.tree.EXPECT().RevListCount(gomock.Any(), "refs/remotes/origin/Foo", "refs/heads/Foo").Return(1, nil)
	gomock.InOrder(
		f.tree.EXPECT().StashPush(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.tree.EXPECT().PullFastForward(gomock.Any(), "origin", "Foo").Return(nil),
		f.tree.EXPECT().StashFind(gomock.Any(), gomock.Any()).Return("stash@{0}", true, nil),
		f.tree.EXPECT().StashApply(gomock.Any(), "stash@{0}").Return(errors.New("conflict")),
		f.tree.EXPECT().StashExport(gomock.Any(), "stash@{0}", patch).Return(nil),
	)
	f.expectDiff(2, nil, []string{"Foo/a.txt"})
	f.tree.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
	f.tree.EXPECT().Commit(gomock.Any(), "Modify files").Return(nil)
	f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(nil)
	f.expectNewReview()

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.Equal(t, patch, res.StashPatch)
	f.assertReleased(t)
}

func TestSubmitJob_PullFailureRestoresEdits(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.Found)
	f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "").Return(nil)
	f.tree.EXPECT().Fetch(gomock.Any(), "origin", "Foo").Return(nil)
	f.tree.EXPECT().RevListCount(gomock.Any(), "refs/remotes/origin/Foo", "refs/heads/Foo").Return(1, nil)
	gomock.InOrder(
		f.tree.EXPECT().StashPush(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.tree.EXPECT().PullFastForward(gomock.Any(), "origin", "Foo").Return(errors.New("not possible to fast-forward")),
		f.tree.EXPECT().StashFind(gomock.Any(), gomock.Any()).Return("stash@{0}", true, nil),
		f.tree.EXPECT().StashApply(gomock.Any(), "stash@{0}").Return(nil),
	)

	_, err := f.job.Run(context.Background(), f.submission(false))
	assert.ErrorContains(t, err, "fast-forward")
	f.assertReleased(t)
}

func TestSubmitJob_ChunksAndDeletions(t *testing.T) {
	f := newJobFixture(t)
	f.file(t, "Foo/a.bin", 15)
	f.file(t, "Foo/b.bin", 10)
	f.file(t, "Foo/c.bin", 5)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(1, []string{"Foo/gone.txt"}, []string{"Foo/a.bin", "Foo/b.bin", "Foo/c.bin"})
	f.tree.EXPECT().Remove(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string) error {
		assert.Equal(t, []string{"Foo/gone.txt"}, readPathspec(t, name))
		return nil
	})

	var staged [][]string
	add := func(_ context.Context, name string) error {
		staged = append(staged, readPathspec(t, name))
		return nil
	}
	gomock.InOrder(
		f.tree.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(add),
		f.tree.EXPECT().Commit(gomock.Any(), "Modify chunk 1 of 2").Return(nil),
		f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(nil),
		f.tree.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(add),
		f.tree.EXPECT().Commit(gomock.Any(), "Modify chunk 2 of 2").Return(nil),
		f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(nil),
	)
	f.expectNewReview()

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, [][]string{
		{filepath.Join(f.parent, "Foo/a.bin")},
		{filepath.Join(f.parent, "Foo/b.bin"), filepath.Join(f.parent, "Foo/c.bin")},
	}, staged)
	f.assertReleased(t)
}

func TestSubmitJob_DeletionsOnly(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, []string{"Foo/gone.txt"}, nil)
	f.tree.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil)
	f.tree.EXPECT().Commit(gomock.Any(), "Delete files").Return(nil)
	f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(nil)
	f.expectNewReview()

	_, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
}

func TestSubmitJob_NothingToPublishSkipsReview(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, nil, nil)

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.Equal(t, core.ReviewAbsent, res.Review.State)
	f.assertReleased(t)
}

func TestSubmitJob_LocalOnlyBranchIsPushed(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.NotFound)
	f.scratch.EXPECT().BranchExistsLocal(gomock.Any(), "refs/heads/Foo").Return(true, nil)
	f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "").Return(nil)
	f.expectDiff(2, nil, nil)
	f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(nil)
	f.expectNewReview()

	_, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
}

func TestSubmitJob_AmbiguousProbeTreatedAsAbsent(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.Ambiguous)
	f.scratch.EXPECT().BranchExistsLocal(gomock.Any(), "refs/heads/Foo").Return(false, errors.New("boom"))
	f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "main").Return(nil)
	f.expectDiff(0, nil, nil)

	_, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
}

func TestSubmitJob_ForkRecreatedWhenSyncFails(t *testing.T) {
	f := newJobFixture(t)

	f.version.EXPECT().Version(gomock.Any()).Return("2.45.0", nil)
	f.hosting.EXPECT().AuthStatus(gomock.Any()).Return(core.AuthStatus{LoggedIn: true}, nil)
	f.hosting.EXPECT().CurrentUser(gomock.Any()).Return(core.User{Login: "octo"}, nil)
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").
		Return(core.ForkRecord{Exists: true, IsFork: true, Parent: "infineon/models"}, nil)
	gomock.InOrder(
		f.hosting.EXPECT().RepoSync(gomock.Any(), "octo", "models", "main").Return(errors.New("diverged")),
		f.hosting.EXPECT().AuthRefresh(gomock.Any(), []string{"workflow", "delete_repo"}).Return(nil),
		f.hosting.EXPECT().RepoDelete(gomock.Any(), "octo", "models").Return(nil),
		f.hosting.EXPECT().RepoFork(gomock.Any()).Return(nil),
	)
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, nil, nil)

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.True(t, res.ForkRecreate)
	assert.Equal(t, []time.Duration{2 * time.Second}, f.slept)
}

func TestSubmitJob_ForkCreatedWhenMissing(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").Return(core.ForkRecord{Owner: "octo", Name: "models"}, nil)
	f.hosting.EXPECT().RepoFork(gomock.Any()).Return(nil)
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, nil, nil)

	res, err := f.job.Run(context.Background(), f.submission(false))
	require.NoError(t, err)
	assert.False(t, res.ForkRecreate)
	assert.Len(t, f.slept, 1)
}

func TestSubmitJob_RejectsForeignRepository(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").
		Return(core.ForkRecord{Owner: "octo", Name: "models", Exists: true}, nil)

	_, err := f.job.Run(context.Background(), f.submission(false))
	assert.ErrorContains(t, err, "is not a fork of Infineon/models")
	assert.NoDirExists(t, filepath.Dir(f.gitDir))
}

func TestSubmitJob_LoginWhenScopeMissing(t *testing.T) {
	f := newJobFixture(t)

	f.version.EXPECT().Version(gomock.Any()).Return("2.43.0", nil)
	gomock.InOrder(
		f.hosting.EXPECT().AuthStatus(gomock.Any()).Return(core.AuthStatus{LoggedIn: true, Scopes: []string{"repo"}, ScopesReported: true}, nil),
		f.hosting.EXPECT().AuthLogin(gomock.Any(), []string{"workflow"}).Return(errors.New("denied")),
	)

	_, err := f.job.Run(context.Background(), f.submission(false))
	assert.ErrorContains(t, err, "GitHub login failed")
}

func TestSubmitJob_CleanupOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *jobFixture)
	}{
		{
			name: "push fails",
			setup: func(f *jobFixture) {
				f.expectNewBranch()
				f.expectDiff(0, nil, []string{"Foo/a.txt"})
				f.tree.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
				f.tree.EXPECT().Commit(gomock.Any(), "Add files").Return(nil)
				f.tree.EXPECT().Push(gomock.Any(), "origin", "Foo").Return(errors.New("rejected"))
			},
		},
		{
			name: "switch fails",
			setup: func(f *jobFixture) {
				f.scratch.EXPECT().BranchExistsRemote(gomock.Any(), "origin", "refs/heads/Foo").Return(core.NotFound)
				f.scratch.EXPECT().BranchExistsLocal(gomock.Any(), "refs/heads/Foo").Return(false, nil)
				f.scratch.EXPECT().Switch(gomock.Any(), "Foo", "main").Return(errors.New("invalid reference"))
			},
		},
		{
			name: "file too large",
			setup: func(f *jobFixture) {
				f.expectNewBranch()
				f.expectDiff(0, nil, []string{"Foo/huge.bin"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJobFixture(t)
			f.file(t, "Foo/a.txt", 1)
			f.file(t, "Foo/huge.bin", 21)

			f.expectPreflight()
			f.expectSyncedFork()
			f.expectFreshScope(t)
			tt.setup(f)

			_, err := f.job.Run(context.Background(), f.submission(false))
			require.Error(t, err)
			f.assertReleased(t)
		})
	}
}

func TestSubmitJob_FileTooLargeIsPrecondition(t *testing.T) {
	f := newJobFixture(t)
	f.file(t, "Foo/huge.bin", 21)

	f.expectPreflight()
	f.expectSyncedFork()
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, nil, []string{"Foo/huge.bin"})

	_, err := f.job.Run(context.Background(), f.submission(false))
	assert.ErrorIs(t, err, partition.ErrFileTooLarge)
}

func TestSubmitJob_DryRun(t *testing.T) {
	f := newJobFixture(t)
	f.file(t, "Foo/a.bin", 15)
	f.file(t, "Foo/b.bin", 10)

	// The fork is only looked at: no sync, delete or fork calls are expected.
	f.expectPreflight()
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").
		Return(core.ForkRecord{Owner: "octo", Name: "models", Exists: true, IsFork: true, Parent: "Infineon/models"}, nil)
	f.expectFreshScope(t)
	f.expectNewBranch()
	f.expectDiff(0, nil, []string{"Foo/a.bin", "Foo/b.bin"})

	res, err := f.job.Run(context.Background(), f.submission(true))
	require.NoError(t, err)
	assert.Len(t, res.Groups, 2)
	assert.False(t, res.ForkRecreate)
	assert.False(t, res.ForkMissing)
	assert.Empty(t, f.slept)
	f.assertReleased(t)
}

func TestSubmitJob_DryRunWithoutForkChangesNothing(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").Return(core.ForkRecord{Owner: "octo", Name: "models"}, nil)

	res, err := f.job.Run(context.Background(), f.submission(true))
	require.NoError(t, err)
	assert.True(t, res.ForkMissing)
	assert.Empty(t, res.Groups)
	assert.Empty(t, f.slept)
	assert.NoDirExists(t, filepath.Dir(f.gitDir))
}

func TestSubmitJob_DryRunRejectsForeignRepository(t *testing.T) {
	f := newJobFixture(t)

	f.expectPreflight()
	f.hosting.EXPECT().RepoView(gomock.Any(), "octo", "models").
		Return(core.ForkRecord{Owner: "octo", Name: "models", Exists: true}, nil)

	_, err := f.job.Run(context.Background(), f.submission(true))
	assert.ErrorContains(t, err, "is not a fork of Infineon/models")
}

func TestSubmitJob_GitTooOld(t *testing.T) {
	f := newJobFixture(t)
	f.version.EXPECT().Version(gomock.Any()).Return("2.9.0", nil)

	_, err := f.job.Run(context.Background(), f.submission(false))
	assert.ErrorContains(t, err, "2.43.0 or newer is required")
}

func TestReviewBody(t *testing.T) {
	body := ReviewBody(&core.Metadata{
		Title:       "Fall detection",
		Description: "Detects falls from IMU data",
		Algorithm:   "Classification",
		Sensors:     []string{"IMU", "Radar"},
	})
	assert.Equal(t, "## Fall detection\n\nDetects falls from IMU data\n\n- **Algorithm:** Classification\n- **Sensors:** IMU, Radar\n", body)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
