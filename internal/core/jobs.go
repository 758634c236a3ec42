// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
)

// Job represents a single, executable publish run. A run targets exactly one
// project and executes its steps strictly in sequence.
type Job interface {
	// Run executes the job's logic. It receives a context for managing its
	// lifecycle and the fully resolved Submission. It returns an error if
	// any step that must succeed fails; best-effort steps only log.
	Run(ctx context.Context, sub *Submission) (*SubmitResult, error)
}

// CloneOptions mirrors the shape of the shadow clone: filtered, shallow,
// all branches, nothing checked out, metadata kept apart from the work tree.
type CloneOptions struct {
	URL            string
	Into           string
	SeparateGitDir string
	Depth          int
	Filter         string
	NoCheckout     bool
	NoSingleBranch bool
}

// RepositoryBackend is the version-control client bound to one metadata
// store and one work tree.
//
//go:generate mockgen -destination=../../mocks/mock_repository_backend.go -package=mocks . RepositoryBackend
type RepositoryBackend interface {
	GitDir() string
	WorkTree() string

	Version(ctx context.Context) (string, error)
	SelfUpdate(ctx context.Context) error

	Clone(ctx context.Context, opts CloneOptions) error
	RemoteURL(ctx context.Context, name string) (string, error)
	AddRemote(ctx context.Context, name, trackedBranch, url string) error
	ConfigSet(ctx context.Context, key, value string) error
	SparseCheckoutSet(ctx context.Context, rules []string) error

	Switch(ctx context.Context, branch, createFrom string) error
	BranchExistsRemote(ctx context.Context, remote, ref string) Probe
	BranchExistsLocal(ctx context.Context, ref string) (bool, error)
	Fetch(ctx context.Context, remote, branch string) error
	PullFastForward(ctx context.Context, remote, branch string) error
	RevListCount(ctx context.Context, include string, exclude ...string) (int, error)

	DiffNames(ctx context.Context, filter string, pathspec []string) ([]string, error)
	Remove(ctx context.Context, pathspecFile string) error
	Add(ctx context.Context, pathspecFile string) error
	AddIntentToAdd(ctx context.Context, pathspec []string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, branch string) error

	StashPush(ctx context.Context, message string, pathspec []string) error
	StashFind(ctx context.Context, message string) (string, bool, error)
	StashApply(ctx context.Context, ref string) error
	StashExport(ctx context.Context, ref, dest string) error

	GC(ctx context.Context) error
}

// BackendFactory binds a RepositoryBackend to a metadata store and a work tree.
type BackendFactory func(gitDir, workTree string) RepositoryBackend

// HostingAPI is the code-hosting service holding the upstream repository, the
// user's fork and the review requests between them. The upstream identity is
// fixed at construction.
//
//go:generate mockgen -destination=../../mocks/mock_hosting_api.go -package=mocks . HostingAPI
type HostingAPI interface {
	AuthStatus(ctx context.Context) (AuthStatus, error)
	AuthLogin(ctx context.Context, scopes []string) error
	AuthRefresh(ctx context.Context, scopes []string) error
	CurrentUser(ctx context.Context) (User, error)

	RepoView(ctx context.Context, owner, name string) (ForkRecord, error)
	RepoFork(ctx context.Context) error
	RepoSync(ctx context.Context, owner, name, branch string) error
	RepoDelete(ctx context.Context, owner, name string) error

	PullRequestView(ctx context.Context, head string) (ReviewRequest, error)
	PullRequestCreate(ctx context.Context, base, head, title, body string) (ReviewRequest, error)
	OpenInBrowser(ctx context.Context, url string) error
}
