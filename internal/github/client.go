// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/cli/browser"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
)

// ErrForkSyncFailed is returned when the fork's branch can neither be merged
// with nor reset to the upstream branch.
var ErrForkSyncFailed = errors.New("fork could not be synced with upstream")

// Client is the core.HostingAPI for one upstream repository on GitHub.
type Client struct {
	api    *github.Client
	tokens *TokenStore
	logger *slog.Logger

	host          string
	webURL        string
	clientID      string
	upstreamOwner string
	repoName      string

	out  io.Writer
	open func(url string) error
}

var _ core.HostingAPI = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithOutput sets where login instructions are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Client) { c.out = w }
}

// WithBrowser replaces the function used to open URLs.
func WithBrowser(open func(url string) error) Option {
	return func(c *Client) { c.open = open }
}

// WithWebURL overrides the base URL of the OAuth endpoints.
func WithWebURL(u string) Option {
	return func(c *Client) { c.webURL = u }
}

// NewClient creates a GitHub client whose requests carry the current token
// from tokens. The token is read on every request, so a login during the
// run takes effect immediately.
func NewClient(cfg *config.Config, tokens *TokenStore, logger *slog.Logger, opts ...Option) (*Client, error) {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: tokens, Base: http.DefaultTransport},
	}
	api := github.NewClient(httpClient)

	switch {
	case cfg.GitHub.APIURL != "":
		base, err := url.Parse(strings.TrimSuffix(cfg.GitHub.APIURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github.api_url %q: %w", cfg.GitHub.APIURL, err)
		}
		api.BaseURL = base
	case cfg.GitHub.Host != "" && cfg.GitHub.Host != "github.com":
		enterprise := "https://" + cfg.GitHub.Host + "/"
		var err error
		if api, err = api.WithEnterpriseURLs(enterprise, enterprise); err != nil {
			return nil, fmt.Errorf("failed to configure GitHub Enterprise host %s: %w", cfg.GitHub.Host, err)
		}
	}

	c := &Client{
		api:           api,
		tokens:        tokens,
		logger:        logger,
		host:          cfg.GitHub.Host,
		clientID:      cfg.GitHub.ClientID,
		upstreamOwner: cfg.GitHub.UpstreamOwner,
		repoName:      cfg.GitHub.RepoName,
		out:           os.Stderr,
		open:          browser.OpenURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AuthStatus reports whether the current token is accepted and which classic
// scopes it carries.
func (c *Client) AuthStatus(ctx context.Context) (core.AuthStatus, error) {
	_, resp, err := c.api.Users.Get(ctx, "")
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) || statusIs(resp, http.StatusUnauthorized) {
			return core.AuthStatus{}, nil
		}
		return core.AuthStatus{}, fmt.Errorf("failed to check GitHub login: %w", err)
	}

	status := core.AuthStatus{LoggedIn: true}
	if values := resp.Header.Values("X-OAuth-Scopes"); len(values) > 0 {
		status.ScopesReported = true
		for _, s := range strings.Split(strings.Join(values, ","), ",") {
			if s = strings.TrimSpace(s); s != "" {
				status.Scopes = append(status.Scopes, s)
			}
		}
	}
	return status, nil
}

// CurrentUser returns the login and a commit email for the token's owner.
// Accounts hiding their email get the GitHub noreply address.
func (c *Client) CurrentUser(ctx context.Context) (core.User, error) {
	user, _, err := c.api.Users.Get(ctx, "")
	if err != nil {
		return core.User{}, fmt.Errorf("failed to get the current GitHub user: %w", err)
	}
	email := user.GetEmail()
	if email == "" {
		email = fmt.Sprintf("%d+%s@users.noreply.%s", user.GetID(), user.GetLogin(), c.host)
	}
	return core.User{Login: user.GetLogin(), Email: email}, nil
}

// RepoView looks up owner/name. A missing repository is not an error.
func (c *Client) RepoView(ctx context.Context, owner, name string) (core.ForkRecord, error) {
	rec := core.ForkRecord{Owner: owner, Name: name}
	repo, resp, err := c.api.Repositories.Get(ctx, owner, name)
	if err != nil {
		if statusIs(resp, http.StatusNotFound) {
			return rec, nil
		}
		return rec, fmt.Errorf("failed to view repository %s/%s: %w", owner, name, err)
	}
	rec.Exists = true
	rec.IsFork = repo.GetFork()
	rec.Parent = repo.GetParent().GetFullName()
	return rec, nil
}

// RepoFork forks the upstream repository into the user's account. GitHub
// creates forks asynchronously; a 202 counts as success.
func (c *Client) RepoFork(ctx context.Context) error {
	_, _, err := c.api.Repositories.CreateFork(ctx, c.upstreamOwner, c.repoName, &github.RepositoryCreateForkOptions{
		DefaultBranchOnly: true,
	})
	var accepted *github.AcceptedError
	if err != nil && !errors.As(err, &accepted) {
		return fmt.Errorf("failed to fork %s/%s: %w", c.upstreamOwner, c.repoName, err)
	}
	c.logger.InfoContext(ctx, "fork requested", "upstream", c.upstreamOwner+"/"+c.repoName)
	return nil
}

// RepoSync brings branch of owner/name up to date with upstream. When the
// fork has diverged the branch is force-reset to the upstream commit.
func (c *Client) RepoSync(ctx context.Context, owner, name, branch string) error {
	_, resp, err := c.api.Repositories.MergeUpstream(ctx, owner, name, &github.RepoMergeUpstreamRequest{
		Branch: github.Ptr(branch),
	})
	if err == nil {
		return nil
	}
	if !statusIs(resp, http.StatusConflict) && !statusIs(resp, http.StatusUnprocessableEntity) {
		return fmt.Errorf("%w: %w", ErrForkSyncFailed, err)
	}

	c.logger.WarnContext(ctx, "fork has diverged, resetting branch to upstream", "fork", owner+"/"+name, "branch", branch)
	upstream, _, err := c.api.Git.GetRef(ctx, c.upstreamOwner, c.repoName, "heads/"+branch)
	if err != nil {
		return fmt.Errorf("%w: failed to read upstream %s: %w", ErrForkSyncFailed, branch, err)
	}
	_, _, err = c.api.Git.UpdateRef(ctx, owner, name, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + branch),
		Object: &github.GitObject{SHA: upstream.GetObject().SHA},
	}, true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrForkSyncFailed, err)
	}
	return nil
}

// RepoDelete deletes owner/name. It needs the delete_repo scope.
func (c *Client) RepoDelete(ctx context.Context, owner, name string) error {
	if _, err := c.api.Repositories.Delete(ctx, owner, name); err != nil {
		return fmt.Errorf("failed to delete repository %s/%s: %w", owner, name, err)
	}
	return nil
}

// PullRequestView finds the upstream pull request with the given
// "owner:branch" head. An open request wins over closed ones; with none
// the result is ReviewAbsent.
func (c *Client) PullRequestView(ctx context.Context, head string) (core.ReviewRequest, error) {
	prs, _, err := c.api.PullRequests.List(ctx, c.upstreamOwner, c.repoName, &github.PullRequestListOptions{
		State: "all",
		Head:  head,
	})
	if err != nil {
		return core.ReviewRequest{}, fmt.Errorf("failed to list pull requests for %s: %w", head, err)
	}

	var found *github.PullRequest
	for _, pr := range prs {
		if pr.GetState() == "open" {
			found = pr
			break
		}
		if found == nil {
			found = pr
		}
	}
	if found == nil {
		return core.ReviewRequest{Head: head, State: core.ReviewAbsent}, nil
	}
	return toReviewRequest(head, found), nil
}

// PullRequestCreate opens a pull request against the upstream base branch.
func (c *Client) PullRequestCreate(ctx context.Context, base, head, title, body string) (core.ReviewRequest, error) {
	pr, _, err := c.api.PullRequests.Create(ctx, c.upstreamOwner, c.repoName, &github.NewPullRequest{
		Title:               github.Ptr(title),
		Head:                github.Ptr(head),
		Base:                github.Ptr(base),
		Body:                github.Ptr(body),
		MaintainerCanModify: github.Ptr(true),
	})
	if err != nil {
		return core.ReviewRequest{}, fmt.Errorf("failed to create pull request from %s: %w", head, err)
	}
	return toReviewRequest(head, pr), nil
}

// OpenInBrowser shows url in the user's browser.
func (c *Client) OpenInBrowser(_ context.Context, url string) error {
	return c.open(url)
}

func toReviewRequest(head string, pr *github.PullRequest) core.ReviewRequest {
	state := core.ReviewClosed
	if pr.GetState() == "open" {
		state = core.ReviewOpen
	}
	return core.ReviewRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
		Head:   head,
		Base:   pr.GetBase().GetRef(),
		State:  state,
	}
}

func statusIs(resp *github.Response, code int) bool {
	return resp != nil && resp.Response != nil && resp.StatusCode == code
}
