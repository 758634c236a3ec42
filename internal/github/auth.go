package github

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

// ErrNoClientID is returned when a login is needed but no OAuth app is configured.
var ErrNoClientID = errors.New("github.client_id is not configured; set a token with --github-token or GITHUB_TOKEN instead")

// oauthConfig describes the OAuth app used for the device flow on c.host.
func (c *Client) oauthConfig(scopes []string) oauth2.Config {
	endpoint := oauthgithub.Endpoint
	if c.webURL != "" || c.host != "github.com" {
		base := c.webURL
		if base == "" {
			base = "https://" + c.host
		}
		base = strings.TrimSuffix(base, "/")
		endpoint = oauth2.Endpoint{
			AuthURL:       base + "/login/oauth/authorize",
			TokenURL:      base + "/login/oauth/access_token",
			DeviceAuthURL: base + "/login/device/code",
		}
	}
	return oauth2.Config{ClientID: c.clientID, Scopes: scopes, Endpoint: endpoint}
}

// AuthLogin runs the OAuth device flow and caches the resulting token.
func (c *Client) AuthLogin(ctx context.Context, scopes []string) error {
	if c.clientID == "" {
		return ErrNoClientID
	}
	conf := c.oauthConfig(scopes)

	da, err := conf.DeviceAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to start GitHub login: %w", err)
	}
	fmt.Fprintf(c.out, "! First copy your one-time code: %s\n", da.UserCode)
	fmt.Fprintf(c.out, "Open %s to authenticate with GitHub.\n", da.VerificationURI)
	if err := c.open(da.VerificationURI); err != nil {
		c.logger.WarnContext(ctx, "could not open the browser", "url", da.VerificationURI, "error", err)
	}

	tok, err := conf.DeviceAccessToken(ctx, da)
	if err != nil {
		return fmt.Errorf("GitHub login did not complete: %w", err)
	}
	if err := c.tokens.Save(tok); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "logged in to GitHub", "host", c.host, "scopes", strings.Join(scopes, ","))
	return nil
}

// AuthRefresh logs in again, keeping the scopes already granted and adding
// the wanted ones.
func (c *Client) AuthRefresh(ctx context.Context, scopes []string) error {
	status, err := c.AuthStatus(ctx)
	if err != nil {
		return err
	}
	if status.Satisfies(scopes...) {
		return nil
	}
	merged := slices.Clone(status.Scopes)
	for _, s := range scopes {
		if !slices.Contains(merged, s) {
			merged = append(merged, s)
		}
	}
	return c.AuthLogin(ctx, merged)
}
