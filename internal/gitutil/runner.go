package gitutil

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunResult holds the captured output of a git invocation.
type RunResult struct {
	Stdout string
	Stderr string
}

type runOpts struct {
	// network commands get the credential header.
	network bool
	// unscoped commands run without --git-dir and --work-tree.
	unscoped bool
}

// run executes git bound to the backend's metadata store and work tree.
// Omit the 'git' part of the command.
func (b *Backend) run(ctx context.Context, opts runOpts, args ...string) (RunResult, error) {
	full := make([]string, 0, len(args)+2)
	if !opts.unscoped {
		if b.gitDir != "" {
			full = append(full, "--git-dir="+b.gitDir)
		}
		if b.workTree != "" {
			full = append(full, "--work-tree="+b.workTree)
		}
	}
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, b.client.binary, full...)
	if !opts.unscoped && b.workTree != "" {
		cmd.Dir = b.workTree
	}
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	if opts.network {
		env, err := b.client.credentialEnv()
		if err != nil {
			return RunResult{}, err
		}
		cmd.Env = append(cmd.Env, env...)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	b.client.logger.DebugContext(ctx, "git", "args", strings.Join(args, " "), "work_tree", b.workTree)
	if err := cmd.Run(); err != nil {
		return RunResult{}, &GitExecError{
			Args:     args,
			ExitCode: exitCode(err),
			Err:      err,
			StdOut:   stdout.String(),
			StdErr:   stderr.String(),
		}
	}
	return RunResult{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}

// credentialEnv passes the token as an extra HTTP header through the
// environment, so it never shows up in argv or in the store's config.
func (c *Client) credentialEnv() ([]string, error) {
	if c.tokens == nil {
		return nil, nil
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get git credentials: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, nil
	}
	basic := base64.StdEncoding.EncodeToString([]byte("x-access-token:" + tok.AccessToken))
	return []string{
		"GIT_CONFIG_COUNT=1",
		fmt.Sprintf("GIT_CONFIG_KEY_0=http.https://%s/.extraheader", c.host),
		"GIT_CONFIG_VALUE_0=AUTHORIZATION: basic " + basic,
	}, nil
}

func lines(out string) []string {
	var result []string
	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		result = append(result, l)
	}
	return result
}
