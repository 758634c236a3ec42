package gitutil

import (
	"errors"
	"os/exec"
	"strings"
)

var (
	ErrGitTooOld             = errors.New("git version is too old")
	ErrSelfUpdateUnsupported = errors.New("git self-update is only available with Git for Windows")
)

// GitExecError is returned for every git invocation that exits unsuccessfully.
type GitExecError struct {
	Args     []string
	ExitCode int
	Err      error
	StdErr   string
	StdOut   string
}

func (e *GitExecError) Error() string {
	b := new(strings.Builder)
	b.WriteString("git ")
	b.WriteString(strings.Join(e.Args, " "))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if msg := strings.TrimSpace(e.StdErr); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	return b.String()
}

func (e *GitExecError) Unwrap() error { return e.Err }

// ExitCodeOf returns the exit code carried by err, or -1 when err did not
// come from a finished git process.
func ExitCodeOf(err error) int {
	var gitErr *GitExecError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}
	return -1
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
