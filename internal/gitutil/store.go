package gitutil

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-git/go-billy/v5/osfs"
	gitconfig "github.com/go-git/go-git/v5/config"
)

// readRemoteURL parses the store's config file directly instead of opening
// the repository, since go-git refuses some extensions sparse checkouts
// enable.
func readRemoteURL(gitDir, remote string) (string, error) {
	if gitDir == "" {
		return "", nil
	}
	f, err := osfs.New(gitDir).Open("config")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open store config in %s: %w", gitDir, err)
	}
	defer f.Close()

	cfg, err := gitconfig.ReadConfig(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse store config in %s: %w", gitDir, err)
	}
	r, ok := cfg.Remotes[remote]
	if !ok || len(r.URLs) == 0 {
		return "", nil
	}
	return r.URLs[0], nil
}
