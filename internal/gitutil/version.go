package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/sevigo/accelerator-pr/internal/core"
)

var versionRegexp = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts the numeric part of a git version such as
// "2.43.0.windows.1" or "2.39.3 (Apple Git-146)".
func ParseVersion(raw string) (*semver.Version, error) {
	m := versionRegexp.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("unrecognized git version %q", raw)
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(fmt.Sprintf("%s.%s.%s", m[1], m[2], patch))
}

// CheckVersion enforces the minimum git version. Between minUpdatable and
// minVersion a self-update is attempted; below minUpdatable there is no way
// forward.
func CheckVersion(ctx context.Context, b core.RepositoryBackend, minVersion, minUpdatable string, logger *slog.Logger) error {
	raw, err := b.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to get git version: %w", err)
	}
	got, err := ParseVersion(raw)
	if err != nil {
		return err
	}
	want, err := semver.NewVersion(minVersion)
	if err != nil {
		return fmt.Errorf("invalid minimum git version %q: %w", minVersion, err)
	}
	floor, err := semver.NewVersion(minUpdatable)
	if err != nil {
		return fmt.Errorf("invalid minimum updatable git version %q: %w", minUpdatable, err)
	}

	if !got.LessThan(want) {
		logger.DebugContext(ctx, "git version ok", "version", got.String())
		return nil
	}
	if got.LessThan(floor) {
		return fmt.Errorf("%w: found %s, git version %s or newer is required", ErrGitTooOld, got, want)
	}

	logger.WarnContext(ctx, "git is too old, trying to update it", "version", got.String(), "required", want.String())
	if err := b.SelfUpdate(ctx); err != nil {
		return fmt.Errorf("%w: found %s, git version %s or newer is required (self-update failed: %w)",
			ErrGitTooOld, got, want, err)
	}
	return nil
}
