package wire

import (
	"fmt"
	"log/slog"

	"github.com/google/wire"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"

	"github.com/sevigo/accelerator-pr/internal/app"
	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/github"
	"github.com/sevigo/accelerator-pr/internal/gitutil"
	"github.com/sevigo/accelerator-pr/internal/jobs"
	"github.com/sevigo/accelerator-pr/internal/logger"
	"github.com/sevigo/accelerator-pr/internal/partition"
	"github.com/sevigo/accelerator-pr/internal/project"
	"github.com/sevigo/accelerator-pr/internal/repomanager"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	github.NewTokenStore,
	gitutil.NewClient,
	repomanager.New,
	partition.New,
	jobs.NewSubmitJob,
	project.NewValidator,
	project.NewMetadataStore,
	config.DefaultStructurePolicy,
	provideSlogLogger,
	provideFs,
	provideHosting,
	provideTokenSource,
	provideBackendFactory,
)

// provideSlogLogger opens the configured log destination. The cleanup closes
// it when it is a file.
func provideSlogLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	out, closeOut, err := logger.OpenOutput(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := closeOut(); err != nil {
			slog.Error("failed to close log output", "error", err)
		}
	}
	return logger.NewLogger(cfg.Logging, out), cleanup, nil
}

func provideFs() afero.Fs {
	return afero.NewOsFs()
}

func provideHosting(cfg *config.Config, tokens *github.TokenStore, logger *slog.Logger) (core.HostingAPI, error) {
	client, err := github.NewClient(cfg, tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

// provideTokenSource lets git pushes use the same credentials as the API,
// including a token obtained by a login during the run.
func provideTokenSource(tokens *github.TokenStore) oauth2.TokenSource {
	return tokens
}

func provideBackendFactory(c *gitutil.Client) core.BackendFactory {
	return c.Backend
}
