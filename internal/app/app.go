// Package app holds the components a command needs once configuration,
// logging and the hosting and git clients have been wired together.
package app

import (
	"log/slog"

	"github.com/sevigo/accelerator-pr/internal/config"
	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/jobs"
	"github.com/sevigo/accelerator-pr/internal/project"
	"github.com/sevigo/accelerator-pr/internal/repomanager"
)

// App holds the main application components.
type App struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Hosting   core.HostingAPI
	Stores    *repomanager.Manager
	Submit    *jobs.SubmitJob
	Validator *project.Validator
	Metadata  *project.MetadataStore
}

// NewApp sets up the application with all its dependencies.
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	hosting core.HostingAPI,
	stores *repomanager.Manager,
	submit *jobs.SubmitJob,
	validator *project.Validator,
	metadata *project.MetadataStore,
) *App {
	logger.Debug("application initialized",
		"upstream", cfg.UpstreamFullName(),
		"host", cfg.GitHub.Host,
		"push_limit", cfg.Git.PushLimit)
	return &App{
		Cfg:       cfg,
		Logger:    logger,
		Hosting:   hosting,
		Stores:    stores,
		Submit:    submit,
		Validator: validator,
		Metadata:  metadata,
	}
}
