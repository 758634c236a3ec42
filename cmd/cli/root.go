package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/accelerator-pr/internal/app"
	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/project"
	"github.com/sevigo/accelerator-pr/internal/wire"
)

var (
	configFile  string
	githubToken string
	verbose     bool
	projectPath string
	projectName string
)

var rootCmd = &cobra.Command{
	Use:   "accel-pr",
	Short: "accel-pr publishes a DEEPCRAFT accelerator project as a pull request.",
	Long: `accel-pr pushes one project directory to your fork of the accelerator
repository and opens a pull request against upstream.

The project directory stays where it is; a separate git store next to it
tracks only that directory and is removed when the run ends.

Examples:
  accel-pr --path ~/work/FallDetection
  accel-pr --path ./gestures --name GestureRecognition --dry-run
  accel-pr --path ./FallDetection --override-metadata --title "Fall detection"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.NoArgs,
	RunE:              runSubmit,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&projectPath, "path", "p", "", "Path to the project directory")
	flags.StringVarP(&projectName, "name", "n", "", "Project name (default: the directory name)")
	flags.StringVar(&configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/accel-pr/config.yaml)")
	flags.StringVarP(&githubToken, "github-token", "t", "", "GitHub token")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")

	if err := rootCmd.MarkPersistentFlagRequired("path"); err != nil {
		slog.Error("Error marking flag required", "error", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("github.token", flags.Lookup("github-token")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}

	registerSubmitFlags(rootCmd)
}

// initApp resolves the project named by the common flags and wires the
// application. The returned cleanup is always safe to call.
func initApp() (*app.App, core.Project, func(), error) {
	p, err := project.Resolve(projectPath, projectName)
	if err != nil {
		return nil, core.Project{}, func() {}, fmt.Errorf("%w\n\nTip: Project names are CamelCase words such as FallDetection; pass --name to choose one", err)
	}
	if verbose {
		viper.Set("logging.level", "debug")
	}

	a, cleanup, err := wire.InitializeApp(configFile)
	if err != nil {
		return nil, p, func() {}, fmt.Errorf("failed to initialize app: %w\n\nTip: Check that your config file is valid YAML", err)
	}
	return a, p, cleanup, nil
}
