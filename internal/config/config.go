package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/sevigo/accelerator-pr/internal/logger"
)

// AppName is used for the config directory, the env prefix and the token cache.
const AppName = "accel-pr"

// GitHubConfig identifies the upstream repository and how to authenticate.
type GitHubConfig struct {
	Host           string   `mapstructure:"host"`
	APIURL         string   `mapstructure:"api_url"`
	UpstreamOwner  string   `mapstructure:"upstream_owner"`
	RepoName       string   `mapstructure:"repo_name"`
	MainBranch     string   `mapstructure:"main_branch"`
	Token          string   `mapstructure:"token"`
	ClientID       string   `mapstructure:"client_id"`
	RequiredScopes []string `mapstructure:"required_scopes"`
	DeleteScopes   []string `mapstructure:"delete_scopes"`
}

// GitConfig controls the shadow repository and the push loop.
type GitConfig struct {
	Binary              string   `mapstructure:"binary"`
	MetadataDir         string   `mapstructure:"metadata_dir"`
	IgnoredDirs         []string `mapstructure:"ignored_dirs"`
	PushLimit           int64    `mapstructure:"push_limit"`
	CloneDepth          int      `mapstructure:"clone_depth"`
	CloneFilter         string   `mapstructure:"clone_filter"`
	MinVersion          string   `mapstructure:"min_version"`
	MinUpdatableVersion string   `mapstructure:"min_updatable_version"`
}

// ForkConfig controls fork provisioning.
type ForkConfig struct {
	// SettleDelay is how long to wait after requesting a fork. The hosting
	// API exposes no readiness signal, so this is a plain wait.
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// Config holds the application's configuration values. It is built once at
// startup and passed explicitly; nothing mutates it afterward.
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github"`
	Git     GitConfig     `mapstructure:"git"`
	Fork    ForkConfig    `mapstructure:"fork"`
	Logging logger.Config `mapstructure:"logging"`
}

// UpstreamFullName returns "owner/name" of the upstream repository.
func (c *Config) UpstreamFullName() string {
	return c.GitHub.UpstreamOwner + "/" + c.GitHub.RepoName
}

// UpstreamURL returns the clone URL of the upstream repository.
func (c *Config) UpstreamURL() string {
	return c.repoURL(c.GitHub.UpstreamOwner)
}

// ForkURL returns the clone URL of the user's fork.
func (c *Config) ForkURL(user string) string {
	return c.repoURL(user)
}

// ForkFullName returns "user/name" of the user's fork.
func (c *Config) ForkFullName(user string) string {
	return user + "/" + c.GitHub.RepoName
}

func (c *Config) repoURL(owner string) string {
	return fmt.Sprintf("https://%s/%s/%s.git", c.GitHub.Host, owner, c.GitHub.RepoName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("github.host", "github.com")
	v.SetDefault("github.api_url", "")
	v.SetDefault("github.upstream_owner", "Infineon")
	v.SetDefault("github.repo_name", "deepcraft-studio-accelerators")
	v.SetDefault("github.main_branch", "main")
	v.SetDefault("github.client_id", "")
	v.SetDefault("github.required_scopes", []string{"workflow"})
	v.SetDefault("github.delete_scopes", []string{"workflow", "delete_repo"})

	v.SetDefault("git.binary", "git")
	v.SetDefault("git.metadata_dir", ".git_deepcraft")
	v.SetDefault("git.ignored_dirs", []string{"Models", "PreprocessorTrack"})
	v.SetDefault("git.push_limit", int64(2*1024*1024*1024-1))
	v.SetDefault("git.clone_depth", 1)
	v.SetDefault("git.clone_filter", "blob:none")
	v.SetDefault("git.min_version", "2.43.0")
	v.SetDefault("git.min_updatable_version", "2.16.2")

	v.SetDefault("fork.settle_delay", 2*time.Second)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
}

// LoadConfig reads configuration using the process-wide viper instance, which
// the CLI binds its flags to.
func LoadConfig(configFile string) (*Config, error) {
	return Load(viper.GetViper(), configFile)
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it. An empty configFile searches the XDG
// config directories for accel-pr/config.yaml; a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(strings.ToUpper(strings.ReplaceAll(AppName, "-", "")))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("github.token", "ACCELPR_GITHUB_TOKEN", "GH_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token env: %w", err)
	}

	if configFile == "" {
		if found, err := xdg.SearchConfigFile(AppName + "/config.yaml"); err == nil {
			configFile = found
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
			}
			slog.Debug("config file not found, using defaults", "path", configFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields every run depends on.
func (c *Config) Validate() error {
	if c.GitHub.Host == "" || c.GitHub.UpstreamOwner == "" || c.GitHub.RepoName == "" {
		return fmt.Errorf("github.host, github.upstream_owner and github.repo_name must be set")
	}
	if c.GitHub.MainBranch == "" {
		return fmt.Errorf("github.main_branch must be set")
	}
	if c.Git.MetadataDir == "" {
		return fmt.Errorf("git.metadata_dir must be set")
	}
	if c.Git.PushLimit <= 0 {
		return fmt.Errorf("git.push_limit must be positive, got %d", c.Git.PushLimit)
	}
	if c.Fork.SettleDelay < 0 {
		return fmt.Errorf("fork.settle_delay must not be negative")
	}

	minVersion, err := semver.NewVersion(c.Git.MinVersion)
	if err != nil {
		return fmt.Errorf("invalid git.min_version %q: %w", c.Git.MinVersion, err)
	}
	minUpdatable, err := semver.NewVersion(c.Git.MinUpdatableVersion)
	if err != nil {
		return fmt.Errorf("invalid git.min_updatable_version %q: %w", c.Git.MinUpdatableVersion, err)
	}
	if minUpdatable.GreaterThan(minVersion) {
		return fmt.Errorf("git.min_updatable_version %s is above git.min_version %s", minUpdatable, minVersion)
	}
	return nil
}
