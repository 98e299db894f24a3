package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the updater settings.
type Config struct {
	// Owner is the account owning the release repository.
	Owner string `yaml:"owner"`
	// Repo is the repository whose releases carry the loader builds.
	Repo string `yaml:"repo"`
	// APIBaseURL is the base URL of the releases API.
	APIBaseURL string `yaml:"api_base_url"`
	// UserAgent identifies the updater on every API and download request.
	UserAgent string `yaml:"user_agent"`
	// ProductPrefix is the file name prefix of loader builds on disk.
	ProductPrefix string `yaml:"product_prefix"`
	// UpdaterPrefix is the asset name prefix of the updater's own builds.
	UpdaterPrefix string `yaml:"updater_prefix"`
	// WorkDir is the directory where builds are stored and launched from.
	WorkDir string `yaml:"work_dir"`
	// LogLevel overrides the default logging level when set.
	LogLevel string `yaml:"log_level"`
	// PropagateChildFailure turns a non-zero loader exit status into an updater failure.
	PropagateChildFailure bool `yaml:"propagate_child_failure"`
	// TerminateRunning kills running loader processes before the stale build sweep.
	TerminateRunning bool `yaml:"terminate_running"`
}

const (
	// DefaultConfigFilename is the default filename for updater settings.
	DefaultConfigFilename = "collapse-updater-settings.yaml"

	// DefaultOwner is the account owning the loader repository.
	DefaultOwner = "dest4590"

	// DefaultRepo is the repository publishing loader builds as release assets.
	DefaultRepo = "CollapseLoader"

	// DefaultAPIBaseURL is the public releases API endpoint.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultUserAgent is the fixed identity sent with every request.
	DefaultUserAgent = "CollapseUpdater"

	// DefaultProductPrefix matches loader builds on disk.
	DefaultProductPrefix = "CollapseLoader"

	// DefaultUpdaterPrefix matches the updater's own release assets.
	DefaultUpdaterPrefix = "CollapseUpdater"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errRepositoryRequired is returned when the release repository is missing.
	errRepositoryRequired = errors.New("repository owner and name must be provided")
)

// Default returns the built-in settings the shipped binary runs with.
func Default() *Config {
	return &Config{
		Owner:                 DefaultOwner,
		Repo:                  DefaultRepo,
		APIBaseURL:            DefaultAPIBaseURL,
		UserAgent:             DefaultUserAgent,
		ProductPrefix:         DefaultProductPrefix,
		UpdaterPrefix:         DefaultUpdaterPrefix,
		WorkDir:               ".",
		PropagateChildFailure: true,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// An empty path means the default file next to the binary; if that file does not
// exist, the built-in defaults are returned so the updater runs without setup.
// An explicitly provided path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Absent keys keep their default values.
	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting.
func Validate(cfg *Config) error {
	if cfg.Owner == "" || cfg.Repo == "" {
		return errRepositoryRequired
	}

	// Set default endpoint if not specified
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if cfg.ProductPrefix == "" {
		cfg.ProductPrefix = DefaultProductPrefix
	}

	if cfg.UpdaterPrefix == "" {
		cfg.UpdaterPrefix = DefaultUpdaterPrefix
	}

	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}

	return nil
}
