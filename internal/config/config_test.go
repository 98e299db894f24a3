package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, format validations and default filling.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing repository identity.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad API base URL.
	cfg = &Config{
		Owner:      "dest4590",
		Repo:       "CollapseLoader",
		APIBaseURL: "not a url",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Defaults are filled in for everything else.
	cfg = &Config{
		Owner: "dest4590",
		Repo:  "CollapseLoader",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Equal(t, DefaultUserAgent, cfg.UserAgent)
	require.Equal(t, DefaultProductPrefix, cfg.ProductPrefix)
	require.Equal(t, DefaultUpdaterPrefix, cfg.UpdaterPrefix)
	require.Equal(t, ".", cfg.WorkDir)
}

// TestLoadDefaults ensures a missing default file yields the built-in settings,
// while a missing explicit path is an error.
func TestLoadDefaults(t *testing.T) {
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load("nonexistent-settings.yaml")
	require.Error(t, err)
}

// TestLoadPartialFile ensures keys absent from the file keep their defaults
// while present keys, including explicit false booleans, override them.
func TestLoadPartialFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	contents := "owner: someone\nrepo: Loader\npropagate_child_failure: false\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "someone", cfg.Owner)
	require.Equal(t, "Loader", cfg.Repo)
	require.False(t, cfg.PropagateChildFailure)
	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Equal(t, DefaultUserAgent, cfg.UserAgent)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := Default()
	cfg.APIBaseURL = "https://releases.local"
	cfg.WorkDir = dir
	cfg.PropagateChildFailure = false
	cfg.TerminateRunning = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
