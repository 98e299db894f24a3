package selfupdate

import (
	"context"
	"io"
	"os"
	"strings"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/dest4590/collapse-updater/internal/config"
	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/logger"
	"github.com/dest4590/collapse-updater/internal/service/release"
)

const (
	// replacedSuffix names the previous binary an apply leaves behind.
	replacedSuffix = ".old"

	// targetMode is applied to the replacement binary.
	targetMode os.FileMode = 0o755
)

// Options are inputs accepted by the self-update entry point.
type Options struct {
	// ConfigPath is the optional path to the settings YAML file.
	ConfigPath string
}

// Run replaces the running updater binary with the one attached to the latest
// published release. The asset is picked by the configured updater prefix and
// applied in place; the running process keeps executing the old image until it
// exits.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "self-update")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	client := release.NewClient(cfg.Owner, cfg.Repo, cfg.UserAgent, release.WithBaseURL(cfg.APIBaseURL))

	latest, err := client.Latest(ctx)
	if err != nil {
		return err
	}

	asset, err := selectUpdaterAsset(latest.Assets, cfg.UpdaterPrefix)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Downloading updater release", "asset", asset.Name, "size", asset.Size)

	body, err := client.Fetch(ctx, asset.BrowserDownloadURL)
	if err != nil {
		return err
	}

	defer func() {
		_ = body.Close()
	}()

	executable, err := os.Executable()
	if err != nil {
		return update.NewError(update.KindFileOperation, err, "locate running executable")
	}

	if err = applyTo(executable, body); err != nil {
		return err
	}

	oldName := executable + replacedSuffix
	if _, err = os.Stat(oldName); err == nil {
		_ = os.Remove(oldName)
	}

	logger.InfoKV(ctx, "Updater replaced", "path", executable)

	return nil
}

// CleanupOld removes the stale binary a previous self-update left behind.
// Windows cannot delete the running image during the swap, so the leftover is
// swept on the next start instead.
func CleanupOld(ctx context.Context) {
	executable, err := os.Executable()
	if err != nil {
		return
	}

	oldName := executable + replacedSuffix
	if _, err = os.Stat(oldName); err != nil {
		return
	}

	if err = os.Remove(oldName); err != nil {
		logger.DebugKV(ctx, "Could not remove previous binary", "path", oldName, "error", err)
		return
	}

	logger.DebugKV(ctx, "Removed previous binary", "path", oldName)
}

// applyTo swaps the binary at path for the contents of source.
func applyTo(path string, source io.Reader) error {
	options := goupdate.Options{
		TargetPath: path,
		TargetMode: targetMode,
	}

	if err := goupdate.Apply(source, options); err != nil {
		return update.NewError(update.KindFileOperation, err, "apply update to %s", path)
	}

	return nil
}

// selectUpdaterAsset finds the updater artifact among the release assets.
func selectUpdaterAsset(assets []release.Asset, prefix string) (release.Asset, error) {
	for _, asset := range assets {
		if strings.HasPrefix(asset.Name, prefix) {
			return asset, nil
		}
	}

	return release.Asset{}, update.NewError(update.KindAPIRequest, nil, "no updater asset found in the latest release")
}
