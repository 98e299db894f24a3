package updater

import (
	"context"

	"github.com/dest4590/collapse-updater/internal/logger"
)

// purgeStale removes leftover loader builds from the working directory:
// regular files carrying the product prefix and the platform extension,
// except the file the current release resolves to. Failures are logged
// and skipped; the sweep never fails the run.
func (r *runner) purgeStale(ctx context.Context, excludeFileName string) {
	entries, err := r.dir.Entries()
	if err != nil {
		logger.WarnKV(ctx, "Unable to list working directory", "error", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == excludeFileName || !entry.Type().IsRegular() {
			continue
		}

		if !isProductBinary(name, r.cfg.ProductPrefix) {
			continue
		}

		if err = r.dir.Remove(name); err != nil {
			logger.WarnKV(ctx, "Failed to delete stale build", "file", name, "error", err)
			continue
		}

		logger.InfoKV(ctx, "Deleted stale build", "file", name)
	}
}
