package updater

import (
	"context"

	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/logger"
)

// decide compares the local file with the resolved asset. A regular file of
// exactly the expected byte length is current; everything else, including
// stat failures, means a download. Size equality is the sole criterion:
// no hashes, no timestamps, no version parsing.
func (r *runner) decide(ctx context.Context, fileName string, expectedSize uint64) update.Decision {
	info, err := r.dir.Stat(fileName)
	if err != nil {
		return update.DecisionNeedsDownload
	}

	if !info.Mode().IsRegular() {
		return update.DecisionNeedsDownload
	}

	if uint64(info.Size()) != expectedSize {
		return update.DecisionNeedsDownload
	}

	logger.InfoKV(ctx, "Latest version already downloaded", "file", fileName)

	return update.DecisionAlreadyCurrent
}
