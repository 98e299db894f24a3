package updater

import (
	"context"
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/dest4590/collapse-updater/internal/logger"
)

// stopRunningBuilds kills running loader processes so the stale build sweep
// and the download can replace binaries Windows would otherwise keep locked.
// Best effort only: every failure is logged and skipped.
func (r *runner) stopRunningBuilds(ctx context.Context) {
	processList, err := ps.Processes()
	if err != nil {
		logger.WarnKV(ctx, "Unable to list processes", "error", err)
		return
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if !isProductBinary(process.Executable(), r.cfg.ProductPrefix) {
			continue
		}

		runningProcess, err := os.FindProcess(process.Pid())
		if err != nil {
			logger.WarnKV(ctx, "Unable to find process", "pid", process.Pid(), "error", err)
			continue
		}

		if err = runningProcess.Kill(); err != nil {
			logger.WarnKV(ctx, "Unable to terminate process", "pid", process.Pid(), "error", err)
			continue
		}

		logger.InfoKV(ctx, "Terminated running build", "pid", process.Pid(), "executable", process.Executable())
	}
}
