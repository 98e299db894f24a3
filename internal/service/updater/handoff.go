package updater

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/logger"
)

// launch hands execution off to the loader: the local file resolved to an
// absolute path inside the working directory, stdio fully inherited, the
// updater's own arguments forwarded verbatim. It blocks until the loader
// exits. A non-success exit status becomes an error only when
// propagate_child_failure is set.
func (r *runner) launch(ctx context.Context, fileName string) error {
	fullPath := r.dir.Join(fileName)

	logger.InfoKV(ctx, "Starting loader", "path", fullPath, "args", r.forwardArgs)

	cmd := exec.CommandContext(ctx, fullPath, r.forwardArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if !r.cfg.PropagateChildFailure {
			logger.WarnKV(ctx, "Loader exited with failure status", "code", exitErr.ExitCode())
			return nil
		}

		return update.NewError(update.KindCommandExecution, nil, "process exited with code %d", exitErr.ExitCode())
	}

	return update.NewError(update.KindCommandExecution, err, "failed to start %s", fileName)
}
