package updater

import (
	"context"

	"github.com/dest4590/collapse-updater/internal/config"
	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/logger"
	"github.com/dest4590/collapse-updater/internal/repository/workdir"
	"github.com/dest4590/collapse-updater/internal/service/release"
	"github.com/dest4590/collapse-updater/internal/version"
)

// Options are inputs accepted by the updater entry point.
type Options struct {
	// ConfigPath is the optional path to the settings YAML file.
	ConfigPath string
	// Channel selects the release stream to follow.
	Channel update.Channel
	// ForwardArgs are the updater's own invocation arguments,
	// handed to the loader verbatim and in order.
	ForwardArgs []string
	// Sink consumes download progress. A nil sink discards it.
	Sink update.Sink
	// WorkDir overrides the configured working directory when set.
	WorkDir string
}

// runner holds the collaborators of a single update execution.
// It is intentionally unexported - call Run(ctx, Options) from callers.
type runner struct {
	cfg         *config.Config    // Updater settings loaded from YAML or defaults.
	client      *release.Client   // Releases API client.
	dir         workdir.Directory // Working directory holding loader builds.
	sink        update.Sink       // Progress consumer for downloads.
	channel     update.Channel    // Release stream for this run.
	forwardArgs []string          // Arguments handed to the loader.
}

// Run executes the update pipeline and is the public entry point for the CLI.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "collapse-updater")

	r, err := newRunner(ctx, opts)
	if err != nil {
		return err
	}

	if err = r.Run(ctx); err != nil {
		logger.ErrorKV(ctx, "Updater run failed", "error", err)
		return err
	}

	logger.Info(ctx, "Updater completed")

	return nil
}

// newRunner loads settings and prepares the collaborators for the run.
func newRunner(ctx context.Context, opts *Options) (*runner, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
			logger.SetLevel(level)
		} else {
			logger.WarnKV(ctx, "Unknown log level in settings", "log_level", cfg.LogLevel)
		}
	}

	workDir := cfg.WorkDir
	if opts.WorkDir != "" {
		workDir = opts.WorkDir
	}

	dir, err := workdir.New(workDir)
	if err != nil {
		return nil, err
	}

	sink := opts.Sink
	if sink == nil {
		sink = discardSink{}
	}

	return &runner{
		cfg:         cfg,
		client:      release.NewClient(cfg.Owner, cfg.Repo, cfg.UserAgent, release.WithBaseURL(cfg.APIBaseURL)),
		dir:         dir,
		sink:        sink,
		channel:     opts.Channel,
		forwardArgs: opts.ForwardArgs,
	}, nil
}

// Run walks the pipeline in its fixed order:
// 1) Resolve the release asset for the channel.
// 2) Decide whether the local build is current.
// 3) Optionally terminate running loader processes.
// 4) Sweep stale builds.
// 5) Download the asset if needed.
// 6) Hand off execution to the loader.
func (r *runner) Run(ctx context.Context) error {
	logger.InfoKV(ctx, "Updater started",
		"product", r.cfg.ProductPrefix,
		"channel", r.channel,
		"version", version.Short())

	descriptor, err := r.client.Resolve(ctx, r.channel)
	if err != nil {
		return err
	}

	fileName := update.LocalFileName(descriptor.AssetURL)

	logger.InfoKV(ctx, "Resolved release asset",
		"file", fileName,
		"size", descriptor.AssetSize,
		"prerelease", descriptor.Prerelease)

	decision := r.decide(ctx, fileName, descriptor.AssetSize)

	if r.cfg.TerminateRunning {
		r.stopRunningBuilds(ctx)
	}

	r.purgeStale(ctx, fileName)

	if decision == update.DecisionNeedsDownload {
		if err = r.download(ctx, descriptor, fileName); err != nil {
			return err
		}
	}

	return r.launch(ctx, fileName)
}
