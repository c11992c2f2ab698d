package cli

import (
	"os"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/21tools/sdkbanner/internal/config"
	"github.com/21tools/sdkbanner/internal/hostrefresh"
	"github.com/21tools/sdkbanner/internal/logger"
	"github.com/21tools/sdkbanner/internal/project"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func loadProject(opts *rootOptions) (*project.Project, error) {
	if opts.projectDir != "" {
		return project.Load(opts.projectDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return project.Discover(wd)
}

// session wires the toggler to its project, logger and refresh host for the
// lifetime of one command.
type session struct {
	proj      *project.Project
	log       *zap.Logger
	refresher *hostrefresh.Refresher
	toggler   *banner.Toggler
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	proj, err := loadProject(opts)
	if err != nil {
		return nil, err
	}
	cfg := proj.Config

	level := cfg.Log.Level
	if opts.logLevel != "" {
		if err := (config.LogBlock{Level: opts.logLevel, Format: cfg.Log.Format}).Validate(); err != nil {
			return nil, err
		}
		level = opts.logLevel
	}
	log, err := logger.New(logger.Options{
		Format: cfg.Log.Format,
		Level:  level,
		Color:  !color.NoColor && writerIsTerminal(cmd.ErrOrStderr()),
	})
	if err != nil {
		return nil, err
	}

	refresher, err := hostrefresh.New(cmd.Context(), hostrefresh.Options{
		Script:   cfg.Refresh.Run,
		Dir:      proj.Root,
		Deferred: cfg.Refresh.DeferredEnabled(),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
		Logger:   log.Named("refresh"),
	})
	if err != nil {
		return nil, err
	}

	toggler := banner.New(proj.StylePath,
		banner.WithHost(refresher),
		banner.WithLogger(log.Named("banner")),
		banner.WithStrict(cfg.Patch.Strict || opts.strict),
		banner.WithAtomicWrite(cfg.Patch.AtomicEnabled()),
	)

	return &session{
		proj:      proj,
		log:       log,
		refresher: refresher,
		toggler:   toggler,
	}, nil
}

// Close runs any deferred refresh pass still queued and flushes the log.
func (s *session) Close() {
	s.refresher.Flush()
	logger.Sync(s.log)
}
