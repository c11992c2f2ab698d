package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/21tools/sdkbanner/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

type rootOptions struct {
	projectDir string
	logLevel   string
	strict     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "sdkbanner",
		Short:         "Hide or show the VRChat SDK control panel banner",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.projectDir, "project", "C", "", "Unity project root (default: search upward from the current directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&opts.strict, "strict", false, "fail when line 17 has no max-height percentage instead of leaving it unchanged")

	cmd.AddCommand(
		newStatusCommand(opts),
		newHideCommand(opts),
		newShowCommand(opts),
		newToggleCommand(opts),
		newSetCommand(opts),
		newWatchCommand(opts),
		newDoctorCommand(opts),
		newInitCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
