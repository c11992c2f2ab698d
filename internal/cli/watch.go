package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep refreshing while the SDK stylesheet changes (e.g. after an SDK update)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if !cmd.Flags().Changed("interval") {
				interval = s.proj.Config.Watch.PollInterval()
			}
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}
			return runWatch(cmd.Context(), cmd.OutOrStdout(), s, interval)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "how often to check the stylesheet's modification time")
	return cmd
}

// runWatch is the tool's stand-in for the editor update loop. File events and
// the ticker only wake the loop; all stylesheet work happens on this goroutine.
func runWatch(ctx context.Context, out io.Writer, s *session, interval time.Duration) error {
	path := filepath.Clean(s.toggler.Path())

	if s.proj.Config.Watch.AutoHide && s.toggler.CanHide() && fileExists(path) {
		res, err := s.toggler.Hide()
		switch {
		case err != nil:
			s.log.Error("auto-hide failed", zap.Error(err))
		case !res.Matched:
			fmt.Fprintln(out, "VRC SDK banner unchanged.")
		default:
			fmt.Fprintln(out, "VRC SDK banner hidden.")
		}
	}

	poller := banner.NewPoller(path, banner.HostFunc(func() {
		s.refresher.MarkPolled()
		s.refresher.RefreshWindows()
	}))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	events, errs := watcher.Events, watcher.Errors
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		s.log.Warn("file events unavailable; polling only", zap.String("dir", filepath.Dir(path)), zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick := func() {
		s.refresher.Flush()
		if poller.Check() {
			fmt.Fprintf(out, "%s stylesheet changed; banner %s\n",
				poller.LastSeen().Format(time.TimeOnly), visibilityWord(s.toggler.IsVisible()))
		}
	}

	fmt.Fprintf(out, "Watching %s (Ctrl-C to stop)\n", filepath.ToSlash(banner.StylePath))
	tick()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			s.log.Debug("stylesheet event", zap.String("op", ev.Op.String()))
			tick()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.log.Error("file watcher", zap.Error(err))
		case <-ticker.C:
			tick()
		}
	}
}
