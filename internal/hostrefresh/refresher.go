// Package hostrefresh implements the refresh capability the stylesheet
// toggler calls after each write. A refresh pass runs the user's configured
// shell script with an embedded POSIX shell interpreter, so no system shell
// is required.
package hostrefresh

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// PassEnv names the variable telling the script which pass is running:
// "immediate", "deferred" or "poll".
const PassEnv = "SDKBANNER_REFRESH_PASS"

type Options struct {
	Script   string
	Dir      string
	Deferred bool
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
}

// Refresher runs the refresh script on demand and holds at most one pending
// deferred pass. It is not safe for concurrent use.
type Refresher struct {
	ctx      context.Context
	file     *syntax.File
	dir      string
	deferred bool
	stdout   io.Writer
	stderr   io.Writer
	log      *zap.Logger

	pending bool
	kind    string
	passes  int
}

// Parse checks a refresh script for syntax errors.
func Parse(script string) (*syntax.File, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}
	f, err := syntax.NewParser().Parse(strings.NewReader(script), "refresh.run")
	if err != nil {
		return nil, fmt.Errorf("parse refresh script: %w", err)
	}
	return f, nil
}

// New returns a Refresher bound to ctx; cancelling ctx stops a running script.
func New(ctx context.Context, opts Options) (*Refresher, error) {
	file, err := Parse(opts.Script)
	if err != nil {
		return nil, err
	}
	r := &Refresher{
		ctx:      ctx,
		file:     file,
		dir:      opts.Dir,
		deferred: opts.Deferred,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		log:      opts.Logger,
		kind:     "immediate",
	}
	if r.stdout == nil {
		r.stdout = io.Discard
	}
	if r.stderr == nil {
		r.stderr = io.Discard
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r, nil
}

// RefreshWindows runs one refresh pass. Script failures are logged, never
// returned, so a broken hook cannot undo a completed stylesheet write.
func (r *Refresher) RefreshWindows() {
	r.passes++
	kind := r.kind
	r.kind = "immediate"
	r.log.Debug("refresh pass", zap.String("pass", kind), zap.Int("count", r.passes))
	if r.file == nil {
		return
	}
	if err := r.run(kind); err != nil {
		r.log.Error("refresh script failed", zap.String("pass", kind), zap.Error(err))
	}
}

// RequestDeferredRefresh queues a second pass for the next Flush. Repeated
// requests collapse into one.
func (r *Refresher) RequestDeferredRefresh() {
	if r.deferred {
		r.pending = true
	}
}

// MarkPolled labels the next pass as triggered by the modification-time poller.
func (r *Refresher) MarkPolled() { r.kind = "poll" }

// Pending reports whether a deferred pass is queued.
func (r *Refresher) Pending() bool { return r.pending }

// Flush runs the queued deferred pass, if any.
func (r *Refresher) Flush() bool {
	if !r.pending {
		return false
	}
	r.pending = false
	r.kind = "deferred"
	r.RefreshWindows()
	return true
}

// Passes returns how many refresh passes have run.
func (r *Refresher) Passes() int { return r.passes }

func (r *Refresher) run(kind string) error {
	env := append(os.Environ(), PassEnv+"="+kind)
	runner, err := interp.New(
		interp.Dir(r.dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, r.stdout, r.stderr),
	)
	if err != nil {
		return err
	}
	return runner.Run(r.ctx, r.file)
}
