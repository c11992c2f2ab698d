// Package banner hides and shows the VRChat SDK control-panel banner by
// rewriting the max-height declaration on one line of the SDK's panel
// stylesheet. Every call re-reads the file; nothing is cached between calls.
package banner

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

const (
	// StylePath is the stylesheet location relative to the Unity project root.
	StylePath = "Packages/com.vrchat.base/Editor/VRCSDK/Dependencies/VRChat/Resources/VRCSdkPanelStyles.uss"
	// TargetLineNumber is the 1-based line holding the banner's max-height.
	TargetLineNumber = 17
)

var (
	detectPattern  = regexp.MustCompile(`max-height:\s*(\d+)%`)
	replacePattern = regexp.MustCompile(`(max-height:\s*)(\d+%)`)
)

// Toggler owns the read, detect, patch and write cycle for one stylesheet.
type Toggler struct {
	path   string
	line   int
	host   Host
	log    *zap.Logger
	strict bool
	atomic bool
}

// Option configures a Toggler.
type Option func(*Toggler)

// WithHost sets the host refreshed after each write.
func WithHost(h Host) Option {
	return func(t *Toggler) {
		if h != nil {
			t.host = h
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(t *Toggler) {
		if l != nil {
			t.log = l
		}
	}
}

// WithStrict makes a target line without a max-height token an error
// instead of a silent no-op.
func WithStrict(strict bool) Option {
	return func(t *Toggler) { t.strict = strict }
}

// WithAtomicWrite selects temp-file-then-rename writes (the default) or a
// direct truncating write.
func WithAtomicWrite(enabled bool) Option {
	return func(t *Toggler) { t.atomic = enabled }
}

// WithTargetLine overrides the 1-based target line.
func WithTargetLine(n int) Option {
	return func(t *Toggler) {
		if n > 0 {
			t.line = n
		}
	}
}

// New returns a Toggler for the stylesheet at path.
func New(path string, opts ...Option) *Toggler {
	t := &Toggler{
		path:   path,
		line:   TargetLineNumber,
		host:   nopHost{},
		log:    zap.NewNop(),
		atomic: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Path returns the stylesheet path.
func (t *Toggler) Path() string { return t.path }

// Line returns the 1-based target line number.
func (t *Toggler) Line() int { return t.line }

// State describes what a read of the stylesheet found.
type State struct {
	Path      string
	Exists    bool
	LineCount int
	Line      string
	Matched   bool
	Percent   int
	Visible   bool
	// Err explains why the state is indeterminate; nil when it was detected.
	Err error
}

// Inspect reads the stylesheet and reports the banner state. Anything that
// prevents a reliable reading leaves Visible true and sets Err.
func (t *Toggler) Inspect() State {
	st := State{Path: t.path, Visible: true}

	lines, err := t.load()
	if err != nil {
		st.Exists = !errors.Is(err, ErrFileMissing)
		st.Err = err
		return st
	}
	st.Exists = true
	st.LineCount = lines.Len()
	if err := t.checkLineCount(lines); err != nil {
		st.Err = err
		return st
	}

	st.Line = lines.text[t.line-1]
	m := detectPattern.FindStringSubmatch(st.Line)
	if m == nil {
		st.Err = fmt.Errorf("%w: line %d has no max-height percentage", ErrMalformedFile, t.line)
		return st
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		st.Err = fmt.Errorf("%w: line %d: %v", ErrMalformedFile, t.line, err)
		return st
	}
	st.Matched = true
	st.Percent = n
	st.Visible = n != 0
	return st
}

// IsVisible reports whether the banner is shown. It never fails: when the
// state cannot be read reliably the banner is assumed visible.
func (t *Toggler) IsVisible() bool {
	return t.Inspect().Visible
}

// CanHide reports whether hiding would change anything.
func (t *Toggler) CanHide() bool { return t.IsVisible() }

// CanShow reports whether showing would change anything.
func (t *Toggler) CanShow() bool { return !t.IsVisible() }

// Result describes a completed write.
type Result struct {
	Path    string
	Line    int
	Before  string
	After   string
	Matched bool
	Changed bool
	Visible bool
}

// Hide sets max-height to 0%.
func (t *Toggler) Hide() (Result, error) { return t.SetVisibility(Hidden) }

// Show sets max-height to 100%.
func (t *Toggler) Show() (Result, error) { return t.SetVisibility(Shown) }

// Toggle hides a visible banner and shows a hidden one.
func (t *Toggler) Toggle() (Result, error) {
	if t.IsVisible() {
		return t.SetVisibility(Hidden)
	}
	return t.SetVisibility(Shown)
}

// SetVisibility rewrites the first max-height token on the target line to p
// and writes the whole file back. A target line without the token is left
// as is: nothing is written, the host is still refreshed, and the call
// succeeds unless the Toggler is strict. Missing or short files are rejected
// before anything is written.
func (t *Toggler) SetVisibility(p Percent) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	info, err := os.Stat(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w at %s", ErrFileMissing, t.path)
		}
		return Result{}, &IOError{Op: "stat", Path: t.path, Err: err}
	}

	lines, err := t.load()
	if err != nil {
		return Result{}, err
	}
	if err := t.checkLineCount(lines); err != nil {
		return Result{}, err
	}

	idx := t.line - 1
	before := lines.text[idx]
	after, matched := patchLine(before, p)
	if !matched {
		if t.strict {
			return Result{}, fmt.Errorf("%w: line %d has no max-height percentage", ErrMalformedFile, t.line)
		}
		t.log.Warn("target line has no max-height token; leaving it unchanged",
			zap.String("path", t.path), zap.Int("line", t.line))
	} else {
		lines.text[idx] = after
		if err := t.write(lines.Bytes(), info.Mode().Perm()); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Path:    t.path,
		Line:    t.line,
		Before:  before,
		After:   after,
		Matched: matched,
		Changed: before != after,
		Visible: !matched || p.Visible(),
	}

	t.host.RefreshWindows()
	if dh, ok := t.host.(DeferredHost); ok {
		dh.RequestDeferredRefresh()
	}

	t.log.Info("stylesheet patched",
		zap.String("path", t.path),
		zap.String("percent", string(p)),
		zap.Bool("changed", res.Changed),
		zap.Bool("visible", res.Visible))
	return res, nil
}

// patchLine replaces the first max-height percentage in line, keeping the
// property name and its whitespace.
func patchLine(line string, p Percent) (string, bool) {
	loc := replacePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, false
	}
	return line[:loc[4]] + string(p) + line[loc[5]:], true
}

func (t *Toggler) load() (styleLines, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return styleLines{}, fmt.Errorf("%w at %s", ErrFileMissing, t.path)
		}
		return styleLines{}, &IOError{Op: "read", Path: t.path, Err: err}
	}
	return splitLines(data), nil
}

func (t *Toggler) checkLineCount(lines styleLines) error {
	if lines.Len() < t.line {
		return fmt.Errorf("%w: %d lines, need at least %d", ErrMalformedFile, lines.Len(), t.line)
	}
	return nil
}

func (t *Toggler) write(data []byte, perm fs.FileMode) error {
	if !t.atomic {
		if err := os.WriteFile(t.path, data, perm); err != nil {
			return &IOError{Op: "write", Path: t.path, Err: err}
		}
		return nil
	}
	// atomic.WriteFile carries the existing file's mode over to the replacement.
	if err := atomic.WriteFile(t.path, bytes.NewReader(data)); err != nil {
		return &IOError{Op: "write", Path: t.path, Err: err}
	}
	return nil
}
