// Implementation of the `sdkbannercmdtest` harness.
//
// Key behaviors:
//   - Creates `/tmp/sdkbanner-transcripts/tmpproj-<id>` laid out like a Unity project.
//   - Writes a VRCSdkPanelStyles.uss fixture whose line 17 carries the banner's max-height.
//   - Prepends `<repo>/bin` to PATH so transcripts can call `sdkbanner` directly.
//   - Honors `SDKBANNER_CMDTEST_TIMEOUT` (default 10s) to cap setup + command runtime.
//   - Honors `SDKBANNER_CMDTEST_ID` to isolate temp projects for parallel tests.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

type tool struct {
	repoRoot        string
	transcriptsRoot string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

const (
	defaultTimeout = 10 * time.Second
	defaultLines   = 24
	targetLine     = 17
	stylePath      = "Packages/com.vrchat.base/Editor/VRCSDK/Dependencies/VRChat/Resources/VRCSdkPanelStyles.uss"
)

func newToolFromExecutable() (*tool, error) {
	if root := os.Getenv("SDKBANNER_REPO_ROOT"); root != "" {
		return newTool(root), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, err
	}
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(exe), ".."))
	return newTool(repoRoot), nil
}

func newTool(repoRoot string) *tool {
	return &tool{
		repoRoot:        filepath.Clean(repoRoot),
		transcriptsRoot: "/tmp/sdkbanner-transcripts",
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
	}
}

func (t *tool) runCLI(ctx context.Context, args []string) int {
	ctx, cancel, timeout := withTimeoutFromEnv(ctx, "SDKBANNER_CMDTEST_TIMEOUT", defaultTimeout)
	if cancel != nil {
		defer cancel()
	}

	opts, cmdArgs, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(t.stderr, err)
		t.printUsage()
		return 2
	}
	if opts.help {
		t.printUsage()
		return 0
	}

	exitCode, err := t.run(ctx, opts, cmdArgs, timeout)
	if err != nil {
		fmt.Fprintln(t.stderr, err)
		return 1
	}
	return exitCode
}

func (t *tool) printUsage() {
	fmt.Fprint(t.stderr, `Usage: sdkbannercmdtest [options] -- <command> [args...]

Sets up a disposable Unity project with a VRChat SDK stylesheet, runs the
given command inside it, and cleans up afterward. Intended for transcript
integration tests.

Options:
  --no-sdk      Do not install the SDK stylesheet.
  --hidden      Seed line 17 with max-height: 0% instead of 100%.
  --lines N     Number of stylesheet lines (default 24).
  --dir DIR     cd into DIR (relative to the temp project) before running.
  --keep        Preserve the temp project for debugging (prints its path).
`)
}

func (t *tool) run(ctx context.Context, opts options, cmdArgs []string, timeout time.Duration) (int, error) {
	if t.repoRoot == "" {
		return 1, errors.New("repo root is required")
	}
	if _, err := os.Stat(filepath.Join(t.repoRoot, "go.mod")); err != nil {
		return 1, fmt.Errorf("unable to locate sdkbanner repo root: %w", err)
	}

	if err := os.MkdirAll(t.transcriptsRoot, 0o755); err != nil {
		return 1, err
	}

	tmpproj := filepath.Join(t.transcriptsRoot, tmpprojDirName())
	if err := removeAllUnder(t.transcriptsRoot, tmpproj); err != nil {
		return 1, err
	}
	if err := seedUnityProject(tmpproj, opts); err != nil {
		return 1, err
	}

	childEnv := deterministicEnv(os.Environ())
	childEnv = withEnv(childEnv, "PATH", filepath.Join(t.repoRoot, "bin")+string(os.PathListSeparator)+getEnv(childEnv, "PATH"))

	workdir := tmpproj
	if opts.dir != "" {
		workdir = filepath.Join(tmpproj, opts.dir)
		if err := os.MkdirAll(workdir, 0o755); err != nil {
			return 1, err
		}
	}

	cmd := exec.CommandContext(ctx, cmdArgs[0], cmdArgs[1:]...)
	cmd.Dir = workdir
	cmd.Env = withEnv(childEnv, "PWD", workdir)
	cmd.Stdin = t.stdin
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr

	runErr := cmd.Run()
	if runErr != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return 124, fmt.Errorf("sdkbannercmdtest: timed out after %s", timeout)
	}
	exitCode := exitStatus(runErr)

	if opts.keepProj {
		fmt.Fprintf(t.stderr, "temp project kept at %s\n", tmpproj)
	} else if cleanupErr := removeAllUnder(t.transcriptsRoot, tmpproj); cleanupErr != nil {
		return 1, cleanupErr
	}

	return exitCode, nil
}

func seedUnityProject(dir string, opts options) error {
	for _, sub := range []string{"Assets", "Packages", "ProjectSettings"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return err
		}
	}
	if opts.noSDK {
		return nil
	}
	path := filepath.Join(dir, filepath.FromSlash(stylePath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(styleFixture(opts.lines, opts.hidden)), 0o644)
}

// panelStyleLines approximates the head of the SDK's panel stylesheet; the
// banner container's max-height sits on line 17.
var panelStyleLines = []string{
	".builder-panel {",
	"    flex-grow: 1;",
	"    padding: 4px;",
	"}",
	"",
	".account-row {",
	"    flex-direction: row;",
	"    align-items: center;",
	"}",
	"",
	".sdk-banner {",
	"    background-image: resource('vrcSdkHeader');",
	"    -unity-background-scale-mode: scale-to-fit;",
	"    height: 120px;",
	"    margin-bottom: 4px;",
	"    overflow: hidden;",
	"", // line 17, filled by styleFixture
	"}",
	"",
	".content-info {",
	"    white-space: normal;",
	"}",
	"",
	".content-info__label {",
	"    -unity-font-style: bold;",
	"}",
}

func styleFixture(lines int, hidden bool) string {
	value := "100%"
	if hidden {
		value = "0%"
	}
	var b strings.Builder
	for i := 0; i < lines; i++ {
		switch {
		case i == targetLine-1:
			b.WriteString("    max-height: " + value + ";")
		case i < len(panelStyleLines):
			b.WriteString(panelStyleLines[i])
		default:
			fmt.Fprintf(&b, ".pad-%d { }", i+1)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func deterministicEnv(base []string) []string {
	env := envMap(base)
	env["NO_COLOR"] = "1"
	env["CLICOLOR"] = "0"
	env["CLICOLOR_FORCE"] = "0"
	delete(env, "SDKBANNER_REFRESH_PASS")
	return envSlice(env)
}

func removeAllUnder(root, target string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return err
	}
	if rel == "." {
		return fmt.Errorf("refusing to remove root: %s", root)
	}
	if strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return fmt.Errorf("refusing to remove outside root: %s", target)
	}
	return os.RemoveAll(target)
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 127
}

func withTimeoutFromEnv(ctx context.Context, key string, def time.Duration) (context.Context, context.CancelFunc, time.Duration) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		raw = def.String()
	}
	if raw == "0" || raw == "0s" {
		return ctx, nil, 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		d = def
	}
	next, cancel := context.WithTimeout(ctx, d)
	return next, cancel, d
}

func envMap(env []string) map[string]string {
	out := make(map[string]string, len(env))
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		out[key] = value
	}
	return out
}

func envSlice(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}

func withEnv(env []string, key, value string) []string {
	m := envMap(env)
	m[key] = value
	return envSlice(m)
}

func getEnv(env []string, key string) string {
	return envMap(env)[key]
}

func tmpprojDirName() string {
	raw := strings.TrimSpace(os.Getenv("SDKBANNER_CMDTEST_ID"))
	if raw != "" {
		safe := make([]rune, 0, len(raw))
		for _, r := range raw {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
				safe = append(safe, r)
				continue
			}
			safe = append(safe, '_')
		}
		id := strings.Trim(strings.TrimSpace(string(safe)), "._-")
		if id != "" {
			return "tmpproj-" + id
		}
	}

	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("tmpproj-%d", os.Getpid())
	}
	return "tmpproj-" + hex.EncodeToString(b[:])
}
