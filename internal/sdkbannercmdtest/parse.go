// Argument parsing for the `sdkbannercmdtest` harness.
//
// Supported flags:
//   - `--no-sdk` (leave the stylesheet uninstalled)
//   - `--hidden` (seed line 17 with max-height: 0%)
//   - `--lines N` (stylesheet length, default 24)
//   - `--dir <dir>` (cd under the temp project before running)
//   - `--keep` (preserve the temp project for debugging)
//   - `-h/--help`
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

type options struct {
	noSDK    bool
	hidden   bool
	lines    int
	dir      string
	keepProj bool
	help     bool
}

func parseArgs(args []string) (options, []string, error) {
	var opts options

	fs := flag.NewFlagSet("sdkbannercmdtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.noSDK, "no-sdk", false, "")
	fs.BoolVar(&opts.hidden, "hidden", false, "")
	fs.IntVar(&opts.lines, "lines", defaultLines, "")
	fs.StringVar(&opts.dir, "dir", "", "")
	fs.BoolVar(&opts.keepProj, "keep", false, "")

	fs.BoolVar(&opts.help, "help", false, "")
	fs.BoolVar(&opts.help, "h", false, "")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	if opts.help {
		return opts, nil, nil
	}

	if opts.lines < 0 {
		return options{}, nil, fmt.Errorf("lines must not be negative: %d", opts.lines)
	}
	if opts.dir != "" {
		if filepath.IsAbs(opts.dir) {
			return options{}, nil, errors.New("dir must be a relative path")
		}
		clean := filepath.Clean(opts.dir)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return options{}, nil, fmt.Errorf("dir must not escape project root: %q", opts.dir)
		}
	}

	cmd := fs.Args()
	if len(cmd) == 0 {
		return options{}, nil, errors.New("missing command")
	}

	return opts, cmd, nil
}
