package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/21tools/sdkbanner/internal/banner"
	"github.com/21tools/sdkbanner/internal/editor"
	"github.com/21tools/sdkbanner/internal/timefmt"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newStatusCommand(opts *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the SDK banner is hidden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also show when the stylesheet was last modified")
	return cmd
}

func runStatus(cmd *cobra.Command, opts *rootOptions, verbose bool) error {
	proj, err := loadProject(opts)
	if err != nil {
		return err
	}
	st := banner.New(proj.StylePath).Inspect()
	rel, err := filepath.Rel(proj.Root, st.Path)
	if err != nil {
		rel = st.Path
	}
	rows := statusRows(st, filepath.ToSlash(rel))
	if verbose {
		if info, err := os.Stat(st.Path); err == nil {
			rows = append(rows, statusRow{"modified", timefmt.Age(info.ModTime(), time.Now())})
		}
		if row, ok := editorRow(proj.Root); ok {
			rows = append(rows, row)
		}
	}
	printRows(cmd.OutOrStdout(), rows)
	return nil
}

func editorRow(root string) (statusRow, bool) {
	procs, err := editor.Open(root)
	switch {
	case errors.Is(err, editor.ErrUnsupported):
		return statusRow{}, false
	case err != nil:
		return statusRow{"editor", colorUnknown(err.Error())}, true
	case len(procs) == 0:
		return statusRow{"editor", "not running"}, true
	default:
		return statusRow{"editor", fmt.Sprintf("open (pid %d)", procs[0].PID)}, true
	}
}

type statusRow struct {
	label string
	value string
}

func statusRows(st banner.State, file string) []statusRow {
	var rows []statusRow
	switch {
	case st.Err != nil:
		rows = append(rows,
			statusRow{"banner", colorUnknown("shown (assumed)")},
			statusRow{"reason", st.Err.Error()},
		)
	case st.Visible:
		rows = append(rows, statusRow{"banner", colorVisible("shown")})
	default:
		rows = append(rows, statusRow{"banner", colorHidden("hidden")})
	}
	if st.Matched {
		rows = append(rows, statusRow{"max-height", strconv.Itoa(st.Percent) + "%"})
	}
	if st.Exists && st.LineCount > 0 {
		rows = append(rows, statusRow{"lines", strconv.Itoa(st.LineCount)})
	}
	rows = append(rows, statusRow{"file", file})
	return rows
}

func printRows(out io.Writer, rows []statusRow) {
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.label); w > width {
			width = w
		}
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s  %s\n", colorLabel(runewidth.FillRight(row.label, width)), row.value)
	}
}
