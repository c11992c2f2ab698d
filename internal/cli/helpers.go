package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	colorHidden  = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorVisible = color.New(color.FgYellow, color.Bold).SprintFunc()
	colorUnknown = color.New(color.FgHiRed, color.Bold).SprintFunc()
	colorLabel   = color.New(color.FgHiBlack).SprintFunc()
)

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func visibilityWord(visible bool) string {
	if visible {
		return "shown"
	}
	return "hidden"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
