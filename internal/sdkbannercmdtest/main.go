// sdkbannercmdtest is a small internal harness for transcript tests.
//
// It provisions a disposable Unity project under
// `/tmp/sdkbanner-transcripts/tmpproj-<id>` with a VRChat SDK stylesheet
// fixture, then runs an arbitrary command inside it and returns the
// command's exit code.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	tool, err := newToolFromExecutable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(tool.runCLI(context.Background(), os.Args[1:]))
}
