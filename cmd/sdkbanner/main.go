package main

import (
	"fmt"
	"os"

	"github.com/21tools/sdkbanner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sdkbanner: %v\n", err)
		os.Exit(1)
	}
}
