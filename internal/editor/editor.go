// Package editor finds Unity editor processes that have a project open.
package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrUnsupported = errors.New("editor detection unsupported on this platform")

	testDataEnv = "SDKBANNER_EDITOR_TEST_DATA"
)

// Process is a running program as seen by the detector.
type Process struct {
	PID     int    `json:"pid"`
	Command string `json:"command"`
	CWD     string `json:"cwd"`
}

// Open returns the Unity editor processes whose working directory is root.
// Unity switches its working directory to the project it opened, so this
// matches editors on this project and ignores editors on other projects.
func Open(root string) ([]Process, error) {
	procs, err := list()
	if err != nil {
		return nil, err
	}
	root = filepath.Clean(root)

	var out []Process
	for _, p := range procs {
		if !isUnity(p.Command) || filepath.Clean(p.CWD) != root {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

func isUnity(command string) bool {
	name := strings.ToLower(filepath.Base(command))
	name = strings.TrimSuffix(name, ".exe")
	return name == "unity" || name == "unity editor"
}

func list() ([]Process, error) {
	if data := os.Getenv(testDataEnv); data != "" {
		var procs []Process
		if err := json.Unmarshal([]byte(data), &procs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", testDataEnv, err)
		}
		return procs, nil
	}
	return listNative(os.Getuid())
}
