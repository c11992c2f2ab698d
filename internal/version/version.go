package version

import (
	"regexp"
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// Override is set with -ldflags "-X github.com/21tools/sdkbanner/internal/version.Override=v1.2.3".
var Override string

var pseudoSuffix = regexp.MustCompile(`[.-](0\.)?\d{14}-[0-9a-fA-F]{12}$`)

// String returns the release version, or "(devel)" for local builds.
func String() string {
	if Override != "" {
		return Override
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return normalize(info.Main.Version)
}

func normalize(v string) string {
	if v == "" || v == devel || strings.Contains(v, "+dirty") {
		return devel
	}
	base, _, _ := strings.Cut(v, "+")
	if pseudoSuffix.MatchString(base) {
		return devel
	}
	return v
}
