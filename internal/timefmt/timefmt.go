package timefmt

import (
	"fmt"
	"time"
)

// Age describes how long before reference the file was last written, in the
// compact form used by `sdkbanner status --verbose`. A zero reference means
// time.Now().
func Age(modified, reference time.Time) string {
	if modified.IsZero() {
		return "unknown"
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	modified = modified.In(reference.Location())

	diff := reference.Sub(modified)
	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff/time.Second))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	case modified.Year() == reference.Year():
		return modified.Format("Jan 2")
	default:
		return modified.Format("Jan 2 2006")
	}
}
