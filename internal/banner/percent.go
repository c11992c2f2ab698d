package banner

import (
	"fmt"
	"regexp"
	"strconv"
)

// Percent is a formatted max-height value such as "0%" or "100%".
type Percent string

const (
	Hidden Percent = "0%"
	Shown  Percent = "100%"
)

var percentPattern = regexp.MustCompile(`^(\d+)%$`)

// ParsePercent accepts "N%" or a bare "N" for N in 0..100.
func ParsePercent(s string) (Percent, error) {
	if _, err := strconv.Atoi(s); err == nil {
		s += "%"
	}
	p := Percent(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports ErrInvalidPercent unless p is N% with N in 0..100.
func (p Percent) Validate() error {
	m := percentPattern.FindStringSubmatch(string(p))
	if m == nil {
		return fmt.Errorf("%w: %q", ErrInvalidPercent, string(p))
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > 100 {
		return fmt.Errorf("%w: %q", ErrInvalidPercent, string(p))
	}
	return nil
}

// Visible reports whether a stylesheet carrying p shows the banner.
func (p Percent) Visible() bool {
	m := percentPattern.FindStringSubmatch(string(p))
	if m == nil {
		return true
	}
	n, err := strconv.Atoi(m[1])
	return err != nil || n != 0
}
