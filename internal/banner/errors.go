package banner

import (
	"errors"
	"fmt"
)

var (
	// ErrFileMissing indicates the stylesheet does not exist.
	ErrFileMissing = errors.New("SDK stylesheet missing")
	// ErrMalformedFile indicates the stylesheet does not have the expected shape.
	ErrMalformedFile = errors.New("SDK stylesheet malformed")
	// ErrInvalidPercent indicates a visibility value outside 0%..100%.
	ErrInvalidPercent = errors.New("percent must look like 0% through 100%")
	// ErrIO matches any *IOError via errors.Is.
	ErrIO = errors.New("stylesheet I/O failed")
)

// IOError reports an unexpected filesystem failure while reading or writing
// the stylesheet. The file may be partially written when Op is "write" and
// atomic writes are disabled.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
