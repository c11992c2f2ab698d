//go:build !linux

package editor

func listNative(int) ([]Process, error) {
	return nil, ErrUnsupported
}
