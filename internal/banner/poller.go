package banner

import (
	"io/fs"
	"os"
	"time"
)

// Poller notices modifications to the stylesheet made outside this process,
// such as an SDK reinstall, and asks the host to redraw. It only compares
// modification times and never looks at the banner state.
type Poller struct {
	path string
	host Host
	last time.Time
	stat func(string) (fs.FileInfo, error)
}

// NewPoller returns a Poller that has not seen the file yet, so its first
// successful Check always refreshes.
func NewPoller(path string, host Host) *Poller {
	if host == nil {
		host = nopHost{}
	}
	return &Poller{path: path, host: host, stat: os.Stat}
}

// Check stats the file and refreshes the host when its modification time
// differs from the last one seen. A missing or unreadable file is ignored.
func (p *Poller) Check() bool {
	info, err := p.stat(p.path)
	if err != nil {
		return false
	}
	mt := info.ModTime()
	if mt.Equal(p.last) {
		return false
	}
	p.last = mt
	p.host.RefreshWindows()
	return true
}

// LastSeen returns the modification time recorded by the last Check.
func (p *Poller) LastSeen() time.Time { return p.last }
