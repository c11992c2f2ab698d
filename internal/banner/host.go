package banner

// Host is whatever owns the SDK panels on screen. It is told to redraw them
// after every successful stylesheet write.
type Host interface {
	RefreshWindows()
}

// DeferredHost can additionally schedule a second refresh pass for panels
// that only pick up the new style on a later redraw.
type DeferredHost interface {
	Host
	RequestDeferredRefresh()
}

// HostFunc adapts a plain function to Host.
type HostFunc func()

func (f HostFunc) RefreshWindows() { f() }

type nopHost struct{}

func (nopHost) RefreshWindows() {}
