package svcctl

// withManager opens the Service Control Manager with the requested access,
// runs fn and closes the handle before returning, whatever fn does.
func withManager(api scmAPI, access uint32, fn func(m handle) error) error {
	m, err := api.openManager(access)
	if err != nil {
		return &Error{Kind: ErrManagerOpen, Err: err}
	}
	defer closeHandle(api, m, "manager")

	return fn(m)
}

// serviceGuard owns one open service handle. release may be called early;
// the deferred release in withService then does nothing.
type serviceGuard struct {
	api      scmAPI
	h        handle
	name     string
	released bool
}

func (g *serviceGuard) release() {
	if g.released {
		return
	}
	g.released = true
	closeHandle(g.api, g.h, g.name)
}

// withService opens the named service through m and hands fn a guard that is
// released when fn returns.
func withService(api scmAPI, m handle, name string, access uint32, fn func(s *serviceGuard) error) error {
	h, err := api.openService(m, name, access)
	if err != nil {
		return &Error{Kind: ErrServiceOpen, Service: name, Err: err}
	}
	g := &serviceGuard{api: api, h: h, name: name}
	defer g.release()

	return fn(g)
}

func closeHandle(api scmAPI, h handle, owner string) {
	if err := api.closeHandle(h); err != nil {
		log.Debug("close service handle failed", "owner", owner, "error", err)
	}
}
