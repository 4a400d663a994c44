package svcctl

import (
	"github.com/breeze-rmm/svcctl/internal/logging"
)

var log = logging.L("svcctl")

// Controller queries and controls services through the Service Control
// Manager. It keeps no handles between calls and is safe for concurrent use.
type Controller struct {
	api scmAPI
}

// NewController returns a Controller bound to the local Service Control
// Manager. On platforms without one every call fails with
// ErrUnsupportedPlatform.
func NewController() *Controller {
	return &Controller{api: newNativeSCM()}
}

// Query opens the named service with query rights, reads its status once and
// classifies it. It opens a manager handle of its own.
func (c *Controller) Query(name string) (*Snapshot, error) {
	var snap *Snapshot
	err := withManager(c.api, managerEnumerateService, func(m handle) error {
		return withService(c.api, m, name, serviceQueryStatus, func(s *serviceGuard) error {
			st, err := c.api.queryStatus(s.h)
			if err != nil {
				return &Error{Kind: ErrStatusRead, Service: name, Err: err}
			}
			snap = newSnapshot(st)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func newSnapshot(st nativeStatus) *Snapshot {
	c := Classify(st.ServiceType, st.CurrentState)
	return &Snapshot{
		State:       c.State,
		TypeLabel:   c.TypeLabel,
		Class:       c.Class,
		CanInteract: c.CanInteract,
		status:      st,
	}
}
