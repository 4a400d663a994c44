package svcctl

import (
	"github.com/breeze-rmm/svcctl/internal/logging"
)

// transition describes one control operation: the rights its service handle
// needs and the call that performs it.
type transition struct {
	action string
	access uint32
	issue  func(api scmAPI, s *serviceGuard, snap *Snapshot) error
}

var (
	startTransition = transition{
		action: ActionStart,
		access: serviceStart,
		issue: func(api scmAPI, s *serviceGuard, _ *Snapshot) error {
			return api.startService(s.h)
		},
	}
	stopTransition = transition{
		action: ActionStop,
		access: serviceStop,
		issue: func(api scmAPI, s *serviceGuard, snap *Snapshot) error {
			st := snap.status
			err := api.controlService(s.h, controlStop, &st)
			s.release()
			return err
		},
	}
	pauseTransition = transition{
		action: ActionPause,
		access: servicePauseContinue,
		issue: func(api scmAPI, s *serviceGuard, snap *Snapshot) error {
			st := snap.status
			return api.controlService(s.h, controlPause, &st)
		},
	}
	resumeTransition = transition{
		action: ActionResume,
		access: servicePauseContinue,
		issue: func(api scmAPI, s *serviceGuard, snap *Snapshot) error {
			st := snap.status
			return api.controlService(s.h, controlContinue, &st)
		},
	}
)

// Start starts the named service with no arguments.
func (c *Controller) Start(name string) (ControlOutcome, error) {
	return c.apply(name, startTransition)
}

// Stop sends the stop control to the named service.
func (c *Controller) Stop(name string) (ControlOutcome, error) {
	return c.apply(name, stopTransition)
}

// Pause sends the pause control to the named service.
func (c *Controller) Pause(name string) (ControlOutcome, error) {
	return c.apply(name, pauseTransition)
}

// Resume sends the continue control to the named service.
func (c *Controller) Resume(name string) (ControlOutcome, error) {
	return c.apply(name, resumeTransition)
}

// apply opens the service with the rights t needs, re-reads its status and
// issues t only when the service is eligible. An ineligible service is left
// untouched and reported with Applied false and a nil error.
func (c *Controller) apply(name string, t transition) (ControlOutcome, error) {
	out := ControlOutcome{Service: name, Action: t.action}
	logger := log.With(logging.KeyService, name, logging.KeyAction, t.action)

	err := withManager(c.api, managerEnumerateService, func(m handle) error {
		return withService(c.api, m, name, t.access, func(s *serviceGuard) error {
			snap, err := c.Query(name)
			if err != nil {
				return err
			}
			if !snap.CanInteract {
				logger.Info("service not eligible for control, no action taken", "serviceType", snap.TypeLabel)
				return nil
			}
			if err := t.issue(c.api, s, snap); err != nil {
				return &Error{Kind: ErrControlSignal, Service: name, Action: t.action, Err: err}
			}
			out.Applied = true
			return nil
		})
	})
	if err != nil {
		logger.Debug("service control failed", logging.KeyError, err)
		return out, err
	}

	if out.Applied {
		logger.Info("service control issued")
	}
	return out, nil
}
