package svcctl

// ServiceRecord describes one service as returned by Enumerate. Records are
// built fresh on every call and never cached.
type ServiceRecord struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Status      string `json:"status" yaml:"status"`
	ServiceType string `json:"service_type" yaml:"service_type"`
	CanInteract bool   `json:"can_interact" yaml:"can_interact"`
}

// Snapshot is the classified status of a single service at the moment it was
// queried. It must not be reused across calls; service state can change at
// any time.
type Snapshot struct {
	State       string
	TypeLabel   string
	Class       ServiceType
	CanInteract bool

	status nativeStatus
}

// RawType returns the unclassified service type flags reported by the SCM.
func (s *Snapshot) RawType() uint32 {
	return s.status.ServiceType
}

// RawState returns the numeric state code reported by the SCM.
func (s *Snapshot) RawState() uint32 {
	return s.status.CurrentState
}

// ControlOutcome reports what a control operation did. Applied is false when
// the service was not eligible for control and no request was issued.
type ControlOutcome struct {
	Service string `json:"name" yaml:"name"`
	Action  string `json:"action" yaml:"action"`
	Applied bool   `json:"applied" yaml:"applied"`
}

// Control actions.
const (
	ActionStart  = "start"
	ActionStop   = "stop"
	ActionPause  = "pause"
	ActionResume = "resume"
)

// unknownName replaces names that decode to an empty string.
const unknownName = "unknown"
