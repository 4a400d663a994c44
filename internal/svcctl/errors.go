package svcctl

import "errors"

// Failure kinds. Every error returned by this package matches one of the
// first six through errors.Is. ErrUnsupportedPlatform is the OS error carried
// inside an ErrManagerOpen (or other kind) on platforms without an SCM.
var (
	ErrManagerOpen         = errors.New("Failed to open service manager")
	ErrServiceOpen         = errors.New("Failed to open service")
	ErrStatusRead          = errors.New("Failed to query service status")
	ErrEnumerationSize     = errors.New("Failed to size service enumeration")
	ErrEnumerationRead     = errors.New("Failed to enumerate services")
	ErrControlSignal       = errors.New("Failed to control service")
	ErrUnsupportedPlatform = errors.New("service control is only supported on Windows")
)

// Error carries the failure kind, the service involved (if any) and the
// operating system error, whose text is kept verbatim.
type Error struct {
	Kind    error
	Service string
	Action  string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Service != "" {
		msg += " " + e.Service
	}
	if e.Action != "" {
		msg += " (" + e.Action + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
