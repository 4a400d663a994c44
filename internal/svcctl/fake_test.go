package svcctl

import (
	"errors"
	"fmt"
	"testing"
)

var (
	errMoreData     = errors.New("More data is available.")
	errAccessDenied = errors.New("Access is denied.")
	errNoService    = errors.New("The specified service does not exist as an installed service.")
)

const fakeRecordSize = 44

type fakeService struct {
	displayName string
	status      nativeStatus
	queryErr    error
	startErr    error
	controlErr  error
	// rights that openService refuses with errAccessDenied
	denied uint32
}

type controlCall struct {
	service string
	code    uint32
	status  nativeStatus
}

// fakeSCM is an in-memory Service Control Manager that tracks every handle it
// hands out.
type fakeSCM struct {
	t        *testing.T
	services map[string]*fakeService
	order    []nativeRecord

	managerErr  error
	enumSizeErr error
	enumReadErr error

	next         handle
	open         map[handle]string
	doubleCloses int
	managerOpens int

	starts   []string
	controls []controlCall
}

func newFakeSCM(t *testing.T) *fakeSCM {
	return &fakeSCM{
		t:        t,
		services: map[string]*fakeService{},
		open:     map[handle]string{},
		next:     100,
	}
}

// add registers a service and appends it to the enumeration order.
func (f *fakeSCM) add(name, display string, typ ServiceType, state uint32) *fakeService {
	s := &fakeService{
		displayName: display,
		status:      nativeStatus{ServiceType: uint32(typ), CurrentState: state},
	}
	f.services[name] = s
	f.order = append(f.order, nativeRecord{Name: name, DisplayName: display})
	return s
}

func (f *fakeSCM) controller() *Controller {
	return &Controller{api: f}
}

func (f *fakeSCM) assertAllClosed() {
	f.t.Helper()
	if len(f.open) != 0 {
		f.t.Fatalf("leaked %d handle(s): %v", len(f.open), f.open)
	}
	if f.doubleCloses != 0 {
		f.t.Fatalf("%d handle(s) closed more than once", f.doubleCloses)
	}
}

func (f *fakeSCM) assertNoControl() {
	f.t.Helper()
	if len(f.starts) != 0 || len(f.controls) != 0 {
		f.t.Fatalf("expected no control request, got starts=%v controls=%v", f.starts, f.controls)
	}
}

func (f *fakeSCM) alloc(owner string) handle {
	f.next++
	f.open[f.next] = owner
	return f.next
}

func (f *fakeSCM) openManager(access uint32) (handle, error) {
	if f.managerErr != nil {
		return 0, f.managerErr
	}
	if access != managerEnumerateService {
		return 0, fmt.Errorf("unexpected manager access %#x", access)
	}
	f.managerOpens++
	return f.alloc("manager"), nil
}

func (f *fakeSCM) openService(m handle, name string, access uint32) (handle, error) {
	if f.open[m] != "manager" {
		return 0, fmt.Errorf("openService on non-manager handle %d", m)
	}
	s, ok := f.services[name]
	if !ok {
		return 0, errNoService
	}
	if s.denied&access != 0 {
		return 0, errAccessDenied
	}
	return f.alloc(name), nil
}

func (f *fakeSCM) closeHandle(h handle) error {
	if _, ok := f.open[h]; !ok {
		f.doubleCloses++
		return errors.New("The handle is invalid.")
	}
	delete(f.open, h)
	return nil
}

func (f *fakeSCM) queryStatus(h handle) (nativeStatus, error) {
	s := f.serviceFor(h)
	if s.queryErr != nil {
		return nativeStatus{}, s.queryErr
	}
	return s.status, nil
}

func (f *fakeSCM) enumServices(m handle, buf []byte, resume *uint32) (uint32, uint32, error) {
	if f.open[m] != "manager" {
		return 0, 0, fmt.Errorf("enumServices on non-manager handle %d", m)
	}
	needed := uint32(len(f.order) * fakeRecordSize)
	if len(buf) == 0 {
		if f.enumSizeErr != nil {
			return 0, 0, f.enumSizeErr
		}
		if needed == 0 {
			return 0, 0, nil
		}
		return needed, 0, errMoreData
	}
	if f.enumReadErr != nil {
		return needed, 0, f.enumReadErr
	}
	if uint32(len(buf)) < needed {
		return needed, 0, errMoreData
	}
	return needed, uint32(len(f.order)), nil
}

func (f *fakeSCM) decodeRecords(buf []byte, n uint32) []nativeRecord {
	if int(n) > len(f.order) {
		f.t.Fatalf("decodeRecords asked for %d records, have %d", n, len(f.order))
	}
	return f.order[:n]
}

func (f *fakeSCM) isMoreData(err error) bool {
	return errors.Is(err, errMoreData)
}

func (f *fakeSCM) startService(h handle) error {
	name := f.open[h]
	s := f.serviceFor(h)
	if s.startErr != nil {
		return s.startErr
	}
	f.starts = append(f.starts, name)
	s.status.CurrentState = StateCodeStartPending
	return nil
}

func (f *fakeSCM) controlService(h handle, code uint32, status *nativeStatus) error {
	name := f.open[h]
	s := f.serviceFor(h)
	if s.controlErr != nil {
		return s.controlErr
	}
	f.controls = append(f.controls, controlCall{service: name, code: code, status: *status})
	switch code {
	case controlStop:
		s.status.CurrentState = StateCodeStopPending
	case controlPause:
		s.status.CurrentState = StateCodePausePending
	case controlContinue:
		s.status.CurrentState = StateCodeContinuePending
	}
	*status = s.status
	return nil
}

func (f *fakeSCM) serviceFor(h handle) *fakeService {
	f.t.Helper()
	name, ok := f.open[h]
	if !ok || name == "manager" {
		f.t.Fatalf("handle %d is not an open service handle", h)
	}
	return f.services[name]
}
