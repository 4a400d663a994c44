package svcctl

import (
	"errors"
	"strings"
	"testing"
)

func TestQueryClassifiesStatus(t *testing.T) {
	f := newFakeSCM(t)
	f.add("Spooler", "Print Spooler", Win32OwnProcess, StateCodeRunning)

	snap, err := f.controller().Query("Spooler")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if snap.State != StateRunning {
		t.Errorf("State = %q, want %q", snap.State, StateRunning)
	}
	if snap.TypeLabel != TypeWin32OwnProcess || snap.Class != Win32OwnProcess {
		t.Errorf("type = (%q, %#x), want (%q, %#x)", snap.TypeLabel, snap.Class, TypeWin32OwnProcess, Win32OwnProcess)
	}
	if !snap.CanInteract {
		t.Error("Win32 own process should be eligible")
	}
	if snap.RawState() != StateCodeRunning || snap.RawType() != uint32(Win32OwnProcess) {
		t.Errorf("raw status = (%d, %#x)", snap.RawState(), snap.RawType())
	}
	f.assertAllClosed()
}

func TestQueryEligibilityMatchesClassifier(t *testing.T) {
	masks := []uint32{0x01, 0x02, 0x10, 0x20, 0x40, 0x50, 0x60, 0x110, 0x00, 0x200}
	for _, mask := range masks {
		f := newFakeSCM(t)
		f.add("svc", "svc", ServiceType(mask), StateCodeStopped)

		snap, err := f.controller().Query("svc")
		if err != nil {
			t.Fatalf("Query(mask %#x): %v", mask, err)
		}
		_, class := ClassifyType(mask)
		if snap.CanInteract != Eligible(class) {
			t.Errorf("mask %#x: CanInteract = %v, classifier says %v", mask, snap.CanInteract, Eligible(class))
		}
		f.assertAllClosed()
	}
}

func TestQueryErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fakeSCM)
		kind  error
		text  string
	}{
		{
			name:  "manager unavailable",
			setup: func(f *fakeSCM) { f.managerErr = errAccessDenied },
			kind:  ErrManagerOpen,
			text:  "Failed to open service manager: Access is denied.",
		},
		{
			name:  "service missing",
			setup: func(f *fakeSCM) {},
			kind:  ErrServiceOpen,
			text:  "Failed to open service Spooler: The specified service does not exist as an installed service.",
		},
		{
			name: "access denied",
			setup: func(f *fakeSCM) {
				f.add("Spooler", "Print Spooler", Win32OwnProcess, StateCodeRunning).denied = serviceQueryStatus
			},
			kind: ErrServiceOpen,
			text: "Access is denied.",
		},
		{
			name: "status read fails",
			setup: func(f *fakeSCM) {
				f.add("Spooler", "Print Spooler", Win32OwnProcess, StateCodeRunning).queryErr = errors.New("The RPC server is unavailable.")
			},
			kind: ErrStatusRead,
			text: "Failed to query service status Spooler: The RPC server is unavailable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeSCM(t)
			tt.setup(f)

			snap, err := f.controller().Query("Spooler")
			if err == nil {
				t.Fatalf("expected error, got snapshot %+v", snap)
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error %v is not %v", err, tt.kind)
			}
			if !strings.Contains(err.Error(), tt.text) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.text)
			}
			f.assertAllClosed()
		})
	}
}

func TestQueryDoesNotCacheState(t *testing.T) {
	f := newFakeSCM(t)
	s := f.add("Spooler", "Print Spooler", Win32OwnProcess, StateCodeRunning)
	c := f.controller()

	first, err := c.Query("Spooler")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	s.status.CurrentState = StateCodeStopped
	second, err := c.Query("Spooler")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if first.State != StateRunning || second.State != StateStopped {
		t.Fatalf("states = %q then %q, want Running then Stopped", first.State, second.State)
	}
	if f.managerOpens != 2 {
		t.Fatalf("managerOpens = %d, want one per query", f.managerOpens)
	}
}
