package svcctl

import (
	"errors"
	"testing"
)

func TestWithManagerReleasesOnError(t *testing.T) {
	f := newFakeSCM(t)
	boom := errors.New("boom")

	err := withManager(f, managerEnumerateService, func(m handle) error {
		if len(f.open) != 1 {
			t.Fatalf("expected one open handle inside scope, got %d", len(f.open))
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	f.assertAllClosed()
}

func TestWithManagerReleasesOnPanic(t *testing.T) {
	f := newFakeSCM(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = withManager(f, managerEnumerateService, func(m handle) error {
			panic("scope panicked")
		})
	}()
	f.assertAllClosed()
}

func TestServiceGuardExplicitReleaseIsIdempotent(t *testing.T) {
	f := newFakeSCM(t)
	f.add("Spooler", "Print Spooler", Win32OwnProcess, StateCodeRunning)

	err := withManager(f, managerEnumerateService, func(m handle) error {
		return withService(f, m, "Spooler", serviceStop, func(s *serviceGuard) error {
			s.release()
			s.release()
			if len(f.open) != 1 {
				t.Fatalf("service handle still open after release: %v", f.open)
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertAllClosed()
}

func TestWithServiceOpenFailureClosesManager(t *testing.T) {
	f := newFakeSCM(t)

	called := false
	err := withManager(f, managerEnumerateService, func(m handle) error {
		return withService(f, m, "Missing", serviceQueryStatus, func(*serviceGuard) error {
			called = true
			return nil
		})
	})
	if called {
		t.Fatal("scope ran without an open service handle")
	}
	var scmErr *Error
	if !errors.As(err, &scmErr) || scmErr.Service != "Missing" {
		t.Fatalf("err = %v, want *Error for Missing", err)
	}
	f.assertAllClosed()
}
