//go:build windows

package svcctl

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

type nativeSCM struct{}

func newNativeSCM() scmAPI {
	return nativeSCM{}
}

func (nativeSCM) openManager(access uint32) (handle, error) {
	h, err := windows.OpenSCManager(nil, nil, access)
	if err != nil {
		return 0, err
	}
	return handle(h), nil
}

func (nativeSCM) openService(m handle, name string, access uint32) (handle, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	h, err := windows.OpenService(windows.Handle(m), namePtr, access)
	if err != nil {
		return 0, err
	}
	return handle(h), nil
}

func (nativeSCM) closeHandle(h handle) error {
	return windows.CloseServiceHandle(windows.Handle(h))
}

func (nativeSCM) queryStatus(h handle) (nativeStatus, error) {
	var st windows.SERVICE_STATUS
	if err := windows.QueryServiceStatus(windows.Handle(h), &st); err != nil {
		return nativeStatus{}, err
	}
	return fromWindowsStatus(st), nil
}

func (nativeSCM) enumServices(m handle, buf []byte, resume *uint32) (uint32, uint32, error) {
	var needed, returned uint32
	var first *byte
	if len(buf) > 0 {
		first = &buf[0]
	}
	err := windows.EnumServicesStatusEx(
		windows.Handle(m),
		windows.SC_ENUM_PROCESS_INFO,
		windows.SERVICE_WIN32|windows.SERVICE_DRIVER,
		windows.SERVICE_STATE_ALL,
		first,
		uint32(len(buf)),
		&needed,
		&returned,
		resume,
		nil,
	)
	return needed, returned, err
}

func (nativeSCM) decodeRecords(buf []byte, n uint32) []nativeRecord {
	if n == 0 || len(buf) == 0 {
		return nil
	}
	size := unsafe.Sizeof(windows.ENUM_SERVICE_STATUS_PROCESS{})
	if uintptr(n)*size > uintptr(len(buf)) {
		n = uint32(uintptr(len(buf)) / size)
	}

	entries := unsafe.Slice((*windows.ENUM_SERVICE_STATUS_PROCESS)(unsafe.Pointer(&buf[0])), n)
	records := make([]nativeRecord, 0, n)
	for i := range entries {
		records = append(records, nativeRecord{
			Name:        utf16PtrToString(entries[i].ServiceName),
			DisplayName: utf16PtrToString(entries[i].DisplayName),
		})
	}
	return records
}

func (nativeSCM) isMoreData(err error) bool {
	return errors.Is(err, windows.ERROR_MORE_DATA) || errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER)
}

func (nativeSCM) startService(h handle) error {
	return windows.StartService(windows.Handle(h), 0, nil)
}

func (nativeSCM) controlService(h handle, code uint32, status *nativeStatus) error {
	st := toWindowsStatus(*status)
	err := windows.ControlService(windows.Handle(h), code, &st)
	*status = fromWindowsStatus(st)
	return err
}

// utf16PtrToString copies a string out of the enumeration buffer. The buffer
// is owned by Go and must not be freed with LocalFree.
func utf16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	return windows.UTF16PtrToString(p)
}

func fromWindowsStatus(st windows.SERVICE_STATUS) nativeStatus {
	return nativeStatus{
		ServiceType:             st.ServiceType,
		CurrentState:            st.CurrentState,
		ControlsAccepted:        st.ControlsAccepted,
		Win32ExitCode:           st.Win32ExitCode,
		ServiceSpecificExitCode: st.ServiceSpecificExitCode,
		CheckPoint:              st.CheckPoint,
		WaitHint:                st.WaitHint,
	}
}

func toWindowsStatus(st nativeStatus) windows.SERVICE_STATUS {
	return windows.SERVICE_STATUS{
		ServiceType:             st.ServiceType,
		CurrentState:            st.CurrentState,
		ControlsAccepted:        st.ControlsAccepted,
		Win32ExitCode:           st.Win32ExitCode,
		ServiceSpecificExitCode: st.ServiceSpecificExitCode,
		CheckPoint:              st.CheckPoint,
		WaitHint:                st.WaitHint,
	}
}
