package svcctl

// Access rights and control codes from winsvc.h. They are declared here rather
// than taken from x/sys/windows so the control logic builds and tests on every
// platform.
const (
	managerEnumerateService uint32 = 0x0004

	serviceQueryStatus   uint32 = 0x0004
	serviceStart         uint32 = 0x0010
	serviceStop          uint32 = 0x0020
	servicePauseContinue uint32 = 0x0040

	controlStop     uint32 = 1
	controlPause    uint32 = 2
	controlContinue uint32 = 3
)

// handle is an SCM handle. It never leaves this package.
type handle uintptr

// nativeStatus mirrors SERVICE_STATUS.
type nativeStatus struct {
	ServiceType             uint32
	CurrentState            uint32
	ControlsAccepted        uint32
	Win32ExitCode           uint32
	ServiceSpecificExitCode uint32
	CheckPoint              uint32
	WaitHint                uint32
}

// nativeRecord is one decoded ENUM_SERVICE_STATUS_PROCESSW entry.
type nativeRecord struct {
	Name        string
	DisplayName string
}

// scmAPI is the set of Service Control Manager calls the package relies on.
// The Windows implementation calls advapi32; tests substitute a fake.
type scmAPI interface {
	openManager(access uint32) (handle, error)
	openService(m handle, name string, access uint32) (handle, error)
	closeHandle(h handle) error
	queryStatus(h handle) (nativeStatus, error)

	// enumServices lists driver and Win32 services in every state into buf.
	// An empty buf performs the sizing pass: needed is set and the
	// "more data" error is expected.
	enumServices(m handle, buf []byte, resume *uint32) (needed, returned uint32, err error)
	decodeRecords(buf []byte, n uint32) []nativeRecord
	isMoreData(err error) bool

	startService(h handle) error
	controlService(h handle, code uint32, status *nativeStatus) error
}
