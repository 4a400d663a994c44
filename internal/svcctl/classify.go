package svcctl

// ServiceType is the SCM service type bitmask (SERVICE_STATUS.dwServiceType).
type ServiceType uint32

// Service type categories recognised by the classifier.
const (
	Unclassified      ServiceType = 0x00
	KernelDriver      ServiceType = 0x01
	FileSystemDriver  ServiceType = 0x02
	Win32OwnProcess   ServiceType = 0x10
	Win32ShareProcess ServiceType = 0x20
	UserOwnProcess    ServiceType = 0x50
	UserShareProcess  ServiceType = 0x60
)

// Type labels.
const (
	TypeFileSystemDriver  = "File System Driver"
	TypeKernelDriver      = "Kernel Driver"
	TypeWin32OwnProcess   = "Win32 Own Process"
	TypeWin32ShareProcess = "Win32 Share Process"
	TypeUserOwnProcess    = "User Own Process"
	TypeUserShareProcess  = "User Share Process"
	TypeUnknown           = "unknown"
)

// Service state codes (SERVICE_STATUS.dwCurrentState).
const (
	StateCodeStopped         uint32 = 1
	StateCodeStartPending    uint32 = 2
	StateCodeStopPending     uint32 = 3
	StateCodeRunning         uint32 = 4
	StateCodeContinuePending uint32 = 5
	StateCodePausePending    uint32 = 6
	StateCodePaused          uint32 = 7
)

// State labels.
const (
	StateStopped         = "Stopped"
	StateStartPending    = "Start Pending"
	StateStopPending     = "Stop Pending"
	StateRunning         = "Running"
	StateContinuePending = "Continue Pending"
	StatePausePending    = "Pause Pending"
	StatePaused          = "Paused"
	StateUnknown         = "Unknown"
)

// typeOrder is tested top to bottom and the first entry sharing a bit with the
// mask wins. Reordering it changes the label of compound masks such as 0x50.
var typeOrder = []struct {
	bits  ServiceType
	label string
}{
	{FileSystemDriver, TypeFileSystemDriver},
	{KernelDriver, TypeKernelDriver},
	{Win32OwnProcess, TypeWin32OwnProcess},
	{Win32ShareProcess, TypeWin32ShareProcess},
	{UserOwnProcess, TypeUserOwnProcess},
	{UserShareProcess, TypeUserShareProcess},
}

var stateLabels = map[uint32]string{
	StateCodeStopped:         StateStopped,
	StateCodeStartPending:    StateStartPending,
	StateCodeStopPending:     StateStopPending,
	StateCodeRunning:         StateRunning,
	StateCodeContinuePending: StateContinuePending,
	StateCodePausePending:    StatePausePending,
	StateCodePaused:          StatePaused,
}

// Classification is the result of classifying a raw type mask and state code.
type Classification struct {
	State       string
	TypeLabel   string
	Class       ServiceType
	CanInteract bool
}

// Classify maps raw SCM type flags and a state code to labels and the
// interaction policy.
func Classify(mask, state uint32) Classification {
	label, class := ClassifyType(mask)
	return Classification{
		State:       ClassifyState(state),
		TypeLabel:   label,
		Class:       class,
		CanInteract: Eligible(class),
	}
}

// ClassifyState returns the label for an SCM state code.
func ClassifyState(code uint32) string {
	if label, ok := stateLabels[code]; ok {
		return label
	}
	return StateUnknown
}

// ClassifyType returns the label and canonical category for a type mask.
func ClassifyType(mask uint32) (string, ServiceType) {
	for _, t := range typeOrder {
		if mask&uint32(t.bits) != 0 {
			return t.label, t.bits
		}
	}
	return TypeUnknown, Unclassified
}

// Eligible reports whether services of the given category may be started,
// stopped, paused or resumed. Drivers and per-user services never are.
func Eligible(class ServiceType) bool {
	switch class {
	case Win32OwnProcess, Win32ShareProcess:
		return true
	default:
		return false
	}
}
