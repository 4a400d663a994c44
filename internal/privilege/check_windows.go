//go:build windows

package privilege

import "golang.org/x/sys/windows"

// IsElevated returns true if the process token is elevated (UAC "Run as
// administrator" or the LocalSystem account).
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
