//go:build !windows

package svcctl

type unsupportedSCM struct{}

func newNativeSCM() scmAPI {
	return unsupportedSCM{}
}

func (unsupportedSCM) openManager(uint32) (handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupportedSCM) openService(handle, string, uint32) (handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupportedSCM) closeHandle(handle) error {
	return nil
}

func (unsupportedSCM) queryStatus(handle) (nativeStatus, error) {
	return nativeStatus{}, ErrUnsupportedPlatform
}

func (unsupportedSCM) enumServices(handle, []byte, *uint32) (uint32, uint32, error) {
	return 0, 0, ErrUnsupportedPlatform
}

func (unsupportedSCM) decodeRecords([]byte, uint32) []nativeRecord {
	return nil
}

func (unsupportedSCM) isMoreData(error) bool {
	return false
}

func (unsupportedSCM) startService(handle) error {
	return ErrUnsupportedPlatform
}

func (unsupportedSCM) controlService(handle, uint32, *nativeStatus) error {
	return ErrUnsupportedPlatform
}
