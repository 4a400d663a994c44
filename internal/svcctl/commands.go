package svcctl

var defaultController = NewController()

// EnumerateServices lists all services on the local machine.
func EnumerateServices() ([]ServiceRecord, error) {
	return defaultController.Enumerate()
}

// StopService stops the named service. An ineligible service is a no-op.
func StopService(name string) error {
	_, err := defaultController.Stop(name)
	return err
}

// StartService starts the named service. An ineligible service is a no-op.
func StartService(name string) error {
	_, err := defaultController.Start(name)
	return err
}

// PauseService pauses the named service. An ineligible service is a no-op.
func PauseService(name string) error {
	_, err := defaultController.Pause(name)
	return err
}

// ResumeService resumes the named service. An ineligible service is a no-op.
func ResumeService(name string) error {
	_, err := defaultController.Resume(name)
	return err
}
