package privilege

import "github.com/breeze-rmm/svcctl/internal/svcctl"

// elevatedActions lists the service actions the Service Control Manager
// refuses to non-administrators for most services. Enumeration and status
// queries are allowed for any interactive user.
var elevatedActions = map[string]bool{
	svcctl.ActionStart:  true,
	svcctl.ActionStop:   true,
	svcctl.ActionPause:  true,
	svcctl.ActionResume: true,
}

// RequiresElevation returns true if the action needs an elevated process.
func RequiresElevation(action string) bool {
	return elevatedActions[action]
}
