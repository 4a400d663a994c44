package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/breeze-rmm/svcctl/internal/logging"
	"github.com/breeze-rmm/svcctl/internal/privilege"
	"github.com/breeze-rmm/svcctl/internal/svcctl"
)

var log = logging.L("commands")

var errNameRequired = errors.New("service name is required")

// ServiceController is the part of svcctl.Controller the handlers use.
type ServiceController interface {
	Enumerate() ([]svcctl.ServiceRecord, error)
	Start(name string) (svcctl.ControlOutcome, error)
	Stop(name string) (svcctl.ControlOutcome, error)
	Pause(name string) (svcctl.ControlOutcome, error)
	Resume(name string) (svcctl.ControlOutcome, error)
}

// Handler processes a command payload and returns a result.
type Handler func(c ServiceController, payload map[string]any) CommandResult

// handlerRegistry maps command types to their handlers. It is read-only after
// package init.
var handlerRegistry = map[string]Handler{
	CmdEnumerateServices: handleEnumerateServices,
	CmdStopService:       controlHandler(svcctl.ActionStop, ServiceController.Stop),
	CmdStartService:      controlHandler(svcctl.ActionStart, ServiceController.Start),
	CmdPauseService:      controlHandler(svcctl.ActionPause, ServiceController.Pause),
	CmdResumeService:     controlHandler(svcctl.ActionResume, ServiceController.Resume),
}

// Executor dispatches commands to a ServiceController.
type Executor struct {
	ctrl ServiceController
}

// NewExecutor returns an Executor over ctrl, or over the local Service
// Control Manager when ctrl is nil.
func NewExecutor(ctrl ServiceController) *Executor {
	if ctrl == nil {
		ctrl = svcctl.NewController()
	}
	return &Executor{ctrl: ctrl}
}

// Dispatch looks up the handler for a command type and executes it,
// centralizing timing measurement. Returns false if no handler was found.
func (e *Executor) Dispatch(cmdType string, payload map[string]any) (CommandResult, bool) {
	handler, ok := handlerRegistry[cmdType]
	if !ok {
		log.Warn("no handler registered for command type", logging.KeyCommand, cmdType)
		return CommandResult{}, false
	}

	start := time.Now()
	result := handler(e.ctrl, payload)
	if result.DurationMs <= 0 {
		result.DurationMs = time.Since(start).Milliseconds()
	}
	log.Debug("command dispatched",
		logging.KeyCommand, cmdType,
		"status", result.Status,
		logging.KeyDurationMs, result.DurationMs)
	return result, true
}

// Commands returns the registered command types.
func Commands() []string {
	return []string{
		CmdEnumerateServices,
		CmdStopService,
		CmdStartService,
		CmdPauseService,
		CmdResumeService,
	}
}

func handleEnumerateServices(c ServiceController, _ map[string]any) CommandResult {
	startTime := time.Now()

	services, err := c.Enumerate()
	if err != nil {
		return NewErrorResult(err, time.Since(startTime).Milliseconds())
	}

	return NewSuccessResult(services, time.Since(startTime).Milliseconds())
}

func controlHandler(action string, op func(ServiceController, string) (svcctl.ControlOutcome, error)) Handler {
	return func(c ServiceController, payload map[string]any) CommandResult {
		startTime := time.Now()

		name := GetPayloadString(payload, PayloadServiceName, "")
		if strings.TrimSpace(name) == "" {
			return NewErrorResult(errNameRequired, time.Since(startTime).Milliseconds())
		}

		// Warn only; the Service Control Manager has the final say on access.
		if privilege.RequiresElevation(action) && !privilege.IsElevated() {
			log.Warn("service control requested from a non-elevated process",
				logging.KeyService, name,
				logging.KeyAction, action)
		}

		outcome, err := op(c, name)
		if err != nil {
			return NewErrorResult(err, time.Since(startTime).Milliseconds())
		}

		return NewSuccessResult(outcome, time.Since(startTime).Milliseconds())
	}
}
