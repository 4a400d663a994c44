package commands

import (
	"encoding/json"
	"fmt"
)

// Command types
const (
	CmdEnumerateServices = "enumerate_services"
	CmdStopService       = "stop_service"
	CmdStartService      = "start_service"
	CmdPauseService      = "pause_service"
	CmdResumeService     = "resume_service"
)

// PayloadServiceName is the payload key naming the target service.
const PayloadServiceName = "service_name"

// Result statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CommandResult represents the result of a command execution
type CommandResult struct {
	Status     string `json:"status"` // completed, failed
	ExitCode   int    `json:"exitCode,omitempty"`
	Stdout     string `json:"stdout,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
}

// NewSuccessResult creates a successful command result with data
func NewSuccessResult(data any, durationMs int64) CommandResult {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return CommandResult{
			Status:     StatusFailed,
			ExitCode:   1,
			Error:      fmt.Sprintf("failed to marshal result: %v", err),
			DurationMs: durationMs,
		}
	}
	return CommandResult{
		Status:     StatusCompleted,
		ExitCode:   0,
		Stdout:     string(jsonData),
		DurationMs: durationMs,
	}
}

// NewErrorResult creates a failed command result
func NewErrorResult(err error, durationMs int64) CommandResult {
	return CommandResult{
		Status:     StatusFailed,
		ExitCode:   1,
		Error:      err.Error(),
		DurationMs: durationMs,
	}
}

func GetPayloadString(payload map[string]any, key string, defaultVal string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultVal
}
