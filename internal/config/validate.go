package config

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

var validOutputs = map[string]bool{
	"table": true,
	"json":  true,
	"yaml":  true,
}

// ValidationResult separates problems that must stop the command from ones
// that were corrected in place.
type ValidationResult struct {
	Fatals   []error
	Warnings []error
}

func (r ValidationResult) HasFatals() bool {
	return len(r.Fatals) > 0
}

// ValidateTiered checks the config. Out-of-range sizes are clamped and
// reported as warnings; unusable values are fatal.
func (c *Config) ValidateTiered() ValidationResult {
	var result ValidationResult

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		result.Fatals = append(result.Fatals, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error)", c.LogLevel))
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		result.Fatals = append(result.Fatals, fmt.Errorf("log_format %q is not valid (use text or json)", c.LogFormat))
	}

	if c.Output != "" && !validOutputs[strings.ToLower(c.Output)] {
		result.Fatals = append(result.Fatals, fmt.Errorf("output %q is not valid (use table, json or yaml)", c.Output))
	}

	for _, r := range c.LogFile {
		if unicode.IsControl(r) {
			result.Fatals = append(result.Fatals, fmt.Errorf("log_file contains control characters"))
			break
		}
	}

	if c.LogMaxSizeMB < 1 {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_max_size_mb %d is below minimum 1, clamping", c.LogMaxSizeMB))
		c.LogMaxSizeMB = 1
	} else if c.LogMaxSizeMB > 1024 {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_max_size_mb %d exceeds maximum 1024, clamping", c.LogMaxSizeMB))
		c.LogMaxSizeMB = 1024
	}

	if c.LogMaxBackups < 0 {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_max_backups %d is negative, clamping", c.LogMaxBackups))
		c.LogMaxBackups = 0
	} else if c.LogMaxBackups > 100 {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_max_backups %d exceeds maximum 100, clamping", c.LogMaxBackups))
		c.LogMaxBackups = 100
	}

	if c.LogMaxAgeDays < 0 {
		result.Warnings = append(result.Warnings, fmt.Errorf("log_max_age_days %d is negative, clamping", c.LogMaxAgeDays))
		c.LogMaxAgeDays = 0
	}

	return result
}

// Validate returns every problem found and logs each as a warning.
func (c *Config) Validate() []error {
	result := c.ValidateTiered()
	errs := append(result.Fatals, result.Warnings...)
	for _, err := range errs {
		slog.Warn("config validation", "error", err)
	}
	return errs
}
