package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	"github.com/breeze-rmm/svcctl/internal/svcctl"
)

// errSilentFailure makes main exit non-zero without printing anything more;
// the failure was already written to stdout.
var errSilentFailure = errors.New("command failed")

func filterRecords(records []svcctl.ServiceRecord, search string, interactiveOnly bool) []svcctl.ServiceRecord {
	if search == "" && !interactiveOnly {
		return records
	}
	searchLower := strings.ToLower(search)

	filtered := make([]svcctl.ServiceRecord, 0, len(records))
	for _, r := range records {
		if interactiveOnly && !r.CanInteract {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), searchLower) &&
			!strings.Contains(strings.ToLower(r.DisplayName), searchLower) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func writeRecords(w io.Writer, format string, records []svcctl.ServiceRecord) error {
	switch format {
	case "json":
		return writeJSON(w, records)
	case "yaml":
		return writeYAML(w, records)
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("NAME", "DISPLAY NAME", "STATUS", "TYPE", "CONTROLLABLE")
	for _, r := range records {
		table.AddRow(r.Name, r.DisplayName, r.Status, r.ServiceType, yesNo(r.CanInteract))
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

func writeOutcome(w io.Writer, format string, outcome svcctl.ControlOutcome) error {
	switch format {
	case "json":
		return writeJSON(w, outcome)
	case "yaml":
		return writeYAML(w, outcome)
	}

	if !outcome.Applied {
		_, err := fmt.Fprintf(w, "%s: not a Win32 service process, %s skipped\n", outcome.Service, outcome.Action)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s requested\n", outcome.Service, outcome.Action)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
