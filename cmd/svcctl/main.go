package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/breeze-rmm/svcctl/internal/commands"
	"github.com/breeze-rmm/svcctl/internal/config"
	"github.com/breeze-rmm/svcctl/internal/logging"
	"github.com/breeze-rmm/svcctl/internal/privilege"
	"github.com/breeze-rmm/svcctl/internal/svcctl"
)

var (
	version   = "0.1.0"
	cfgFile   string
	output    string
	logLevel  string
	logFormat string

	filter          string
	interactiveOnly bool
	payloadJSON     string
)

var log = logging.L("cli")

// logFile is the rotating log writer opened by setup, if any.
var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:           "svcctl",
	Short:         "List and control Windows services",
	Long:          `svcctl lists drivers and Win32 services known to the Service Control Manager and starts, stops, pauses or resumes the Win32 services it is safe to touch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all services with their state and type",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := svcctl.EnumerateServices()
		if err != nil {
			return err
		}
		return writeRecords(cmd.OutOrStdout(), output, filterRecords(records, filter, interactiveOnly))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "svcctl v%s\n", version)
	},
}

var execCmd = &cobra.Command{
	Use:   "exec COMMAND",
	Short: "Run a raw command and print its JSON result",
	Long: "Run one of " + strings.Join(commands.Commands(), ", ") +
		" and print the command result envelope as JSON. Intended for automation.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]any{}
		if payloadJSON != "" {
			if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
				return fmt.Errorf("invalid --payload: %w", err)
			}
		}

		result, ok := commands.NewExecutor(nil).Dispatch(args[0], payload)
		if !ok {
			return fmt.Errorf("unknown command %q", args[0])
		}
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
			return err
		}
		if result.Status != commands.StatusCompleted {
			return errSilentFailure
		}
		return nil
	},
}

func controlCmd(action, short string, op func(*svcctl.Controller, string) (svcctl.ControlOutcome, error)) *cobra.Command {
	return &cobra.Command{
		Use:   action + " SERVICE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if privilege.RequiresElevation(action) && !privilege.IsElevated() {
				logging.FromContext(cmd.Context()).Warn("not running elevated, the request may be denied",
					logging.KeyService, args[0],
					logging.KeyAction, action)
			}
			outcome, err := op(svcctl.NewController(), args[0])
			if err != nil {
				return err
			}
			return writeOutcome(cmd.OutOrStdout(), output, outcome)
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is svcctl.yaml in the config directory)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")

	listCmd.Flags().StringVar(&filter, "filter", "", "only show services whose name or display name contains this text")
	listCmd.Flags().BoolVar(&interactiveOnly, "interactive-only", false, "only show services that can be controlled")
	execCmd.Flags().StringVar(&payloadJSON, "payload", "", `command payload as JSON, e.g. {"service_name":"Spooler"}`)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(controlCmd(svcctl.ActionStart, "Start a service", (*svcctl.Controller).Start))
	rootCmd.AddCommand(controlCmd(svcctl.ActionStop, "Stop a service", (*svcctl.Controller).Stop))
	rootCmd.AddCommand(controlCmd(svcctl.ActionPause, "Pause a service", (*svcctl.Controller).Pause))
	rootCmd.AddCommand(controlCmd(svcctl.ActionResume, "Resume a paused service", (*svcctl.Controller).Resume))
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		if err != errSilentFailure {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and initializes logging.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if output != "" {
		cfg.Output = output
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	result := cfg.ValidateTiered()
	if result.HasFatals() {
		return result.Fatals[0]
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		fw, err := logging.NewFileWriter(logging.FileOptions{
			Path:       cfg.LogFile,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
		})
		if err != nil {
			return err
		}
		logFile = fw
		logOut = logging.TeeWriter(os.Stderr, fw)
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel, logOut)

	for _, w := range result.Warnings {
		log.Warn("config validation", logging.KeyError, w)
	}

	output = strings.ToLower(cfg.Output)
	cmd.SetContext(logging.NewContext(cmd.Context(), log.With(logging.KeyCommand, cmd.Name())))
	logging.FromContext(cmd.Context()).Debug("command starting")
	return nil
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close log file:", err)
	}
	logFile = nil
}
