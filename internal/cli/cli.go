// Package cli wires the gongmo commands: the default collect-and-sync
// pipeline plus list, auth, publish, cleanup and resync maintenance
// commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jiundev/gongmo/internal/calendar"
	"github.com/jiundev/gongmo/internal/config"
	"github.com/jiundev/gongmo/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// ErrItemErrors marks a run that completed but recorded per-item errors;
// the process must exit non-zero without treating the run as a crash.
var ErrItemErrors = errors.New("run completed with item errors")

var (
	flagConfig  string
	flagVerbose bool
	flagDryRun  bool
	flagNoPush  bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gongmo",
		Short: "공모주 일정을 수집해 구글 캘린더에 등록하는 봇",
		Long: `Collects Korean IPO (공모주) schedules from a public source and
registers each milestone as a calendar event. Also exports the collected
data as a static site artifact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPipeline,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Collect only, skip calendar sync")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAuthCmd())
	cmd.AddCommand(newPublishCmd())
	cmd.AddCommand(newCleanupCmd())
	cmd.AddCommand(newResyncCmd())

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, ErrItemErrors) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return ExitError
	}
	return ExitSuccess
}

// setup loads configuration and configures the default logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	level := parseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	return cfg, nil
}

func parseLevel(s string) logger.Level {
	switch s {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// newCalendarClient resolves credentials and builds the sync client.
// Missing credentials are fatal before any calendar call is made.
func newCalendarClient(cfg *config.Config) (*calendar.Client, error) {
	token, err := calendar.LoadToken(cfg)
	if err != nil {
		if errors.Is(err, calendar.ErrNoCredentials) {
			logger.Error("calendar credentials missing", logger.Fields{
				"hint": fmt.Sprintf("export %s or store a token at %s", config.EnvCalendarToken, cfg.TokenFile),
			}, err)
		}
		return nil, err
	}

	if cfg.CalendarID == "" {
		return nil, fmt.Errorf("calendar_id is not configured (set %s or the config file)", config.EnvCalendarID)
	}

	return calendar.NewClient(cfg.CalendarAPIBase, cfg.CalendarID, token), nil
}

// tally folds sync results into the run counters.
func tally(counters *logger.Counters, results []calendar.SyncResult) {
	for _, r := range results {
		switch r.Action {
		case calendar.ActionCreate:
			counters.Incr("created")
		case calendar.ActionUpdate:
			counters.Incr("updated")
		case calendar.ActionSkip:
			counters.Incr("skipped")
		case calendar.ActionDelete:
			counters.Incr("deleted")
		case calendar.ActionError:
			counters.Incr("errors")
		}
	}
}

// printSummary logs the per-outcome counts for the run.
func printSummary(counters *logger.Counters) {
	snapshot := counters.Snapshot()
	fields := logger.Fields{}
	for k, v := range snapshot {
		fields[k] = v
	}
	logger.Info("run summary", fields)
}

// finish converts the error counter into the process outcome.
func finish(counters *logger.Counters) error {
	printSummary(counters)
	if counters.Get("errors") > 0 {
		return ErrItemErrors
	}
	return nil
}
