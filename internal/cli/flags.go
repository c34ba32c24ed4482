package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
)

// DashboardFlags holds the flags that tune the dashboard. Zero values mean
// "use the config file".
type DashboardFlags struct {
	Interval string
	Top      int
	Color    string
	Once     bool
	Snapshot string
	LogFile  string
}

// AddDashboardFlags registers the dashboard flags on a command.
func AddDashboardFlags(cmd *cobra.Command, flags *DashboardFlags) {
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "refresh interval (e.g., 500ms, 1s, 5s)")
	cmd.Flags().IntVar(&flags.Top, "top", 0, fmt.Sprintf("number of process rows (1-%d)", config.MaxTopProcesses))
	cmd.Flags().StringVar(&flags.Color, "color", "", "color output: auto, always, or never")
	cmd.Flags().BoolVar(&flags.Once, "once", false, "draw a single frame and exit")
	cmd.Flags().StringVar(&flags.Snapshot, "snapshot", "", "draw a saved YAML snapshot instead of the live host")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to this file while the dashboard runs")
}

// ApplyDashboardFlags overrides config values with the flags the user set,
// then validates the result.
func ApplyDashboardFlags(cfg *config.Config, flags DashboardFlags) error {
	if flags.Interval != "" {
		if _, err := ParseInterval(flags.Interval); err != nil {
			return err
		}
		cfg.Interval = flags.Interval
	}
	if flags.Top != 0 {
		cfg.TopProcesses = flags.Top
	}
	if flags.Color != "" {
		cfg.Output.Color = flags.Color
	}
	if flags.LogFile != "" {
		cfg.LogFile = flags.LogFile
	}

	return config.Validate(cfg)
}

// ParseInterval parses a refresh interval flag and enforces the minimum.
func ParseInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 500ms, 1s, or 5s.")
	}
	if d < config.MinInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %v to keep sampling overhead low.", config.MinInterval))
	}
	return d, nil
}
