package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// CPU usage over a shorter window is mostly scheduler noise.
const minUsefulSample = 500 * time.Millisecond

// Command-specific flags
var (
	snapshotOutputFlag string
	snapshotSampleFlag string
)

// snapshotCmd saves one sample of the host as YAML
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save one sample of the host as YAML",
	Long: `Sample the local host once and write the snapshot as YAML.

CPU usage is measured over the sample window (default: the refresh
interval). The file can be drawn later with 'sysmon --snapshot'.

Examples:
  sysmon snapshot > now.yaml
  sysmon snapshot -o now.yaml --sample 2s
  sysmon --snapshot now.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd, snapshotOutputFlag, snapshotSampleFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sysmon.

Examples:
  # Bash
  sysmon completion bash > /etc/bash_completion.d/sysmon

  # Zsh
  sysmon completion zsh > "${fpath[1]}/_sysmon"

  # Fish
  sysmon completion fish > ~/.config/fish/completions/sysmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOutputFlag, "output", "o", "", "write to this file instead of stdout")
	snapshotCmd.Flags().StringVar(&snapshotSampleFlag, "sample", "", "CPU sample window (e.g., 500ms, 2s)")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(completionCmd)
}

// snapshotCommand primes the collector, waits one sample window, collects
// and writes the result.
func snapshotCommand(cmd *cobra.Command, output, sample string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	window := cfg.RefreshInterval()
	if sample != "" {
		window, err = ParseInterval(sample)
		if err != nil {
			return err
		}
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	stderr := cmd.ErrOrStderr()
	profile := colorProfile(cfg.Output.Color, isTerminal(stderr), ui.StderrProfile)
	warnShortSample(stderr, profile, window)

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, err := sampleHost(ctx, monitor.NewCollector(log), window)
	if err != nil {
		return err
	}

	if err := writeSnapshot(cmd.OutOrStdout(), output, snap, log); err != nil {
		return err
	}
	if output != "" {
		ui.PrintSuccess(stderr, profile, "Snapshot written to %s", output)
	}
	return nil
}

// warnShortSample flags sample windows too short for a meaningful CPU reading.
func warnShortSample(w io.Writer, profile termenv.Profile, window time.Duration) {
	if window < minUsefulSample {
		ui.PrintWarning(w, profile, "A %s sample is short, CPU usage will be noisy (try --sample %s)", window, minUsefulSample)
	}
}

// sampler is the part of the collector sampleHost needs.
type sampler interface {
	Prime(ctx context.Context) error
	Collect(ctx context.Context) (*monitor.HostSnapshot, error)
}

func sampleHost(ctx context.Context, c sampler, window time.Duration) (*monitor.HostSnapshot, error) {
	if err := c.Prime(ctx); err != nil {
		return nil, err
	}

	timer := time.NewTimer(window)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "Sampling was interrupted")
	case <-timer.C:
	}

	return c.Collect(ctx)
}

// writeSnapshot writes to path, or to stdout when path is empty.
func writeSnapshot(stdout io.Writer, path string, snap *monitor.HostSnapshot, log logger.Logger) error {
	if path == "" {
		return monitor.WriteSnapshot(stdout, snap)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSnapshot,
			fmt.Sprintf("Couldn't create %s", path),
			"Check the directory exists and is writable.")
	}
	if err := monitor.WriteSnapshot(f, snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrSnapshot,
			fmt.Sprintf("Couldn't finish writing %s", path), "")
	}

	log.Debug("snapshot written to %s", path)
	return nil
}
