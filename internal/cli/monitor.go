package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// snapshotSource produces the snapshot for each frame.
type snapshotSource interface {
	Collect(ctx context.Context) (*monitor.HostSnapshot, error)
}

// staticSource serves one saved snapshot for every frame.
type staticSource struct {
	snap *monitor.HostSnapshot
}

func (s staticSource) Collect(context.Context) (*monitor.HostSnapshot, error) {
	return s.snap, nil
}

// dashboard is the refresh loop. It is the only caller of its renderer, so
// draws never interleave.
type dashboard struct {
	renderer *monitor.Renderer
	source   snapshotSource
	interval time.Duration
	once     bool
	log      logger.Logger
}

// run draws until ctx is cancelled (or once, with --once). The screen is
// cleared on entry and exit of the live loop. A draw failure ends the loop
// and is returned; cancellation is a clean exit.
func (d *dashboard) run(ctx context.Context) error {
	if d.once {
		return d.frame(ctx)
	}

	if err := d.renderer.ClearScreen(); err != nil {
		return err
	}
	defer func() {
		if err := d.renderer.ClearScreen(); err != nil {
			d.log.Debug("clear on exit: %v", err)
		}
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		if err := d.frame(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// frame collects and draws one snapshot.
func (d *dashboard) frame(ctx context.Context) error {
	snap, err := d.source.Collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return d.renderer.Draw(snap)
}

// dashboardCommand wires config, flags and the live or saved source into a
// dashboard and runs it until SIGINT/SIGTERM.
func dashboardCommand(cmd *cobra.Command, flags DashboardFlags) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := ApplyDashboardFlags(cfg, flags); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	d := &dashboard{
		renderer: newDashboardRenderer(out, cfg),
		interval: cfg.RefreshInterval(),
		once:     flags.Once || flags.Snapshot != "",
		log:      log,
	}

	if flags.Snapshot != "" {
		snap, err := monitor.LoadSnapshot(flags.Snapshot)
		if err != nil {
			return err
		}
		d.source = staticSource{snap: snap}
	} else {
		collector := monitor.NewCollector(log)
		if err := collector.Prime(ctx); err != nil {
			// Interrupted before the first frame.
			return nil
		}
		d.source = collector
	}

	log.Info("sysmon %s started: interval=%s top=%d color=%s", GetVersion(), d.interval, cfg.TopProcesses, cfg.Output.Color)
	err = d.run(ctx)
	if err != nil {
		log.Error("dashboard stopped: %v", err)
	}
	return err
}

func newDashboardRenderer(out io.Writer, cfg *config.Config) *monitor.Renderer {
	return monitor.NewRenderer(out, monitor.Options{
		View: monitor.ViewOptions{
			TopProcesses: cfg.TopProcesses,
			Thresholds:   thresholds(cfg.Thresholds),
		},
		Profile: colorProfile(cfg.Output.Color, isTerminal(out), termenv.EnvColorProfile),
	})
}

// cmdContext returns the command's context, or Background when run outside
// ExecuteContext (as in tests calling RunE directly).
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
