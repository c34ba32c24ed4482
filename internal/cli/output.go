package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// colorProfile picks the dashboard color profile for an output.color mode.
// "auto" colors only terminals, and then follows the environment
// (NO_COLOR, CLICOLOR_FORCE, TERM).
func colorProfile(mode string, isTTY bool, env func() termenv.Profile) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.ANSI
	}
	if !isTTY {
		return termenv.Ascii
	}
	return env()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// thresholds converts the config thresholds to the renderer's levels.
func thresholds(cfg config.ThresholdConfig) monitor.Thresholds {
	level := func(v config.ThresholdValues) monitor.Level {
		return monitor.Level{Warning: v.Warning, Critical: v.Critical}
	}
	return monitor.Thresholds{
		CPU:     level(cfg.CPU),
		Memory:  level(cfg.Memory),
		Swap:    level(cfg.Swap),
		Disk:    level(cfg.Disk),
		Process: level(cfg.Process),
	}
}

// newLogger returns the logger for a run and a function that flushes it.
// Logs go to logFile when set, to stderr when SYSMON_DEBUG is set, and
// nowhere otherwise.
func newLogger(logFile string) (logger.Logger, func(), error) {
	log, closeLog, err := logger.Open(logger.Options{
		File:  logFile,
		Name:  "sysmon",
		Debug: logger.DebugEnabled(),
	})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't open log file %s", logFile),
			"Check the directory exists and is writable, or drop --log-file.")
	}
	return log, closeLog, nil
}
