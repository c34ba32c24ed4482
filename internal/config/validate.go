package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// ValidColors are the accepted output.color values.
var ValidColors = map[string]bool{"auto": true, "always": true, "never": true}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sysmon or lower the version field.")
	}

	if err := ValidateInterval(cfg.Interval); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Use a duration like 500ms, 1s, or 5s.")
	}

	if err := ValidateTopProcesses(cfg.TopProcesses); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Pick a number between 1 and 50.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .sysmon.yaml.")
	}

	thresholds := []struct {
		name string
		val  ThresholdValues
	}{
		{"cpu", cfg.Thresholds.CPU},
		{"memory", cfg.Thresholds.Memory},
		{"swap", cfg.Thresholds.Swap},
		{"disk", cfg.Thresholds.Disk},
		{"process", cfg.Thresholds.Process},
	}
	for _, th := range thresholds {
		if err := validateThresholds(th.name, th.val); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'thresholds' section in your .sysmon.yaml.")
		}
	}

	return nil
}

// ValidateInterval checks the refresh interval. Empty means the default.
func ValidateInterval(interval string) error {
	if interval == "" {
		return nil
	}
	d, err := time.ParseDuration(interval)
	if err != nil {
		return fmt.Errorf("interval '%s' is not a valid duration", interval)
	}
	if d < MinInterval {
		return fmt.Errorf("interval %v is too short - minimum is %v", d, MinInterval)
	}
	return nil
}

// ValidateTopProcesses checks the number of process rows.
func ValidateTopProcesses(n int) error {
	if n < 1 || n > MaxTopProcesses {
		return fmt.Errorf("top_processes needs to be 1-%d (got %d)", MaxTopProcesses, n)
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	if out.Color != "" && !ValidColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

// validateThresholds checks one metric's warning/critical pair.
func validateThresholds(name string, thresh ThresholdValues) error {
	if thresh.Warning < 0 || thresh.Warning > 100 {
		return fmt.Errorf("thresholds.%s.warning needs to be between 0 and 100 (got %g)", name, thresh.Warning)
	}
	if thresh.Critical < 0 || thresh.Critical > 100 {
		return fmt.Errorf("thresholds.%s.critical needs to be between 0 and 100 (got %g)", name, thresh.Critical)
	}
	if thresh.Warning >= thresh.Critical {
		return fmt.Errorf("thresholds.%s.warning (%g%%) should be less than critical (%g%%)", name, thresh.Warning, thresh.Critical)
	}
	return nil
}
