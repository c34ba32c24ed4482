package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Refresh interval limits.
const (
	DefaultInterval = time.Second
	MinInterval     = 100 * time.Millisecond
)

// Process row limits.
const (
	DefaultTopProcesses = 5
	MaxTopProcesses     = 50
)

// Config represents the complete .sysmon.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval between redraws, as a duration string ("1s", "500ms").
	Interval string `yaml:"interval" mapstructure:"interval"`

	// TopProcesses is how many process rows the dashboard shows.
	TopProcesses int `yaml:"top_processes" mapstructure:"top_processes"`

	// LogFile receives log output while the dashboard owns the terminal.
	// Empty discards logs.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`

	Output     OutputConfig    `yaml:"output" mapstructure:"output"`
	Thresholds ThresholdConfig `yaml:"thresholds" mapstructure:"thresholds"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// ThresholdConfig holds the color bands for each metric.
type ThresholdConfig struct {
	CPU     ThresholdValues `yaml:"cpu" mapstructure:"cpu"`
	Memory  ThresholdValues `yaml:"memory" mapstructure:"memory"`
	Swap    ThresholdValues `yaml:"swap" mapstructure:"swap"`
	Disk    ThresholdValues `yaml:"disk" mapstructure:"disk"`
	Process ThresholdValues `yaml:"process" mapstructure:"process"`
}

// ThresholdValues are percentages; a value strictly above Warning or
// Critical switches to that color.
type ThresholdValues struct {
	Warning  float64 `yaml:"warning" mapstructure:"warning"`
	Critical float64 `yaml:"critical" mapstructure:"critical"`
}

// RefreshInterval parses Interval, falling back to DefaultInterval when it is
// empty or malformed. Validate reports malformed values.
func (c *Config) RefreshInterval() time.Duration {
	return parseDuration(c.Interval, DefaultInterval)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		Interval:     DefaultInterval.String(),
		TopProcesses: DefaultTopProcesses,
		Output: OutputConfig{
			Color: "auto",
		},
		Thresholds: ThresholdConfig{
			CPU:     ThresholdValues{Warning: 60, Critical: 80},
			Memory:  ThresholdValues{Warning: 75, Critical: 90},
			Swap:    ThresholdValues{Warning: 25, Critical: 50},
			Disk:    ThresholdValues{Warning: 80, Critical: 90},
			Process: ThresholdValues{Warning: 20, Critical: 50},
		},
	}
}
