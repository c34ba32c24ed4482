// Package cli implements the sysmon command-line interface.
//
// The root command runs the dashboard; subcommands cover everything around
// it:
//
//	sysmon                 - Live dashboard, redrawn every interval
//	sysmon --once          - Draw one frame and exit
//	sysmon --snapshot f    - Draw a saved snapshot
//	sysmon snapshot        - Sample the host and print YAML
//	sysmon version         - Build information
//	sysmon completion      - Shell completion scripts
//
// Flags override values from the config file (see package config). The
// dashboard owns stdout, so logging is routed to --log-file or discarded.
package cli
