package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// cfgFile is the --config flag shared by every command.
var cfgFile string

var dashFlags DashboardFlags

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Live system metrics dashboard for your terminal",
	Long: `Draw a single-screen dashboard of local system metrics, redrawn in place.

Shows CPU usage and load average, memory and swap, mounted disks, network
counters, the busiest processes and uptime. Values are colored green/blue,
yellow and red as they cross the warning and critical thresholds.

Press Ctrl+C to exit.

Examples:
  sysmon
  sysmon --interval 2s --top 10
  sysmon --once --color never > frame.txt
  sysmon --snapshot saved.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd, dashFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.sysmon.yaml, then ~/.config/sysmon/config.yaml)")
	AddDashboardFlags(rootCmd, &dashFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w, turning cobra's plain errors into structured ones.
func printError(w io.Writer, err error) {
	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		structured = fromCobraError(err)
	}
	fmt.Fprint(w, ui.RenderError(structured, ui.StderrProfile()))
}

func fromCobraError(err error) *errors.Error {
	if isUnknownCommandError(err) {
		suggestion := "Run 'sysmon --help' to see available commands and flags."
		if name := extractUnknownCommand(err); name != "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a sysmon command", name),
				suggestion)
		}
		return errors.New(errors.ErrConfig, err.Error(), suggestion)
	}
	return errors.New(errors.ErrConfig, err.Error(), "")
}

// isUnknownCommandError checks if the error is cobra's unknown command or flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of
// `unknown command "foo" for "sysmon"`. Returns "" if there is none.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	const prefix = `unknown command "`
	if !strings.HasPrefix(msg, prefix) {
		return ""
	}
	rest := msg[len(prefix):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
