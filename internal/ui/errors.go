package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// StderrProfile is the color profile for messages written to stderr.
// Honors NO_COLOR and CLICOLOR_FORCE.
func StderrProfile() termenv.Profile {
	return termenv.NewOutput(os.Stderr).EnvColorProfile()
}

// RenderError lays out a structured error the same way Error() does, with the
// headline in red, the cause muted and the suggestion in cyan.
func RenderError(e *errors.Error, profile termenv.Profile) string {
	s := NewStyles(profile)
	var b strings.Builder

	b.WriteString(s.Error.Render(SymbolFail+" "+e.Message) + "\n")

	if e.Cause != nil {
		b.WriteString("\n  " + s.Muted.Render(e.Cause.Error()) + "\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n  " + s.Info.Render(e.Suggestion) + "\n")
	}

	return b.String()
}

// PrintSuccess writes a green status line to w.
func PrintSuccess(w io.Writer, profile termenv.Profile, format string, args ...interface{}) {
	s := NewStyles(profile)
	fmt.Fprintln(w, s.Success.Render(SymbolSuccess+" "+fmt.Sprintf(format, args...)))
}

// PrintWarning writes a yellow warning line to w.
func PrintWarning(w io.Writer, profile termenv.Profile, format string, args ...interface{}) {
	s := NewStyles(profile)
	fmt.Fprintln(w, s.Warning.Render(SymbolWarning+" "+fmt.Sprintf(format, args...)))
}
