package ui

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

func TestRenderErrorAsciiMatchesError(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
	}{
		{"message only", errors.New(errors.ErrConfig, "Bad config", "")},
		{"with suggestion", errors.New(errors.ErrConfig, "Bad config", "Fix it.")},
		{"with cause", errors.WrapWithCode(stderrors.New("boom"), errors.ErrOutput, "Write failed", "Check the terminal.")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err.Error(), RenderError(tt.err, termenv.Ascii))
		})
	}
}

func TestRenderErrorColored(t *testing.T) {
	err := errors.WrapWithCode(stderrors.New("boom"), errors.ErrOutput, "Write failed", "Check the terminal.")
	out := RenderError(err, termenv.ANSI)

	assert.Contains(t, out, SymbolFail+" Write failed")
	assert.Contains(t, out, "\x1b[90mboom\x1b[0m")
	assert.Contains(t, out, "\x1b[36mCheck the terminal.\x1b[0m")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	PrintWarning(&buf, termenv.Ascii, "log file %s unusable", "/nope")
	assert.Equal(t, SymbolWarning+" log file /nope unusable\n", buf.String())
}

func TestPrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	PrintSuccess(&buf, termenv.Ascii, "wrote %s", "now.yaml")
	assert.Equal(t, SymbolSuccess+" wrote now.yaml\n", buf.String())

	buf.Reset()
	PrintSuccess(&buf, termenv.ANSI, "wrote %s", "now.yaml")
	assert.Equal(t, "\x1b[32m"+SymbolSuccess+" wrote now.yaml\x1b[0m\n", buf.String())
}
