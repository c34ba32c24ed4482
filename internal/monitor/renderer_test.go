package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

func TestRendererDraw(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Profile: termenv.Ascii})

	require.NoError(t, r.Draw(scenarioSnapshot()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, seqHome+seqClearBelow+Title+"\n"))
	assert.Contains(t, out, "CPU: 91.2% (8 cores)\n")
	assert.Contains(t, out, "  sda (/) 80.0GB / 100.0GB (80.0%)\n")
	assert.True(t, strings.HasSuffix(out, "Uptime: 1 hours, 23 minutes\n"))
	assert.NotContains(t, out, seqClearAll)
}

func TestRendererDrawColored(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Profile: termenv.ANSI})

	require.NoError(t, r.Draw(scenarioSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "\x1b[31mCPU: 91.2% \x1b[0m\x1b[32m(8 cores)\x1b[0m")
	assert.Contains(t, out, "\x1b[34mMemory: 8.00GB / 16.00GB (50.0%)\x1b[0m")
	assert.Contains(t, out, "\x1b[90m  sda (/) 80.0GB / 100.0GB (80.0%)\x1b[0m")
}

func TestRendererFramesAreIdentical(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Profile: termenv.ANSI})
	snap := scenarioSnapshot()

	require.NoError(t, r.Draw(snap))
	first := buf.String()
	buf.Reset()
	require.NoError(t, r.Draw(snap))

	assert.Equal(t, first, buf.String())
}

func TestRendererViewOptions(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{
		Profile: termenv.Ascii,
		View:    ViewOptions{TopProcesses: 1},
	})

	require.NoError(t, r.Draw(scenarioSnapshot()))
	assert.Contains(t, buf.String(), "firefox")
	assert.NotContains(t, buf.String(), "bash")
}

func TestRendererClearScreen(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{Profile: termenv.ANSI})

	require.NoError(t, r.ClearScreen())
	assert.Equal(t, "\x1b[2J\x1b[1;1H", buf.String())
}

func TestRendererDrawFailure(t *testing.T) {
	w := &failingWriter{limit: 0}
	r := NewRenderer(w, Options{Profile: termenv.Ascii})

	err := r.Draw(scenarioSnapshot())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrOutput))
	assert.ErrorIs(t, err, errBrokenPipe)

	assert.Error(t, r.ClearScreen())
}

func TestRendererKeepsCallerFlusher(t *testing.T) {
	w := &flushRecorder{}
	r := NewRenderer(w, Options{Profile: termenv.Ascii})

	require.NoError(t, r.Draw(scenarioSnapshot()))
	assert.Equal(t, 1, w.flushes)
	assert.Contains(t, w.String(), Title)
}

func TestRendererDrawMatchesFrameText(t *testing.T) {
	snap := &HostSnapshot{Processes: []ProcessStat{{Name: "a\tb", PID: 1, CPUPercent: 90}}}
	row := "       1 90.0% 0.0MB a\tb"

	tests := []struct {
		name    string
		profile termenv.Profile
		expect  string
	}{
		{"ascii", termenv.Ascii, row + "\n"},
		{"ansi", termenv.ANSI, "\x1b[31m" + row + "\x1b[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewRenderer(&buf, Options{Profile: tt.profile}).Draw(snap))

			assert.Contains(t, BuildFrame(snap, ViewOptions{}).Lines(), row)
			assert.Contains(t, buf.String(), tt.expect)
		})
	}
}
