package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLoggerLines(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		debug  bool
		log    func(l Logger)
		expect string
	}{
		{"info", "[sysmon]", false, func(l Logger) { l.Info("started: interval=%s", "1s") }, "[sysmon] started: interval=1s"},
		{"warn is tagged", "[sysmon]", false, func(l Logger) { l.Warn("collect %s: %v", "disks", "denied") }, "[sysmon] WARN: collect disks: denied"},
		{"error is tagged", "[sysmon]", false, func(l Logger) { l.Error("draw failed") }, "[sysmon] ERROR: draw failed"},
		{"debug when enabled", "[sysmon]", true, func(l Logger) { l.Debug("collected %d disks", 2) }, "[sysmon] collected 2 disks"},
		{"debug when disabled", "[sysmon]", false, func(l Logger) { l.Debug("collected %d disks", 2) }, ""},
		{"no prefix", "", false, func(l Logger) { l.Warn("bare") }, "WARN: bare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWriterLogger(&buf, tt.prefix, tt.debug))

			if tt.expect == "" {
				assert.Empty(t, buf.String())
				return
			}
			out := buf.String()
			assert.True(t, strings.HasSuffix(out, tt.expect+"\n"), "got %q", out)
			assert.Equal(t, 1, strings.Count(out, "\n"))
		})
	}
}

func TestNewEnvLoggerFollowsDebugEnv(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.False(t, DebugEnabled())
	assert.False(t, NewEnvLogger("x").debug)

	t.Setenv(DebugEnv, "true")
	assert.True(t, DebugEnabled())
	assert.True(t, NewEnvLogger("x").debug)
}

func TestOpen(t *testing.T) {
	t.Run("nothing configured discards", func(t *testing.T) {
		l, closeLog, err := Open(Options{Name: "sysmon"})
		require.NoError(t, err)
		defer closeLog()
		assert.Equal(t, Noop(), l)
	})

	t.Run("debug goes to stderr writer", func(t *testing.T) {
		var buf bytes.Buffer
		l, closeLog, err := Open(Options{Name: "sysmon", Debug: true, Stderr: &buf})
		require.NoError(t, err)
		defer closeLog()

		l.Debug("frame %d", 3)
		assert.Contains(t, buf.String(), "[sysmon] frame 3")
	})

	t.Run("file takes precedence", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "sysmon.log")
		l, closeLog, err := Open(Options{File: path, Name: "sysmon", Debug: true, Stderr: &buf})
		require.NoError(t, err)

		l.Info("started")
		closeLog()

		assert.Empty(t, buf.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"started"`)
	})

	t.Run("unopenable file", func(t *testing.T) {
		_, _, err := Open(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
		assert.Error(t, err)
	})
}

func TestNoopLogger(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("debug")
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Warn("collect %s: %v", "load average", "unsupported")
	l.Debug("collected %d processes", 5)
	l.Warn("collect %s: %v", "disks", "denied")

	assert.Equal(t, []string{"collect load average: unsupported", "collect disks: denied"}, l.At(LevelWarn))
	assert.Equal(t, []string{"collected 5 processes"}, l.At(LevelDebug))
	assert.Empty(t, l.At(LevelError))
	assert.True(t, l.HasLevel(LevelWarn))
	assert.False(t, l.HasLevel(LevelInfo))

	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel(LevelWarn))
}

func TestBufferLoggerConcurrent(t *testing.T) {
	l := NewBufferLogger()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Info("worker %d", i)
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.At(LevelInfo), 8)
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewWriterLogger(&bytes.Buffer{}, "", false)
	var _ Logger = Noop()
	var _ Logger = NewBufferLogger()
	var _ Logger = &FileLogger{}
}
