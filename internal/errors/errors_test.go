package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrCollect,
		ErrOutput,
		ErrSnapshot,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .sysmon.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "output error",
			code:       ErrOutput,
			message:    "Failed to write frame",
			suggestion: "Check the terminal is still attached",
		},
		{
			name:       "snapshot error",
			code:       ErrSnapshot,
			message:    "Snapshot file is not valid YAML",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .sysmon.yaml syntax"),
			expectedParts: []string{
				"✗ Invalid configuration",
				"Check .sysmon.yaml syntax",
			},
		},
		{
			name: "error with cause",
			err:  WrapWithCode(io.ErrClosedPipe, ErrOutput, "Failed to write frame", ""),
			expectedParts: []string{
				"Failed to write frame",
				io.ErrClosedPipe.Error(),
			},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrCollect, "Collection failed", ""),
			expectedParts: []string{"Collection failed"},
			notExpected:   []string{"\n\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("write /dev/stdout: broken pipe"),
		ErrOutput,
		"Failed to write frame",
		"Check the terminal is still attached",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "✗"), "first line should start with failure symbol")
	assert.Contains(t, lines[0], "Failed to write frame")
	assert.Contains(t, lines[2], "broken pipe")
	assert.Contains(t, lines[4], "terminal is still attached")
}

func TestWrap(t *testing.T) {
	cause := errors.New("context canceled")
	wrapped := Wrap(cause, "Collection interrupted")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrCollect, wrapped.Code, "Wrap should default to ErrCollect code")
	assert.Equal(t, "Collection interrupted", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create a .sysmon.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create a .sysmon.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestErrorsIsThroughLayers(t *testing.T) {
	wrapped := WrapWithCode(io.ErrShortWrite, ErrOutput, "Failed to write frame", "")
	outer := fmt.Errorf("draw: %w", wrapped)

	assert.True(t, errors.Is(outer, io.ErrShortWrite))
	assert.True(t, IsCode(outer, ErrOutput))
}

func TestErrorsAs(t *testing.T) {
	wrapped := New(ErrConfig, "Config error", "Fix config")

	var smErr *Error
	ok := errors.As(wrapped, &smErr)

	assert.True(t, ok)
	assert.Equal(t, ErrConfig, smErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrOutput))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}
