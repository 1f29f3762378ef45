package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrData,
		ErrOutput,
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
			message:    "Invalid configuration in .kycmon.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "data error",
			code:       ErrData,
			message:    "Dataset file is empty",
			suggestion: "Point data_file at a YAML dataset",
		},
		{
			name:       "output error",
			code:       ErrOutput,
			message:    "Could not write snapshot",
			suggestion: "Check that stdout is writable",
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
			err:  New(ErrConfig, "Invalid configuration", "Check .kycmon.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .kycmon.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrData, "Dataset unreadable", "Try again"),
			expectedParts: []string{
				"✗",
				"Dataset unreadable",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrOutput, "Write failed", ""),
			expectedParts: []string{
				"Write failed",
			},
			notExpected: []string{
				"\n\n  \n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create a .kycmon.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create a .kycmon.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "file not found")
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrOutput, "Write error", "")

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())

	var kErr *Error
	require.True(t, errors.As(wrapped, &kErr))
	assert.Equal(t, ErrOutput, kErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrData))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))

	// Matches through fmt wrapping
	outer := fmt.Errorf("loading: %w", err)
	assert.True(t, IsCode(outer, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("open data.yaml: no such file or directory"),
		ErrData,
		"Dataset file not found",
		"Check the data_file path in .kycmon.yaml",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"), "First line should start with failure symbol")
	assert.Contains(t, lines[0], "Dataset file not found")
	assert.Contains(t, err.Error(), "no such file or directory")
	assert.Contains(t, err.Error(), "Check the data_file path")
}
