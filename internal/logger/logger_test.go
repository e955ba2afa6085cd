package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{" INFO ", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"verbose", log.WarnLevel},
		{"", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestConfigure(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original; output = os.Stderr })

	t.Setenv("MTM_LOG_LEVEL", "debug")
	require.NoError(t, Configure("", "", false))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	require.NoError(t, Configure("error", "", false))
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())

	require.NoError(t, Configure("debug", "", true))
	assert.Equal(t, log.WarnLevel, Logger.GetLevel())
}

func TestConfigure_LogFile(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original; output = os.Stderr })

	path := filepath.Join(t.TempDir(), "mtm.log")
	require.NoError(t, Configure("info", path, false))
	Info("hello", "keyword", "list")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "keyword=list")

	assert.Error(t, Configure("info", filepath.Join(t.TempDir(), "missing", "dir", "x.log"), false))
}

func TestNewStyledLogger(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original; output = os.Stderr })

	var buf bytes.Buffer
	SetOutput(&buf)
	Logger.SetLevel(log.DebugLevel)

	l := NewStyledLogger("Router")
	l.Debug("Dispatching", "keyword", "list")

	assert.Contains(t, buf.String(), "Router")
	assert.Contains(t, buf.String(), "Dispatching")
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}
