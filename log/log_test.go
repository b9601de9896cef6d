package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T, level string, asJSON bool) *bytes.Buffer {
	t.Helper()
	prev := Root()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, InitLoggerTo(&buf, level, asJSON))
	return &buf
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"trace":    LevelTrace,
		"DEBUG":    LevelDebug,
		"info":     LevelInfo,
		"warning":  LevelWarn,
		"error":    LevelError,
		"critical": LevelCrit,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Error(t, InitLoggerTo(&bytes.Buffer{}, "loud", false))
}

func TestModuleFiltering(t *testing.T) {
	buf := withBuffer(t, "debug", false)
	DisableModule(CommitMonitoring)
	t.Cleanup(func() { DisableModule(CommitMonitoring) })

	Debug(CommitMonitoring, "hidden debug")
	assert.NotContains(t, buf.String(), "hidden debug")

	// Info is never filtered by module
	Info(CommitMonitoring, "visible info", "choice", 1)
	assert.Contains(t, buf.String(), "visible info")
	assert.Contains(t, buf.String(), "choice=1")

	EnableModules("all")
	Debug(CommitMonitoring, "shown debug")
	assert.Contains(t, buf.String(), "shown debug")
}

func TestLevelThreshold(t *testing.T) {
	buf := withBuffer(t, "warn", false)
	Info(CLIMonitoring, "below threshold")
	Warn(CLIMonitoring, "at threshold")
	assert.NotContains(t, buf.String(), "below threshold")
	assert.Contains(t, buf.String(), "at threshold")
}

func TestJSONOutput(t *testing.T) {
	buf := withBuffer(t, "info", true)
	Info(ConfigMonitoring, "resolved", "account", "0xabc")

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "resolved", rec["msg"])
	assert.Equal(t, "0xabc", rec["account"])
}

func TestTraceModule(t *testing.T) {
	buf := withBuffer(t, "trace", false)
	DisableModule(CommitMonitoring)
	t.Cleanup(func() { DisableModule(CommitMonitoring) })

	Trace(CommitMonitoring, "word skipped")
	assert.NotContains(t, buf.String(), "word skipped")

	EnableModule(CommitMonitoring)
	Trace(CommitMonitoring, "word emitted", "offset", 32)
	assert.Contains(t, buf.String(), "word emitted")
	assert.Contains(t, buf.String(), "module=commit_mod")
	assert.Contains(t, buf.String(), "offset=32")
}
