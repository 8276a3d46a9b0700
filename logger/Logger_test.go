package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLoggerProperties(t *testing.T, level string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	logFile := filepath.Join(dir, "pong.log")
	content := "logFilename=" + logFile + "\nmaxSize=1\nmaxBackups=1\nmaxAge=1\ncompress=false\nlevel=" + level + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logger.properties"), []byte(content), 0o644))
	return dir, logFile
}

func TestInitWritesJSONToFile(t *testing.T) {
	dir, logFile := writeLoggerProperties(t, "Info")
	l := &Logger{}

	require.NoError(t, l.Init(dir))
	l.WithSession("abc-123")
	l.Debug("hidden")
	l.Info("served")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"served"`)
	assert.Contains(t, string(content), `"level":"info"`)
	assert.Contains(t, string(content), `"session":"abc-123"`)
	assert.NotContains(t, string(content), "hidden", "debug should be filtered at info level")
}

func TestInitMissingProperties(t *testing.T) {
	l := &Logger{}

	assert.Error(t, l.Init(t.TempDir()))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"Trace": logrus.TraceLevel,
		"Info":  logrus.InfoLevel,
		"Warn":  logrus.WarnLevel,
		"Error": logrus.ErrorLevel,
		"Fatal": logrus.FatalLevel,
		"":      logrus.DebugLevel,
		"Debug": logrus.DebugLevel,
	}

	for level, want := range tests {
		assert.Equal(t, want, parseLevel(level), "level %q", level)
	}
}

func TestLogBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Log.Debug("before init")
	})
}
