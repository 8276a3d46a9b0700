package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "properties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties", env+".properties"), []byte(content), 0o644))
	return dir
}

func TestReadSettings(t *testing.T) {
	dir := writeProperties(t, "test", "SCREEN_WIDTH=1024\nSCREEN_HEIGHT=768\nFRAME_MILLIS=20\nKEY_HOLD_MILLIS=300\n")

	settings, err := ReadSettings(dir, "test")

	require.NoError(t, err)
	assert.Equal(t, Settings{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		FrameTime:    20 * time.Millisecond,
		KeyHold:      300 * time.Millisecond,
	}, settings)
}

func TestReadSettingsDefaults(t *testing.T) {
	dir := writeProperties(t, "partial", "SCREEN_WIDTH=640\n")

	settings, err := ReadSettings(dir, "partial")

	require.NoError(t, err)
	assert.Equal(t, float32(640), settings.ScreenWidth)
	assert.Equal(t, float32(DefaultScreenHeight), settings.ScreenHeight)
	assert.Equal(t, 16*time.Millisecond, settings.FrameTime)
	assert.Equal(t, 550*time.Millisecond, settings.KeyHold)
}

func TestReadSettingsMissingFile(t *testing.T) {
	_, err := ReadSettings(t.TempDir(), "missing")

	assert.Error(t, err)
}

func TestReadSettingsShippedLocal(t *testing.T) {
	settings, err := ReadSettings("..", "local")

	require.NoError(t, err)
	assert.Equal(t, float32(800), settings.ScreenWidth)
	assert.Equal(t, float32(600), settings.ScreenHeight)
}
