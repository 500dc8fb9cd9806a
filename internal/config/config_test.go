package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/blastoff/internal/web"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{
		web.EnvListenAddr, web.EnvDevMode,
		EnvShowQR, EnvDebug, EnvDebugLog, EnvStdioLog, EnvFramebuffer, EnvTraceLog,
	} {
		t.Setenv(name, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.False(t, cfg.Server.DevMode)
	assert.False(t, cfg.ShowQR)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultDebugLog, cfg.DebugLog)
	assert.Empty(t, cfg.StdioLog)
	assert.Empty(t, cfg.Framebuffer)
	assert.Empty(t, cfg.TraceLog)
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(web.EnvListenAddr, "127.0.0.1:9090")
	t.Setenv(web.EnvDevMode, "true")
	t.Setenv(EnvShowQR, "1")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvDebugLog, "/tmp/blastoff.log")
	t.Setenv(EnvFramebuffer, "/dev/fb0")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.ListenAddr)
	assert.True(t, cfg.Server.DevMode)
	assert.True(t, cfg.ShowQR)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/blastoff.log", cfg.DebugLog)
	assert.Equal(t, "/dev/fb0", cfg.Framebuffer)
}

func TestBadBoolean(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDebug, "loud")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read environment")
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BLASTOFF_FRAMEBUFFER=/dev/fb1\nBLASTOFF_DEBUG_LOG=/tmp/from-file.log\n"), 0o644))
	t.Setenv(EnvDebugLog, "/tmp/from-env.log")
	// Unset so the file can provide it; t.Setenv restores it afterwards.
	require.NoError(t, os.Unsetenv(EnvFramebuffer))

	require.NoError(t, LoadDotEnv(path))

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/dev/fb1", cfg.Framebuffer)
	assert.Equal(t, "/tmp/from-env.log", cfg.DebugLog, "environment wins over the file")
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
