package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "move-to-go.db", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.FingerprintTTL)
	assert.Error(t, cfg.RequireRemote())
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("MOVETOGO_TOKEN", "secret")
	t.Setenv("MOVETOGO_REMOTE_URL", "http://crm.local")
	t.Setenv("MOVETOGO_FINGERPRINT_TTL", "30s")
	t.Setenv("MOVETOGO_DEV_LOG", "true")

	cfg, err := FromViper(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "http://crm.local", cfg.RemoteURL)
	assert.Equal(t, 30*time.Second, cfg.FingerprintTTL)
	assert.True(t, cfg.DevLog)
	assert.NoError(t, cfg.RequireRemote())
}

func TestFromViper_Invalid(t *testing.T) {
	v := NewViper()
	v.Set(KeyFingerprintTTL, -time.Second)
	_, err := FromViper(v)
	assert.Error(t, err)

	v = NewViper()
	v.Set(KeyDBPath, "")
	_, err = FromViper(v)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MOVETOGO_LISTEN_ADDR=:9999\n"), 0o600))
	t.Setenv("MOVETOGO_LISTEN_ADDR", "")
	require.NoError(t, os.Unsetenv("MOVETOGO_LISTEN_ADDR"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	cfg, err := FromViper(NewViper())
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
}
