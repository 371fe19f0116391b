package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseConfig_Defaults(t *testing.T) {
	c, err := ParseConfig([]byte("server:\n  http-port: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.HttpPort)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.Equal(t, "X-Trace-ID", c.Tracer.Header)
	assert.True(t, c.IsAtomicDelete())
	assert.True(t, c.IsTracerEnabled())
	assert.True(t, c.IsLimiterEnabled())
	assert.Equal(t, 7*24*time.Hour, c.GetTokenExpiry())
	assert.Equal(t, 60*time.Second, c.GetContextTimeout())
	assert.Equal(t, time.Second, c.GetLimiterFillInterval())
}

func TestParseConfig_TogglesOff(t *testing.T) {
	c, err := ParseConfig([]byte("folder:\n  atomic-delete: false\ntracer:\n  enabled: false\nlimiter:\n  enabled: false\nlog:\n  production: false\n"))
	require.NoError(t, err)
	assert.False(t, c.IsAtomicDelete())
	assert.False(t, c.IsTracerEnabled())
	assert.False(t, c.IsLimiterEnabled())
	assert.False(t, c.IsProductionLog())
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("server: [oops"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("security:\n  token-expiry: soon\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("security:\n  auth-token-key: k\n  token-expiry: 24h\n"), 0o644))

	c, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)
	assert.Equal(t, path, c.File)
	assert.Equal(t, "k", c.Security.AuthTokenKey)
	assert.Equal(t, 24*time.Hour, c.GetTokenExpiry())

	_, _, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	c, err := ParseConfig(nil)
	require.NoError(t, err)

	_, err = NewApp(nil, zap.NewNop(), nil)
	assert.Error(t, err)
	_, err = NewApp(c, nil, nil)
	assert.Error(t, err)
	_, err = NewApp(c, zap.NewNop(), nil)
	assert.Error(t, err)
}
