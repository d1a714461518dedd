package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://api.yext.com/v2/accounts/me/", cfg.Knowledge.BaseURL)
	assert.Equal(t, "20210714", cfg.Knowledge.Version)
	assert.Equal(t, 30, cfg.Knowledge.TimeoutSeconds)
	assert.Equal(t, "dir-root", cfg.Directory.RootID)
	assert.Equal(t, "dir-", cfg.Directory.Prefix)
	assert.Equal(t, "ce_region", cfg.Directory.RegionType)
	assert.Equal(t, "ce_city", cfg.Directory.CityType)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 86400, cfg.Redis.TTLSeconds)
	assert.Equal(t, AuditSinkNone, cfg.Audit.Sink)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("KNOWLEDGE_API_KEY", "secret")
	t.Setenv("DIRECTORY_ROOT_ID", "dir-world")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUDIT_SINK", "database")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Knowledge.APIKey)
	assert.Equal(t, "dir-world", cfg.Directory.RootID)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, AuditSinkDatabase, cfg.Audit.Sink)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DIRECTORY_PREFIX=node-\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	// Overload writes into the process environment; restore it afterwards.
	t.Setenv("DIRECTORY_PREFIX", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "node-", cfg.Directory.Prefix)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"BadPort", "SERVER_PORT", "http"},
		{"UnknownSink", "AUDIT_SINK", "kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			cfg, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
