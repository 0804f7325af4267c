package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SALESFLOW_HUBSPOT_TOKEN", "pat-test-token")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "salesflow", cfg.App.Name)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "pat-test-token", cfg.HubSpot.Token)
	assert.Equal(t, "https://api.hubapi.com", cfg.HubSpot.BaseURL)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.False(t, cfg.Gemini.Enabled())
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRequiresHubSpotToken(t *testing.T) {
	t.Setenv("SALESFLOW_HUBSPOT_TOKEN", "")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hubspot.token")
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("SALESFLOW_HUBSPOT_TOKEN", "pat-test-token")

	dir := t.TempDir()
	content := `
[app]
port = 9000

[database]
host = "db.example.supabase.co"
password = "secret"

[gemini]
api_key = "gk-123"
timeout = "30s"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "db.example.supabase.co", cfg.Database.Host)
	assert.True(t, cfg.Gemini.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SALESFLOW_HUBSPOT_TOKEN", "pat-test-token")
	t.Setenv("SALESFLOW_APP_PORT", "8081")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[app]\nport = 9000\n"), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.App.Port)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.example.supabase.co",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss w0rd",
		DBName:   "postgres",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "db.example.supabase.co:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss w0rd")
}

func TestValidatePortRange(t *testing.T) {
	t.Setenv("SALESFLOW_HUBSPOT_TOKEN", "pat-test-token")
	t.Setenv("SALESFLOW_APP_PORT", "70000")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.port")
}
