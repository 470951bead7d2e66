package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "noteflow.db", cfg.DB.Path)
	require.Equal(t, 10, cfg.Scan.UpcomingLimit)
	require.False(t, cfg.Scan.HonorExplicitYear)
	require.True(t, cfg.Insights.Enabled)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noteflow.yaml")
	content := `
server:
  port: 9090
db:
  path: /tmp/notes.db
scan:
  timezone: UTC
  honor_explicit_year: true
  upcoming_limit: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("NOTEFLOW_CONFIG_PATH", path)
	t.Setenv("NOTEFLOW_SERVER_PORT", "7070")
	t.Setenv("NOTEFLOW_SCAN_SCHEDULE", "*/5 * * * *")
	t.Setenv("NOTEFLOW_INSIGHTS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "/tmp/notes.db", cfg.DB.Path)
	require.Equal(t, "*/5 * * * *", cfg.Scan.Schedule)
	require.True(t, cfg.Scan.HonorExplicitYear)
	require.Equal(t, 5, cfg.Scan.UpcomingLimit)
	require.False(t, cfg.Insights.Enabled)

	loc, err := cfg.Scan.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("NOTEFLOW_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ScanEnv(t *testing.T) {
	t.Setenv("NOTEFLOW_SCAN_HONOR_EXPLICIT_YEAR", "true")
	t.Setenv("NOTEFLOW_SCAN_UPCOMING_LIMIT", "3")
	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Scan.HonorExplicitYear)
	require.Equal(t, 3, cfg.Scan.UpcomingLimit)

	t.Setenv("NOTEFLOW_SCAN_UPCOMING_LIMIT", "-1")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("NOTEFLOW_SCAN_UPCOMING_LIMIT", "3")
	t.Setenv("NOTEFLOW_SCAN_HONOR_EXPLICIT_YEAR", "maybe")
	_, err = Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Transport.Mode = "grpc"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Auth.Enabled = true
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Scan.Timezone = "Not/AZone"
	require.Error(t, cfg.Validate())
}
