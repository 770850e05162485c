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
	require.Equal(t, Default(), cfg)
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, 10, cfg.Validation.DescriptionMinLength)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 9000
log:
  level: debug
validation:
  description_min_length: 6
  people_max: 12
`), 0o600))

	t.Setenv("PROJECTBOARD_CONFIG_PATH", path)
	t.Setenv("PROJECTBOARD_SERVER_PORT", "9100")
	t.Setenv("PROJECTBOARD_DB_PATH", "board.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "board.db", cfg.DB.Path)
	require.Equal(t, 6, cfg.Validation.DescriptionMinLength)
	require.Equal(t, 5, cfg.Validation.TitleMinLength)
	require.Equal(t, 12, cfg.Validation.PeopleMax)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PROJECTBOARD_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("PROJECTBOARD_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Transport.Mode = "grpc"
	require.ErrorContains(t, cfg.Validate(), "transport mode")

	cfg = Default()
	cfg.Server.Port = 0
	require.ErrorContains(t, cfg.Validate(), "server port")

	cfg = Default()
	cfg.Validation.PeopleMax = 0
	require.NoError(t, cfg.Validate())
	cfg.Validation.PeopleMin = 3
	cfg.Validation.PeopleMax = 2
	require.ErrorContains(t, cfg.Validate(), "people_max")
}
