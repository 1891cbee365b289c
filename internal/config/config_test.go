package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTOML = `
[server]
http_port = 8084
read_timeout = 10
write_timeout = 10
idle_timeout = 60

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "secret"
dbname = "meeting_service"
sslmode = "disable"

[logs]
file = "logs/meeting-service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "pb-meeting-service"

[botgateway]
url = "http://localhost:8090"
timeout = 5

[admin]
ids = [42, 43]
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromTOML(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testTOML))
	require.NoError(t, err)

	require.Equal(t, 8084, cfg.Server.HTTPPort)
	require.Equal(t, "meeting_service", cfg.Database.DBName)
	require.Equal(t, "http://localhost:8090", cfg.BotGateway.URL)
	require.Equal(t, []int64{42, 43}, cfg.Admin.IDs)
	require.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_IDS", "1,2,3")

	cfg, err := Load(writeTestConfig(t, testTOML))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.HTTPPort)
	require.Equal(t, "from-env", cfg.Database.Password)
	require.Equal(t, []int64{1, 2, 3}, cfg.Admin.IDs)
	// Не переопределённые поля остаются из TOML
	require.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(writeTestConfig(t, `
[server]
http_port = 0

[database]
host = "localhost"
dbname = "meeting_service"
`))
	require.Error(t, err)

	_, err = Load(writeTestConfig(t, `
[server]
http_port = 8084

[database]
host = ""
dbname = ""
`))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p",
		DBName: "meeting_service", SSLMode: "disable",
	}
	require.Equal(t, "host=db port=5433 user=u password=p dbname=meeting_service sslmode=disable", d.DSN())
}
