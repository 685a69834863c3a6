package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "massageshop"
password = "secret"
dbname = "massageshop"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[redis]
enabled = false

[logs]
file = ""
level = "info"

[metrics]
enabled = false
path = "/metrics"
service_name = "massageshop"

[admin]
password = "demo123"
session_ttl_minutes = 60

[timeline]
start_hour = 8
end_hour = 20
slot_interval_minutes = 30
`

func replaceLine(s, old, new string) string {
	return strings.Replace(s, old, new, 1)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "demo123", cfg.Admin.Password)
	assert.Equal(t, 8, cfg.Timeline.StartHour)
	assert.Equal(t, 20, cfg.Timeline.EndHour)
	assert.Equal(t, 30, cfg.Timeline.SlotIntervalMinutes)
	assert.Contains(t, cfg.Database.DSN(), "dbname=massageshop")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
	}{
		{"missing admin password", func(s string) string {
			return replaceLine(s, `password = "demo123"`, `password = ""`)
		}},
		{"interval not dividing hour", func(s string) string {
			return replaceLine(s, "slot_interval_minutes = 30", "slot_interval_minutes = 45")
		}},
		{"start after end", func(s string) string {
			return replaceLine(s, "start_hour = 8", "start_hour = 21")
		}},
		{"zero port", func(s string) string {
			return replaceLine(s, "http_port = 8080", "http_port = 0")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validConfig)))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
