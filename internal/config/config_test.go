package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[server]
http_port = 8080
static_dir = "./static"
allowed_origins = ["https://zarechye-guesthouse.ru"]

[logs]
file = ""

[metrics]
enabled = true
service_name = "booking-engine"

[crm]
encrypted_url = "bZg+YuFrmjvIfBvOyZdAHmh8DBFeiSCQ9ekDyLasbN1eyd5Aw7ZiTFEJB1ak3fEyhGTJke3TVR8eaveipvRgDQ=="
stay_from_field = "UF_CRM_STAY_FROM"
stay_to_field = "UF_CRM_STAY_TO"

[[rooms.types]]
code = "UF_CRM_ROOM_STANDARD"
label = "Стандарт"
base_price = 5000.0
occupancy_multiplier = 1.2

[[rooms.types]]
code = "UF_CRM_ROOM_LUX"
label = "Люкс"
base_price = 12000.0
occupancy_multiplier = 1.15
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("CRM_SECRET_KEY", "8f3a1c5d9e2b4a6c8d0f1e3a5c7b9d2e4f6a8c0d1b3e5a7c9d2f4b6e8a0c3d5f")
	t.Setenv("CRM_SECRET_IV", "a1b2c3d4e5f60718293a4b5c6d7e8f90")
}

func TestLoad(t *testing.T) {
	setSecrets(t)

	cfg, err := Load(writeConfig(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.Equal(t, []string{"https://zarechye-guesthouse.ru"}, cfg.Server.AllowedOrigins)

	// Дефолты применяются к незаполненным полям
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.CRM.Timeout)

	// Секреты приходят из окружения
	assert.NotEmpty(t, cfg.CRM.Secrets.Key)
	assert.NotEmpty(t, cfg.CRM.Secrets.IV)

	// Категории сохраняют порядок файла
	types := cfg.RoomTypes()
	require.Len(t, types, 2)
	assert.Equal(t, "UF_CRM_ROOM_STANDARD", types[0].Code)
	assert.Equal(t, "Стандарт", types[0].Label)
	assert.Equal(t, 5000.0, types[0].BasePrice)
	assert.Equal(t, 1.2, types[0].OccupancyMultiplier)
	assert.Equal(t, "UF_CRM_ROOM_LUX", types[1].Code)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("CRM_SECRET_KEY", "")
	t.Setenv("CRM_SECRET_IV", "")

	_, err := Load(writeConfig(t, validTOML))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_BrokenTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = 8080"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	setSecrets(t)

	tests := []struct {
		name string
		toml string
	}{
		{
			name: "missing http port",
			toml: `
[crm]
encrypted_url = "abc"
stay_from_field = "UF_CRM_STAY_FROM"
stay_to_field = "UF_CRM_STAY_TO"

[[rooms.types]]
code = "UF_CRM_ROOM_STANDARD"
label = "Стандарт"
base_price = 5000.0
occupancy_multiplier = 1.2
`,
		},
		{
			name: "missing encrypted url",
			toml: `
[server]
http_port = 8080

[crm]
stay_from_field = "UF_CRM_STAY_FROM"
stay_to_field = "UF_CRM_STAY_TO"

[[rooms.types]]
code = "UF_CRM_ROOM_STANDARD"
label = "Стандарт"
base_price = 5000.0
occupancy_multiplier = 1.2
`,
		},
		{
			name: "missing stay fields",
			toml: `
[server]
http_port = 8080

[crm]
encrypted_url = "abc"

[[rooms.types]]
code = "UF_CRM_ROOM_STANDARD"
label = "Стандарт"
base_price = 5000.0
occupancy_multiplier = 1.2
`,
		},
		{
			name: "no room types",
			toml: `
[server]
http_port = 8080

[crm]
encrypted_url = "abc"
stay_from_field = "UF_CRM_STAY_FROM"
stay_to_field = "UF_CRM_STAY_TO"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.toml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
