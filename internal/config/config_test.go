package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the test sees only the
// hardcoded fallbacks regardless of the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "APP_ENV", "LOG_LEVEL", "FRONTEND_URL",
		"SCHEDULES_FILE", "DEVICE_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "user_schedule_recipe.json", cfg.Storage.SchedulesFile)
	assert.Equal(t, "device_config.json", cfg.Storage.DeviceConfigFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8081")
	t.Setenv("SCHEDULES_FILE", "/var/lib/hvac/schedules.json")
	t.Setenv("DEVICE_CONFIG_FILE", "/etc/hvac/device.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.Equal(t, "/var/lib/hvac/schedules.json", cfg.Storage.SchedulesFile)
	assert.Equal(t, "/etc/hvac/device.json", cfg.Storage.DeviceConfigFile)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.App.Port = 0 }, true},
		{"port too large", func(c *Config) { c.App.Port = 70000 }, true},
		{"empty schedules file", func(c *Config) { c.Storage.SchedulesFile = "" }, true},
		{"empty device config file", func(c *Config) { c.Storage.DeviceConfigFile = "" }, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &Config{
				App:     AppConfig{Port: 5000, Env: "test", LogLevel: "info"},
				Storage: StorageConfig{SchedulesFile: "a.json", DeviceConfigFile: "b.json"},
			}
			c.mutate(cfg)
			err := cfg.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
