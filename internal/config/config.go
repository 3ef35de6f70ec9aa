package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// StorageConfig holds the flat-file paths. The paths are passed into the
// stores explicitly; nothing else in the process reads them.
type StorageConfig struct {
	SchedulesFile    string
	DeviceConfigFile string
}

func Load() (*Config, error) {
	// .env is optional outside local development.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Storage = StorageConfig{
		SchedulesFile:    getEnv("SCHEDULES_FILE", "user_schedule_recipe.json"),
		DeviceConfigFile: getEnv("DEVICE_CONFIG_FILE", "device_config.json"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be a valid port number")
	}
	if c.Storage.SchedulesFile == "" {
		return fmt.Errorf("SCHEDULES_FILE is required")
	}
	if c.Storage.DeviceConfigFile == "" {
		return fmt.Errorf("DEVICE_CONFIG_FILE is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
