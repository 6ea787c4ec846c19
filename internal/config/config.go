package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PublicBaseURL   string
	StaticDir       string
	ShutdownTimeout Duration
	NHL             NHLConfig
	Chart           ChartConfig
	Dumps           DumpsConfig
	Metrics         MetricsConfig
	// DotEnvErr is set when the .env file exists but could not be parsed; the
	// remaining settings then come from the process environment only.
	DotEnvErr error
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file (or DOTENV_PATH) is applied first without overriding variables already set.
func Load() Config {
	dotEnvErr := loadDotEnv(envOrDefault(envDotEnvPath, ".env"))

	return Config{
		DotEnvErr:       dotEnvErr,
		Port:            envOrDefault(envPort, defaultPort),
		PublicBaseURL:   envOrDefault(envPublicBaseURL, ""),
		StaticDir:       envOrDefault(envStaticDir, defaultStaticDir),
		ShutdownTimeout: durationEnvOrDefault(envShutdownDeadline, defaultShutdownTimeout),
		NHL:             loadNHL(),
		Chart:           loadChart(),
		Dumps:           loadDumps(),
		Metrics:         loadMetrics(),
	}
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// platformManaged reports whether we run on a managed platform with a read-only filesystem.
func platformManaged() bool {
	return os.Getenv(envPlatformMarker) != ""
}
