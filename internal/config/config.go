// Package config reads server settings from the environment. A .env file
// in the working directory is loaded by main through godotenv.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Development credentials used when the environment sets none.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Config holds the server settings.
type Config struct {
	Port          string
	DatabasePath  string
	ContentFile   string
	ImagesDir     string
	AssetsDir     string
	AdminUsername string
	AdminPassword string
	// SettleDelayMS is how long the browser waits before the first
	// authoritative visibility measurement.
	SettleDelayMS int
}

// Load reads the environment, applying development defaults.
func Load() (cfg Config, err error) {
	cfg = Config{
		Port:          getenv("PORT", "8080"),
		DatabasePath:  getenv("DATABASE_PATH", "portfolio.db"),
		ContentFile:   os.Getenv("CONTENT_FILE"),
		ImagesDir:     getenv("IMAGES_DIR", "./images"),
		AssetsDir:     getenv("ASSETS_DIR", "./assets"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SettleDelayMS: 100,
	}

	if v := os.Getenv("SETTLE_DELAY_MS"); v != "" {
		cfg.SettleDelayMS, err = strconv.Atoi(v)
		if err != nil || cfg.SettleDelayMS < 0 {
			err = errors.Errorf("SETTLE_DELAY_MS must be a non-negative integer, got %q", v)
			return cfg, err
		}
	}

	// Default credentials for development (set both in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = DefaultAdminUsername
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}
	return cfg, err
}

// Warnings lists settings that are fine for development but not for a
// public server. The server logs them at startup.
func (c Config) Warnings() []string {
	var out []string
	if c.AdminUsername == DefaultAdminUsername {
		out = append(out, "Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if c.AdminPassword == DefaultAdminPassword {
		out = append(out, "Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
