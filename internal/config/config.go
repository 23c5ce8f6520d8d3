// Package config loads runtime settings from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDBFile        = "zencheck.db"
	defaultSweepInterval = 60 * time.Second
)

type Config struct {
	// DBPath is the SQLite file backing the key-value store.
	DBPath string
	// SweepInterval is how often the reminder pass runs.
	SweepInterval time.Duration
	// DesktopNotifications gates delivery through the OS notifier.
	DesktopNotifications bool
	// GeminiAPIKey enables the AI features when non-empty.
	GeminiAPIKey string
}

// LoadEnv pulls in a .env file when present. Missing files are fine; the
// process environment always wins.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("no .env file found, using environment variables")
	}
}

func Load() Config {
	cfg := Config{
		DBPath:               defaultDBPath(),
		SweepInterval:        defaultSweepInterval,
		DesktopNotifications: true,
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
	}
	if v := os.Getenv("ZENCHECK_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ZENCHECK_SWEEP_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.SweepInterval = time.Duration(secs) * time.Second
		} else {
			Logger.WithField("value", v).Warn("ignoring invalid ZENCHECK_SWEEP_SECONDS")
		}
	}
	if v := os.Getenv("ZENCHECK_DESKTOP_NOTIFICATIONS"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.DesktopNotifications = enabled
		} else {
			Logger.WithField("value", v).Warn("ignoring invalid ZENCHECK_DESKTOP_NOTIFICATIONS")
		}
	}
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDBFile
	}
	return filepath.Join(home, ".zencheck", defaultDBFile)
}
