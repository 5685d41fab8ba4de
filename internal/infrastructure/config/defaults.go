package config

import (
	"os"
	"path/filepath"
	"time"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: a local sqlite file keeps the tool zero-setup
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" && cfg.Database.Type == "sqlite" {
		cfg.Database.Path = defaultDatabasePath()
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "cmdrwatch"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "cmdrwatch"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Intel defaults
	if cfg.Intel.BountyThreshold == 0 {
		cfg.Intel.BountyThreshold = 10000
	}

	// Journal defaults
	if cfg.Journal.Dir == "" {
		cfg.Journal.Dir = defaultJournalDir()
	}
	if cfg.Journal.PollsPerSecond == 0 {
		cfg.Journal.PollsPerSecond = 2
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "cmdrwatch.db"
	}
	return filepath.Join(homeDir, ".cmdrwatch", "cmdrwatch.db")
}

func defaultJournalDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	// The game's default journal location on Windows; elsewhere the user
	// points CW_JOURNAL_DIR at a synced copy.
	return filepath.Join(homeDir, "Saved Games", "Frontier Developments", "Elite Dangerous")
}
