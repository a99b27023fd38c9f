package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type NotificationsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ReminderConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	After   string `mapstructure:"after"` // duration a timer may run before a nudge, e.g. "2h"
}

type Config struct {
	DataDir       string              `mapstructure:"data_dir"`  // "" = default data dir
	Theme         string              `mapstructure:"theme"`     // fallback when no persisted preference
	Timezone      string              `mapstructure:"timezone"`  // e.g. "Asia/Kolkata" (optional)
	LogLevel      string              `mapstructure:"log_level"` // debug|info|warn|error
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Reminder      ReminderConfig      `mapstructure:"reminder"`
}

const defaultReminderAfter = 2 * time.Hour

func Default() Config {
	return Config{
		DataDir:  "",
		Theme:    "dark",
		Timezone: "",
		LogLevel: "warn",
		Notifications: NotificationsConfig{
			Enabled: true,
		},
		Reminder: ReminderConfig{
			Enabled: true,
			After:   "2h",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "stint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.after", cfg.Reminder.After)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone for the clock display,
// falling back to the system zone.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// ReminderAfter parses reminder.after; bad values fall back to the default.
func (c Config) ReminderAfter() time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(c.Reminder.After)); err == nil && d > 0 {
		return d
	}
	return defaultReminderAfter
}
