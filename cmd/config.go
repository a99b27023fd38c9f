package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stint-cli/stint/internal/config"
)

// effectiveConfig is the config command's output shape: resolved settings
// plus the paths actually in use.
type effectiveConfig struct {
	DataDir       string `yaml:"data_dir"`
	Theme         string `yaml:"theme"`
	Timezone      string `yaml:"timezone"`
	LogLevel      string `yaml:"log_level"`
	Notifications struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"notifications"`
	Reminder struct {
		Enabled bool   `yaml:"enabled"`
		After   string `yaml:"after"`
	} `yaml:"reminder"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir, err := resolveDataDir(cfg)
		if err != nil {
			return err
		}

		var out effectiveConfig
		out.DataDir = dir
		out.Theme = cfg.Theme
		out.Timezone = cfg.Location().String()
		out.LogLevel = cfg.LogLevel
		out.Notifications.Enabled = cfg.Notifications.Enabled
		out.Reminder.Enabled = cfg.Reminder.Enabled
		out.Reminder.After = cfg.ReminderAfter().String()

		b, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		fmt.Print(string(b))
		return nil
	},
}
