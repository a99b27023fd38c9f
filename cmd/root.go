package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stint-cli/stint/internal/config"
	"github.com/stint-cli/stint/internal/storage"
	"github.com/stint-cli/stint/internal/tracker"
	"github.com/stint-cli/stint/internal/version"
)

const dbFile = "stint.db"

var dataDirFlag string

var rootCmd = &cobra.Command{
	Use:   "stint",
	Short: "Track time per project",
	Long:  "stint keeps a running total of time per project. Run it bare for the full-screen UI, or drive it with subcommands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.Version = version.Info()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data", "", "Data directory (overrides config and STINT_DATA_DIR)")

	// Add commands; other files define these vars
	rootCmd.AddCommand(addCmd, startCmd, stopCmd, statusCmd, lsCmd, rmCmd, exportCmd, configCmd, tuiCmd)
}

// app bundles what every command needs: config, logging, storage, and the
// loaded tracker store.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	kv     storage.KV
	store  *tracker.Store
}

func openApp() (*app, error) {
	cfg, _ := config.Load()
	dir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, os.Stderr)
	kv, err := storage.Open(filepath.Join(dir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &app{cfg: cfg, logger: logger, kv: kv, store: tracker.New(kv, logger)}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Warn("storage close failed", "error", err)
	}
}

// resolveDataDir picks the data directory: --data flag, then the
// STINT_DATA_DIR env var, then config, then the default under the home
// directory.
func resolveDataDir(cfg config.Config) (string, error) {
	dir := dataDirFlag
	if dir == "" {
		dir = os.Getenv("STINT_DATA_DIR")
	}
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		return storage.DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
