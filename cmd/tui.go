package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stint-cli/stint/internal/config"
	"github.com/stint-cli/stint/internal/storage"
	"github.com/stint-cli/stint/internal/tracker"
	"github.com/stint-cli/stint/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen tracker",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	cfg, _ := config.Load()
	dir, err := resolveDataDir(cfg)
	if err != nil {
		return err
	}

	// Keep log lines off the alternate screen.
	logW := io.Writer(io.Discard)
	if f, err := os.OpenFile(filepath.Join(dir, "stint.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		defer f.Close()
		logW = f
	}
	logger := newLogger(cfg, logW)

	kv, err := storage.Open(filepath.Join(dir, dbFile))
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	return ui.Run(tracker.New(kv, logger), kv, cfg, logger)
}
