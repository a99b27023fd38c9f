package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-cli/stint/internal/format"
	"github.com/stint-cli/stint/internal/notify"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		active := a.store.ActiveID()
		if active == "" {
			return fmt.Errorf("no timer running")
		}
		p, _ := a.store.Get(active)
		session := a.store.DisplaySeconds(active, time.Now()) - p.TotalSeconds

		a.store.StopTimer(active)

		p, _ = a.store.Get(active)
		fmt.Printf("Stopped %s: %s this session, %s total\n", p.Name, format.Human(session), format.Human(p.TotalSeconds))
		if a.cfg.Notifications.Enabled {
			if err := notify.Stopped(p.Name, session); err != nil {
				a.logger.Debug("notification failed", "error", err)
			}
		}
		return nil
	},
}
