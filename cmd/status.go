package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-cli/stint/internal/format"
	"github.com/stint-cli/stint/internal/remind"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		active := a.store.ActiveID()
		if active == "" {
			fmt.Println("No timer running")
			return nil
		}
		p, _ := a.store.Get(active)
		begun, _ := p.StartedAt()
		now := time.Now()
		session := a.store.DisplaySeconds(active, now) - p.TotalSeconds

		fmt.Printf("Tracking %s\n", p.Name)
		fmt.Printf("  session  %s (since %s)\n", format.Human(session), begun.In(a.cfg.Location()).Format(time.Kitchen))
		fmt.Printf("  total    %s\n", format.Clock(a.store.DisplaySeconds(active, now)))
		if a.cfg.Reminder.Enabled && remind.Overdue(begun, now, a.cfg.ReminderAfter()) {
			fmt.Printf("  running for %s, forgot to stop?\n", format.Human(session))
		}
		return nil
	},
}
