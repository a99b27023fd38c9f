package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [project]",
	Short: "Start tracking a project",
	Long:  "Start the timer on a project, stopping whichever one was running. Accepts a project id, a name, or a unique name prefix.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := resolveProject(a.store, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if a.store.ActiveID() == id {
			p, _ := a.store.Get(id)
			fmt.Printf("%s is already running\n", p.Name)
			return nil
		}

		var stopped string
		if prev := a.store.ActiveID(); prev != "" {
			if p, ok := a.store.Get(prev); ok {
				stopped = p.Name
			}
		}
		a.store.StartTimer(id)
		// The process exits right after this, so flush the open interval.
		a.store.Save()

		if stopped != "" {
			fmt.Printf("Stopped %s\n", stopped)
		}
		p, _ := a.store.Get(id)
		fmt.Printf("Tracking %s since %s\n", p.Name, time.Now().In(a.cfg.Location()).Format(time.Kitchen))
		return nil
	},
}
