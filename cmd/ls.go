package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stint-cli/stint/internal/format"
)

var lsFormat string

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects and their totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		now := time.Now()
		switch lsFormat {
		case "table":
			entries := a.store.Projects()
			if len(entries) == 0 {
				fmt.Println("No projects yet. Add one with 'stint add <name>'.")
				return nil
			}
			rows := make([]format.Row, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, format.Row{
					ID:      e.ID,
					Name:    e.Project.Name,
					Seconds: a.store.DisplaySeconds(e.ID, now),
					Running: e.Project.Running(),
				})
			}
			fmt.Print(format.Table(rows))
		case "json":
			out, err := json.MarshalIndent(exportRows(a.store, now), "", "  ")
			if err != nil {
				return fmt.Errorf("encode projects: %w", err)
			}
			fmt.Println(string(out))
		default:
			return fmt.Errorf("unknown format %q (table|json)", lsFormat)
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVarP(&lsFormat, "format", "f", "table", "Output format: table|json")
}
