package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		name := strings.Join(args, " ")
		id := a.store.AddProject(name)
		if id == "" {
			return fmt.Errorf("project name must not be blank")
		}
		fmt.Printf("Added %s (%s)\n", strings.TrimSpace(name), id)
		return nil
	},
}
