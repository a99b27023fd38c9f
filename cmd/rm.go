package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:     "rm [project]",
	Aliases: []string{"delete"},
	Short:   "Delete a project and its tracked time",
	Args:    cobra.MinimumNArgs(1),
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
		p, _ := a.store.Get(id)

		if !rmYes {
			warn := ""
			if id == a.store.ActiveID() {
				warn = " (its timer is still running)"
			}
			fmt.Printf("Delete %s%s? Tracked time is lost. [y/N]: ", p.Name, warn)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if ans := strings.ToLower(strings.TrimSpace(line)); ans != "y" && ans != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		a.store.DeleteProject(id)
		fmt.Printf("Deleted %s\n", p.Name)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip the confirmation prompt")
}
