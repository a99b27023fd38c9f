package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stint-cli/stint/internal/tracker"
)

var (
	exportFormat string
	exportOut    string
)

// exportRow is the external shape of a project, shared by 'export' and
// 'ls --format json'. DisplaySeconds folds the running interval in so the
// numbers match what the UI shows.
type exportRow struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	TotalSeconds   int64  `json:"totalSeconds" yaml:"totalSeconds"`
	DisplaySeconds int64  `json:"displaySeconds" yaml:"displaySeconds"`
	Running        bool   `json:"running" yaml:"running"`
}

func exportRows(st *tracker.Store, now time.Time) []exportRow {
	entries := st.Projects()
	rows := make([]exportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, exportRow{
			ID:             e.ID,
			Name:           e.Project.Name,
			TotalSeconds:   e.Project.TotalSeconds,
			DisplaySeconds: st.DisplaySeconds(e.ID, now),
			Running:        e.Project.Running(),
		})
	}
	return rows
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export project totals as JSON, YAML, or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var out io.Writer = os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		rows := exportRows(a.store, time.Now())
		switch exportFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rows); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
		case "yaml":
			enc := yaml.NewEncoder(out)
			if err := enc.Encode(rows); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			if err := enc.Close(); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		case "csv":
			w := csv.NewWriter(out)
			_ = w.Write([]string{"id", "name", "totalSeconds", "displaySeconds", "running"})
			for _, r := range rows {
				_ = w.Write([]string{
					r.ID,
					r.Name,
					strconv.FormatInt(r.TotalSeconds, 10),
					strconv.FormatInt(r.DisplaySeconds, 10),
					strconv.FormatBool(r.Running),
				})
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q (json|yaml|csv)", exportFormat)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json|yaml|csv")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
}
