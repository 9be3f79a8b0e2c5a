package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fincontrol/internal/app"
)

func reportCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the transaction report",
		Long:  `Export transactions in a date range. Without --start and --end the range is the current month to date.`,
	}

	cmd.AddCommand(exportReportCmd(c, "csv", func(a *app.App) exporter { return a.Reports.ExportCSV }))
	cmd.AddCommand(exportReportCmd(c, "pdf", func(a *app.App) exporter { return a.Reports.ExportPDF }))
	return cmd
}

type exporter func(start, end string, w io.Writer) (string, error)

func exportReportCmd(c *cli, format string, pick func(a *app.App) exporter) *cobra.Command {
	var start, end, dir string

	cmd := &cobra.Command{
		Use:   format,
		Short: "Write the report as " + format,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				var buf bytes.Buffer
				name, err := pick(a)(start, end, &buf)
				if err != nil {
					return err
				}

				path := filepath.Join(dir, name)
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Relatório salvo em %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}
