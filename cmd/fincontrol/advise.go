package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincontrol/internal/app"
)

func adviseCmd(c *cli) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Ask the AI advisor about a month",
		Long:  `Send the month's totals and transactions to Gemini and print its advice. Needs GEMINI_API_KEY.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				advice, err := a.Advisor.Analyze(cmd.Context(), year, month)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), advice)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	return cmd
}
