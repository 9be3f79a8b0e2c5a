package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fincontrol/internal/app"
	"fincontrol/internal/report"
)

func summaryCmd(c *cli) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly dashboard",
		Long:  `Print totals, expense breakdown and goal progress for a month. Defaults to the current month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				d, err := a.Dashboard.GetDashboard(year, month)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\n\n", d.Label)
				fmt.Fprintf(w, "Receitas\t%s\n", report.FormatMoney(d.Summary.TotalIncome))
				fmt.Fprintf(w, "Despesas fixas\t%s\n", report.FormatMoney(d.Summary.TotalFixedExpenses))
				fmt.Fprintf(w, "Despesas variáveis\t%s\n", report.FormatMoney(d.Summary.TotalVariableExpenses))
				fmt.Fprintf(w, "Investimentos\t%s\n", report.FormatMoney(d.Summary.TotalInvestments))
				fmt.Fprintf(w, "Saldo\t%s\n", report.FormatMoney(d.Summary.NetBalance))

				if len(d.ExpenseByCategory) > 0 {
					fmt.Fprintln(w, "\nDespesas por categoria")
					for _, ct := range d.ExpenseByCategory {
						fmt.Fprintf(w, "  %s\t%s\n", ct.Category, report.FormatMoney(ct.Total))
					}
				}
				if len(d.Goals) > 0 {
					fmt.Fprintln(w, "\nMetas")
					for _, g := range d.Goals {
						fmt.Fprintf(w, "  %s\t%s / %s\t%.0f%%\n",
							g.Name, report.FormatMoney(g.CurrentAmount), report.FormatMoney(g.TargetAmount), g.Progress)
					}
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	return cmd
}
