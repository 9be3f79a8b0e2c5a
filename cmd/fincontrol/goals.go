package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fincontrol/internal/app"
	"fincontrol/internal/report"
	"fincontrol/internal/services"
)

func goalsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "List, add and delete savings goals",
	}

	cmd.AddCommand(listGoalsCmd(c))
	cmd.AddCommand(addGoalCmd(c))
	cmd.AddCommand(deleteGoalCmd(c))
	return cmd
}

func listGoalsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				goals, err := a.Goals.ListGoals()
				if err != nil {
					return err
				}
				if len(goals) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma meta cadastrada.")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tMeta\tAtual\tAlvo\tProgresso\tPrazo")
				for _, g := range goals {
					status := fmt.Sprintf("%.0f%%", g.Progress)
					if g.Completed {
						status += " ✓"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						g.ID, g.Name, report.FormatMoney(g.CurrentAmount), report.FormatMoney(g.TargetAmount),
						status, report.FormatDate(g.Deadline))
				}
				return w.Flush()
			})
		},
	}
}

func addGoalCmd(c *cli) *cobra.Command {
	var in services.GoalInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				g, err := a.Goals.CreateGoal(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Meta %s criada: %s\n", g.ID, g.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "goal name")
	cmd.Flags().Float64Var(&in.TargetAmount, "target", 0, "target amount")
	cmd.Flags().Float64Var(&in.CurrentAmount, "current", 0, "amount already saved")
	cmd.Flags().StringVar(&in.Deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free text notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func deleteGoalCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Long:  `Delete a goal. Transactions that contributed to it are kept. Requires --yes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				if err := a.Goals.DeleteGoal(args[0], yes); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Meta excluída.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}
