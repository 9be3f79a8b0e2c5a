package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fincontrol/internal/app"
	"fincontrol/internal/models"
	"fincontrol/internal/pagination"
	"fincontrol/internal/report"
	"fincontrol/internal/services"
)

func transactionsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List, add and delete transactions",
	}

	cmd.AddCommand(listTransactionsCmd(c))
	cmd.AddCommand(addTransactionCmd(c))
	cmd.AddCommand(deleteTransactionCmd(c))
	return cmd
}

func listTransactionsCmd(c *cli) *cobra.Command {
	var start, end, txType string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := services.TransactionFilter{StartDate: start, EndDate: end}
			if txType != "" {
				t := models.TransactionType(txType)
				filter.Type = &t
			}

			return c.withApp(cmd, func(a *app.App) error {
				result, err := a.Transactions.ListTransactions(filter, pagination.PageRequest{Page: page, PageSize: pageSize})
				if err != nil {
					return err
				}
				if result.TotalItems == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma transação encontrada.")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tData\tDescrição\tTipo\tCategoria\tValor")
				for _, t := range result.Data {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						t.ID, report.FormatDate(t.Date), t.Description, t.Type.Label(), t.Category, report.FormatAmount(t))
				}
				fmt.Fprintf(w, "\npágina %d de %d (%d itens)\n", result.Page, result.TotalPages, result.TotalItems)
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&txType, "type", "", "INCOME, FIXED_EXPENSE, VARIABLE_EXPENSE or INVESTMENT")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")
	return cmd
}

func addTransactionCmd(c *cli) *cobra.Command {
	var in struct {
		description, date, txType, category, goalID, documentURL string
		amount                                                    float64
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long:  `Record a transaction. Investments given a --goal add their amount to that goal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				tx, err := a.Transactions.CreateTransaction(services.TransactionInput{
					Description: in.description,
					Amount:      in.amount,
					Date:        in.date,
					Type:        models.TransactionType(in.txType),
					Category:    models.Category(in.category),
					DocumentURL: in.documentURL,
					GoalID:      in.goalID,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Transação %s registrada: %s %s\n", tx.ID, tx.Description, report.FormatAmount(*tx))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.description, "description", "", "description")
	cmd.Flags().Float64Var(&in.amount, "amount", 0, "amount, greater than zero")
	cmd.Flags().StringVar(&in.date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.txType, "type", "", "INCOME, FIXED_EXPENSE, VARIABLE_EXPENSE or INVESTMENT")
	cmd.Flags().StringVar(&in.category, "category", "", "category (default depends on type)")
	cmd.Flags().StringVar(&in.goalID, "goal", "", "goal id for investments")
	cmd.Flags().StringVar(&in.documentURL, "document", "", "receipt or document link")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func deleteTransactionCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction. This cannot be undone, so --yes is required.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				if err := a.Transactions.DeleteTransaction(args[0], yes); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Transação excluída.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}
