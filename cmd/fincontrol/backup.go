package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"fincontrol/internal/app"
)

func backupCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all data",
	}

	cmd.AddCommand(exportBackupCmd(c))
	cmd.AddCommand(importBackupCmd(c))
	return cmd
}

func exportBackupCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every transaction and goal to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app.App) error {
				backup, err := a.Backup.Export()
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(backup, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode backup: %w", err)
				}

				path := out
				if path == "" {
					path = filepath.Join(".", fmt.Sprintf("backup_financeiro_%s.json", time.Now().Format("2006-01-02")))
				}
				if err := os.WriteFile(path, data, 0o600); err != nil {
					return fmt.Errorf("failed to write backup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup salvo em %s (%d transações, %d metas)\n",
					path, len(backup.Transactions), len(backup.Goals))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	return cmd
}

func importBackupCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace stored data with a backup",
		Long:  `Replace the collections present in the backup file. Existing data for those collections is lost, so --yes is required.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("import replaces existing data; rerun with --yes to confirm")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup: %w", err)
			}
			defer f.Close()

			return c.withApp(cmd, func(a *app.App) error {
				result, err := a.Backup.Import(f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dados restaurados com sucesso! (%d transações, %d metas)\n",
					result.TransactionCount, result.GoalCount)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing existing data")
	return cmd
}
