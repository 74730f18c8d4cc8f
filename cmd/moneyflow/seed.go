package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moneyflow/internal/cli"
	"moneyflow/internal/config"
	"moneyflow/internal/log"
	"moneyflow/internal/seed"
)

func seedCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset",
		Long: `Insert demo categories, accounts, clients, vendors, budgets and
transactions. The store must be empty unless --force is given, in which
case all existing records are deleted first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DataBackend == config.BackendMemory {
				a.logger.Warn("Seeding the memory backend; the data is lost when this command exits")
			}

			b, err := cli.OpenBackend(cmd.Context(), a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := b.Cleanup(); err != nil {
					a.logger.Error("Backend cleanup failed", log.FieldError, err)
				}
			}()

			res, err := seed.NewLoader(b.Store, a.logger).Load(cmd.Context(), force)
			if errors.Is(err, seed.ErrNotEmpty) {
				return fmt.Errorf("%w: rerun with --force to replace existing data", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d records (%d categories, %d accounts, %d clients, %d vendors, %d budgets, %d transactions)\n",
				res.Total(), res.Categories, res.Accounts, res.Clients, res.Vendors, res.Budgets, res.Transactions)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "delete existing data before seeding")
	return cmd
}
