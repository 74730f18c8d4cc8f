package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moneyflow/internal/config"
	"moneyflow/internal/log"
	"moneyflow/internal/store/sqlite"
)

func migrateCmd(a *app) *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long: `Create or update the SQLite schema at SQLITE_DB_PATH.

The server applies migrations on start as well; this command is for
preparing a database ahead of time or checking its version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.DataBackend != config.BackendSQLite {
				return errors.New("migrate only applies to the sqlite backend")
			}
			path := a.cfg.SQLiteDBPath

			if !status {
				a.logger.Info("Running database migrations", log.FieldOperation, log.OpMigrate, "db_path", path)
				if err := sqlite.RunMigrations(path); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}

			v, dirty, err := sqlite.SchemaVersion(path)
			if err != nil {
				return err
			}
			a.logger.Info("Schema version", "version", v, "dirty", dirty, "db_path", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "only report the current schema version")
	return cmd
}
