package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moneyflow/internal/cli"
	"moneyflow/internal/config"
	"moneyflow/internal/log"
)

var (
	cfgFile string
	version = "dev"
)

// app is what every subcommand gets after the root pre-run.
type app struct {
	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "moneyflow",
		Short:         "Personal income and expense tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := cli.LoadAndValidateConfig(cfgFile)
			if err != nil {
				return err
			}
			logger, err := cli.SetupLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (environment variables take precedence)")

	root.AddCommand(
		serveCmd(a),
		migrateCmd(a),
		seedCmd(a),
		workerCmd(a),
		versionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
