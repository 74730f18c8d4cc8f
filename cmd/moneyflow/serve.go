package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moneyflow/internal/cli"
	apphttp "moneyflow/internal/http"
	"moneyflow/internal/log"
	"moneyflow/internal/services"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := cli.SignalContext(cmd.Context(), a.logger)
			defer cancel()

			b, err := cli.OpenBackend(ctx, a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := b.Cleanup(); err != nil {
					a.logger.Error("Backend cleanup failed", log.FieldError, err)
				}
			}()

			svc := services.New(b.Store, b.Publisher, a.logger)
			srv := apphttp.NewServer(svc, apphttp.Options{
				Addr:               ":" + a.cfg.Port,
				CORSAllowedOrigins: a.cfg.CORSAllowedOrigins,
				RateLimitPerMinute: a.cfg.RateLimitPerMinute,
				Logger:             a.logger,
			})

			a.logger.Info("Starting moneyflow",
				log.FieldOperation, log.OpStartup,
				"port", a.cfg.Port,
				"backend", a.cfg.DataBackend,
				"events", a.cfg.EventsEnabled(),
				"version", version)

			if err := srv.Run(ctx, a.cfg.ShutdownTimeout); err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			a.logger.Info("Server stopped gracefully")
			return nil
		},
	}
}
