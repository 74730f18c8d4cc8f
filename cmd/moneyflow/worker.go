package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moneyflow/internal/cli"
	"moneyflow/internal/events"
	"moneyflow/internal/log"
	"moneyflow/internal/worker"
)

func workerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume change events and write an audit log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.EventsEnabled() {
				return errors.New("worker needs AMQP_URL to be set")
			}

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

			client, err := events.NewClient(a.cfg.AMQPURL, a.cfg.AMQPExchange, a.cfg.AMQPQueue, a.logger)
			if err != nil {
				return fmt.Errorf("connect to broker: %w", err)
			}
			defer client.Close()

			audit := worker.NewAuditWorker(b.Store, a.logger)
			a.logger.Info("Starting moneyflow worker", log.FieldOperation, log.OpStartup, "queue", a.cfg.AMQPQueue)

			err = client.Run(ctx, audit.HandleChangeEvent)
			audit.LogSummary(context.WithoutCancel(ctx))
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.logger.Info("Worker stopped")
			return nil
		},
	}
}
