package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ramsey-B/rose/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			logger.WithError(err).Error("Invalid configuration")
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.New(cfg, logger).Run(ctx)
	},
}
