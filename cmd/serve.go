package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"campus-parking/internal/data/migration"
	"campus-parking/internal/data/seed"
	"campus-parking/internal/payment"
	"campus-parking/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(configPath *string) *cobra.Command {
	var (
		migrateUp bool
		seedSlots bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the parking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer rt.log.Sync()

			config := rt.config
			rt.log.Info("Starting application",
				zap.String("app", config.App.Name),
				zap.String("port", config.App.Port),
				zap.String("storage", config.App.StorageDriver),
				zap.Bool("debug", config.App.Debug),
			)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			repo, db, err := rt.openRepository(ctx)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()

				if migrateUp {
					if _, err := migration.Up(ctx, db, rt.log); err != nil {
						return err
					}
				}
			}

			if !cmd.Flags().Changed("seed") {
				seedSlots = config.App.SeedOnStart
			}
			if seedSlots {
				if _, err := seed.Run(ctx, repo, rt.log); err != nil {
					return err
				}
			}

			provider := payment.NewSimulator(config.Payment.GatewayURL, config.Payment.SuccessRate, rt.log)

			// Wire all dependencies
			app := wire.Wiring(repo, provider, config, rt.log)

			return APIServer(ctx, app.Router, config.App.Port, rt.log)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "apply database migrations on startup")
	cmd.Flags().BoolVar(&seedSlots, "seed", true, "insert the default slots when the store is empty (defaults to SEED_ON_START)")

	return cmd
}
