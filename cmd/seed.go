package cmd

import (
	"context"
	"fmt"

	"campus-parking/internal/data/repository"
	"campus-parking/internal/data/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default parking slots into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer rt.log.Sync()

			ctx := context.Background()
			db, err := rt.openPostgres(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := seed.Run(ctx, repository.NewRepository(db, rt.log), rt.log)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d slot(s)\n", n)
			return nil
		},
	}
}
