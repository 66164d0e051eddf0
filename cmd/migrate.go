package cmd

import (
	"context"
	"fmt"

	"campus-parking/internal/data/migration"

	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
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

			applied, err := migration.Up(ctx, db, rt.log)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", len(applied))
			return nil
		},
	}
}
