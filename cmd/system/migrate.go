package system

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jasimarif/psychology-app/config"
	"github.com/jasimarif/psychology-app/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the booking schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cfg)
			defer cancel()

			fmt.Println("Running migrations.")
			if err := migrate(ctx, cfg); err != nil {
				return err
			}
			fmt.Println("Migrations executed successfully.")
			return nil
		},
	}

	return cmd
}

func migrate(ctx context.Context, cfg *config.Config) error {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create ent client: %w", err)
	}
	defer client.Close()

	if err := database.MigrateEnt(ctx, client); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
