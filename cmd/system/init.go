package system

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jasimarif/psychology-app/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configured databases",
		Long: `Create every database listed under server.databases (or the
application database when the list is empty) that does not exist yet.
With --migrate the booking schema is applied afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			withMigrate, err := cmd.Flags().GetBool("migrate")
			if err != nil {
				return fmt.Errorf("failed to read migrate flag: %w", err)
			}
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cfg)
			defer cancel()

			created, err := database.InitializeDatabases(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize databases: %w", err)
			}
			if len(created) == 0 {
				fmt.Println("All databases already exist.")
			} else {
				fmt.Printf("Created databases: %s\n", strings.Join(created, ", "))
			}

			if withMigrate {
				fmt.Println("Running migrations.")
				if err := migrate(ctx, cfg); err != nil {
					return err
				}
				fmt.Println("Migrations executed successfully.")
			}
			return nil
		},
	}

	cmd.Flags().Bool("migrate", false, "apply the booking schema after creating databases")
	return cmd
}
