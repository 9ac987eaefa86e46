package commands

import (
	"fmt"

	"github.com/inventario/inventory-dashboard/models"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Create or upgrade the categorias, proveedores and productos tables
on the configured database.`,
		Example: `  inventory migrate --driver mysql --dsn "inv:secret@tcp(localhost:3306)/inventarios"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			if err := cfg.RequireDSN(); err != nil {
				return err
			}

			GetLogger(ctx).Info("running migrations", "driver", cfg.Database.Driver)
			if err := models.Migrate(ctx, cfg.Database.Driver, cfg.Database.DSN); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migraciones aplicadas")
			return nil
		},
	}
}
