// Package cli provides the command-line interface of the inventory tools.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/inventario/inventory-dashboard/config"
	"github.com/inventario/inventory-dashboard/internal/cli/commands"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		envFile string
	)

	rootCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory backend and dashboard",
		Long: `inventory serves the product, category and supplier listings of the
inventory database and browses them from the terminal.

Settings are read from inventory.yaml, INVENTORY_* environment variables
and flags, in increasing order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := commands.NewLogger(cmd.ErrOrStderr(), cfg.Log)
			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./inventory.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file exported before loading config")
	rootCmd.PersistentFlags().String("driver", "", "Database driver (postgres|mysql)")
	rootCmd.PersistentFlags().String("dsn", "", "Database connection string")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"postgres", "mysql"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewDashboardCommand())
	rootCmd.AddCommand(commands.NewListCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
