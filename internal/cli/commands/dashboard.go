package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inventario/inventory-dashboard/client"
	"github.com/inventario/inventory-dashboard/config"
	"github.com/inventario/inventory-dashboard/dashboard"
	"github.com/inventario/inventory-dashboard/dashboard/tui"
	"github.com/spf13/cobra"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Browse products, categories and suppliers interactively",
		Long: `Open the terminal dashboard against a running backend. Switch between
record kinds, search, sort and page through the rows.

Logs are written to --log-file, or discarded when none is given, so they
never mix with the screen.`,
		Example: `  inventory dashboard --base-url http://localhost:8080
  inventory dashboard --page-size 20 --log-file dashboard.log`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)

			logger, closeLog, err := dashboardLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			dash := dashboard.New(
				client.New(cfg.Client.BaseURL, client.WithLogger(logger)),
				dashboard.WithPageSize(cfg.Display.PageSize),
				dashboard.WithSchemas(dashboard.NewSchemas(cfg.Display.DateLayout)),
				dashboard.WithLogger(logger),
			)

			program := tea.NewProgram(tui.New(ctx, dash),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("base-url", "", "Backend base URL (default http://localhost:8080)")
	cmd.Flags().Int("page-size", 0, "Rows per page (10|20|30|40|50)")
	cmd.Flags().String("log-file", "", "Write logs to this file")
	return cmd
}

// dashboardLogger opens the log file named in cfg, or discards logs.
func dashboardLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewLogger(f, cfg), func() { _ = f.Close() }, nil
}
