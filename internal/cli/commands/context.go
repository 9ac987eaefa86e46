package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/inventario/inventory-dashboard/config"
)

type configKey struct{}

type loggerKey struct{}

// WithConfig stores cfg in ctx for the subcommands.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the loaded config, or the defaults when none was loaded.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Server:  config.ServerConfig{Addr: config.DefaultAddr},
		Client:  config.ClientConfig{BaseURL: config.DefaultBaseURL},
		Display: config.DisplayConfig{PageSize: 10, DateLayout: config.DefaultDateLayout},
	}
}

// WithLogger stores logger in ctx for the subcommands.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
