// Package config loads layered configuration for the inventory commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/inventario/inventory-dashboard/models"
	"github.com/inventario/inventory-dashboard/table"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "INVENTORY_"
	// DefaultFile is read from the working directory when no file is given.
	DefaultFile = "inventory.yaml"

	DefaultAddr       = ":8080"
	DefaultBaseURL    = "http://localhost:8080"
	DefaultDateLayout = "2/1/2006"
)

var (
	ErrMissingDSN       = errors.New("database.dsn is required")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Client   ClientConfig   `koanf:"client"`
	Display  DisplayConfig  `koanf:"display"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

type ClientConfig struct {
	BaseURL string `koanf:"base_url"`
}

type DisplayConfig struct {
	PageSize   int    `koanf:"page_size"`
	DateLayout string `koanf:"date_layout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File receives dashboard logs; empty discards them.
	File string `koanf:"file"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"addr":        "server.addr",
	"driver":      "database.driver",
	"dsn":         "database.dsn",
	"base-url":    "client.base_url",
	"page-size":   "display.page_size",
	"date-layout": "display.date_layout",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"log-file":    "log.file",
}

func defaults() map[string]any {
	return map[string]any{
		"server.addr":         DefaultAddr,
		"database.driver":     models.DriverPostgres,
		"database.dsn":        "",
		"client.base_url":     DefaultBaseURL,
		"display.page_size":   table.DefaultPageSize,
		"display.date_layout": DefaultDateLayout,
		"log.level":           "info",
		"log.format":          "text",
		"log.file":            "",
	}
}

// LoadDotEnv exports the variables in path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from defaults, the YAML file, the environment and
// flags, each layer overriding the previous one. Only flags that were set on
// the command line take part.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// INVENTORY_CLIENT_BASE_URL -> client.base_url
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case models.DriverPostgres, models.DriverMySQL:
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownDriver, c.Database.Driver)
	}
	if !table.ValidPageSize(c.Display.PageSize) {
		return fmt.Errorf("display.page_size: %w: %d", table.ErrInvalidPageSize, c.Display.PageSize)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	return nil
}

// RequireDSN is checked by the commands that talk to the database.
func (c *Config) RequireDSN() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return ErrMissingDSN
	}
	return nil
}
