package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/inventario/inventory-dashboard/config"
	"github.com/inventario/inventory-dashboard/dashboard"
	"github.com/inventario/inventory-dashboard/internal/testutil"
	"github.com/inventario/inventory-dashboard/records"
	"github.com/inventario/inventory-dashboard/table"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"kind", "filter", "where", "sort", "page", "page-size", "output", "base-url", "no-summary"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("addr"))
	assert.NotNil(t, cmd.Flags().Lookup("migrate"))
}

func TestNewDashboardCommand(t *testing.T) {
	cmd := NewDashboardCommand()

	assert.Equal(t, "dashboard", cmd.Use)
	for _, flag := range []string{"base-url", "page-size", "log-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	assert.Equal(t, "inventory v1.2.3\n", out.String())
}

func TestCommandsRequireDSN(t *testing.T) {
	for _, cmd := range []*cobra.Command{NewServeCommand(), NewMigrateCommand()} {
		cmd.SetArgs([]string{})
		ctx := WithConfig(context.Background(), &config.Config{})
		err := cmd.ExecuteContext(ctx)
		assert.ErrorIs(t, err, config.ErrMissingDSN)
	}
}

func TestGetConfigAndLoggerFallbacks(t *testing.T) {
	ctx := context.Background()

	cfg := GetConfig(ctx)
	assert.Equal(t, config.DefaultBaseURL, cfg.Client.BaseURL)
	assert.Equal(t, table.DefaultPageSize, cfg.Display.PageSize)
	assert.NotNil(t, GetLogger(ctx))

	want := &config.Config{Server: config.ServerConfig{Addr: ":1"}}
	assert.Same(t, want, GetConfig(WithConfig(ctx, want)))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "kind", "productos")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "productos", entry["kind"])
}

func TestParseSort(t *testing.T) {
	testCases := []struct {
		in      string
		field   string
		dir     table.Direction
		wantErr bool
	}{
		{in: "stockUnidades", field: "stockUnidades", dir: table.Ascending},
		{in: "stockUnidades:asc", field: "stockUnidades", dir: table.Ascending},
		{in: "nombre:DESC", field: "nombre", dir: table.Descending},
		{in: "nombre:up", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			field, dir, err := parseSort(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.field, field)
			assert.Equal(t, tc.dir, dir)
		})
	}
}

type stubFetcher struct {
	suppliers []records.Supplier
}

func (s stubFetcher) Categories(context.Context) ([]records.Category, error) { return nil, nil }
func (s stubFetcher) Products(context.Context) ([]records.Product, error) { return nil, nil }
func (s stubFetcher) Suppliers(context.Context) ([]records.Supplier, error) {
	return s.suppliers, nil
}

func loadSuppliers(t *testing.T, n int) dashboard.Grid {
	t.Helper()
	var rows []records.Supplier
	for i := 1; i <= n; i++ {
		rows = append(rows, records.Supplier{ID: i, Name: strings.Repeat("x", i), Active: i%2 == 0})
	}
	d := dashboard.New(stubFetcher{suppliers: rows}, dashboard.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, d.Load(context.Background(), records.KindSupplier))
	return d.Grid()
}

func TestApplyListOptions(t *testing.T) {
	g := loadSuppliers(t, 25)

	err := applyListOptions(g, &listOptions{where: []string{"activo=sí"}, sort: "nombre:desc", page: 2})
	require.NoError(t, err)

	s := g.Summary()
	assert.Equal(t, 12, s.Filtered)
	assert.Equal(t, 1, s.PageIndex)
	assert.Equal(t, 2, s.Showing)
	assert.Equal(t, table.Descending, g.SortDirection("nombre"))

	g = loadSuppliers(t, 3)
	require.NoError(t, applyListOptions(g, &listOptions{page: 9}))
	assert.Equal(t, 0, g.Summary().PageIndex, "page is clamped")

	assert.ErrorIs(t, applyListOptions(g, &listOptions{where: []string{"activo"}}), errInvalidFilter)
	assert.ErrorIs(t, applyListOptions(g, &listOptions{where: []string{"sku=1"}}), table.ErrUnknownColumn)
	assert.ErrorIs(t, applyListOptions(g, &listOptions{sort: "sku"}), table.ErrUnknownColumn)
}

func TestRenderGrid(t *testing.T) {
	g := loadSuppliers(t, 2)
	require.NoError(t, g.ToggleSort("nombre"))

	testCases := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: formatTable,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "Nombre ▲")
				assert.Contains(t, out, "Mostrando 2 de 2 registros · Página 1 de 1")
			},
		},
		{
			format: formatCSV,
			check: func(t *testing.T, out string) {
				lines := strings.Split(strings.TrimSpace(out), "\n")
				require.Len(t, lines, 3)
				assert.Equal(t, "x,N/A,N/A,N/A,N/A,N/A,No", lines[1])
			},
		},
		{
			format: formatMarkdown,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "| xx |")
				assert.NotContains(t, out, "Mostrando")
			},
		},
		{
			format: formatJSON,
			check: func(t *testing.T, out string) {
				var rows []map[string]string
				require.NoError(t, json.Unmarshal([]byte(out), &rows))
				require.Len(t, rows, 2)
				assert.Equal(t, "xx", rows[1]["nombre"])
				assert.Equal(t, "Sí", rows[1]["activo"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, renderGrid(&out, g, tc.format, true))
			tc.check(t, out.String())
		})
	}
}
