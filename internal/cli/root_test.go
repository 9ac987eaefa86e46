package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inventario/inventory-dashboard/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suppliersBody = `[
	{"idProveedor":1,"nombre":"ACME Corp","rfc":"ACM010101AB1","activo":true},
	{"idProveedor":2,"nombre":"Distribuidora Norte","activo":true},
	{"idProveedor":3,"nombre":"Abarrotes del Sur","activo":false}
]`

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/proveedores", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, suppliersBody)
	})
	mux.HandleFunc("GET /api/categorias", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Error al obtener categorías"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "list", "--kind", "proveedores", "--filter", "acme", "--base-url", srv.URL, "-o", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ACME Corp,N/A,ACM010101AB1,N/A,N/A,N/A,Sí", lines[1])
}

func TestListCommandSortsAndSummarizes(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "list", "-k", "suppliers", "--sort", "nombre:desc", "--base-url", srv.URL)
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "Distribuidora Norte"), strings.Index(out, "ACME Corp"))
	assert.Contains(t, out, "Nombre ▼")
	assert.Contains(t, out, "Mostrando 3 de 3 registros · Página 1 de 1")
}

func TestListCommandSurfacesBackendError(t *testing.T) {
	srv := newBackend(t)

	_, err := execute(t, "list", "--kind", "categorias", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error al obtener categorías")
}

func TestListCommandRejectsBadInput(t *testing.T) {
	srv := newBackend(t)

	_, err := execute(t, "list", "--kind", "clientes", "--base-url", srv.URL)
	assert.Error(t, err)

	_, err = execute(t, "list", "--page-size", "15", "--base-url", srv.URL)
	assert.ErrorIs(t, err, table.ErrInvalidPageSize)

	_, err = execute(t, "list", "-o", "yaml", "--base-url", srv.URL)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "inventory v"+Version+"\n", out)
}

func TestRootHasSubcommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"serve", "migrate", "dashboard", "list", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
