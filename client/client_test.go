package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inventario/inventory-dashboard/internal/testutil"
	"github.com/inventario/inventory-dashboard/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &path
}

func TestProducts(t *testing.T) {
	body := `[
		{"idProducto":1,"sku":"AG-1","nombreArticulo":"Agua","descripcionArticulo":null,"precioLote":"120.00",
		 "cantidadLotes":2,"unidadesPorLote":12,"precioUnitarioConIva":"11.60","stockUnidades":-3,
		 "fechaCompra":"2024-02-01","activo":true,"categoria":"Bebidas","proveedor":null}
	]`
	srv, path := newTestServer(t, http.StatusOK, body)
	c := New(srv.URL+"/", WithLogger(testutil.NewTestLogger(t)))

	got, err := c.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/productos", *path)
	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "Agua", p.Name)
	assert.Equal(t, "120.00", p.LotPrice)
	assert.Equal(t, -3, p.StockUnits)
	assert.True(t, p.PurchaseDate.Valid)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Bebidas", *p.Category)
	assert.Nil(t, p.Supplier)
}

func TestCategoriesAndSuppliersPaths(t *testing.T) {
	srv, path := newTestServer(t, http.StatusOK, `[{"idCategoria":1,"nombre":"Bebidas","activo":true,"extra":"ignored"}]`)
	c := New(srv.URL)

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/categorias", *path)
	assert.Equal(t, []records.Category{{ID: 1, Name: "Bebidas", Active: true}}, cats)

	_, err = c.Suppliers(context.Background())
	assert.Equal(t, "/api/proveedores", *path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr, "category body is not a supplier shape")
	assert.Equal(t, 0, schemaErr.Index)
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantSchema  bool
		wantMessage string
	}{
		{
			name:        "server error with message",
			status:      http.StatusInternalServerError,
			body:        `{"error":"Error al obtener categorías"}`,
			wantMessage: "Error al obtener categorías",
		},
		{
			name:        "server error without body",
			status:      http.StatusBadGateway,
			body:        ``,
			wantMessage: "Error al cargar los datos (HTTP 502)",
		},
		{
			name:       "object instead of array",
			status:     http.StatusOK,
			body:       `{"idCategoria":1,"nombre":"Bebidas"}`,
			wantSchema: true,
		},
		{
			name:       "null body",
			status:     http.StatusOK,
			body:       `null`,
			wantSchema: true,
		},
		{
			name:       "wrong field type",
			status:     http.StatusOK,
			body:       `[{"idCategoria":"uno","nombre":"Bebidas"}]`,
			wantSchema: true,
		},
		{
			name:       "missing required name",
			status:     http.StatusOK,
			body:       `[{"idCategoria":1,"nombre":"Bebidas"},{"idCategoria":2}]`,
			wantSchema: true,
		},
		{
			name:       "truncated json",
			status:     http.StatusOK,
			body:       `[{"idCategoria":1,`,
			wantSchema: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tc.status, tc.body)
			_, err := New(srv.URL).Categories(context.Background())
			require.Error(t, err)

			if tc.wantSchema {
				var schemaErr *SchemaError
				assert.ErrorAs(t, err, &schemaErr)
				assert.Contains(t, err.Error(), "/api/categorias")
				return
			}
			var transportErr *TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, tc.status, transportErr.StatusCode)
			assert.Equal(t, tc.wantMessage, err.Error())
		})
	}
}

func TestEmptyArrayIsValid(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)
	got, err := New(srv.URL).Suppliers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Products(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
	assert.Contains(t, err.Error(), "Error al cargar los datos")
}

func TestCancelledContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).Products(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOversizedBodyIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("["))
		_, _ = w.Write([]byte(strings.Repeat(" ", maxBodySize)))
		_, _ = w.Write([]byte("]"))
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).Products(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, errBodyTooLarge)
}
