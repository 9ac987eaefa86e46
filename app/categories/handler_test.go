package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inventario/inventory-dashboard/internal/testutil"
	"github.com/inventario/inventory-dashboard/models"
	"github.com/inventario/inventory-dashboard/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	ListErr    error
}

func (m *MockCategoryRepo) ListCategories(context.Context) ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

// --- Tests: GET /api/categorias ---

func TestHandleGetAll(t *testing.T) {
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	desc := "Refrescos y aguas"

	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Categories: []models.Category{
						{ID: 1, Name: "Bebidas", Description: &desc, Active: true, CreatedAt: &created},
						{ID: 2, Name: "Limpieza"},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []records.Category
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				require.Len(t, resp, 2)
				assert.Equal(t, "Bebidas", resp[0].Name)
				require.NotNil(t, resp[0].Description)
				assert.Equal(t, desc, *resp[0].Description)
				assert.True(t, resp[0].CreatedAt.Valid)
				assert.True(t, created.Equal(resp[0].CreatedAt.Time))
				assert.True(t, resp[0].UpdatedAt.IsNull())
				assert.False(t, resp[1].Active)
				assert.Nil(t, resp[1].Description)
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{Categories: []models.Category{}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{ListErr: errors.New("db error")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"error":"Error al obtener categorías"}`, rec.Body.String())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.mockRepoSetup(), testutil.NewTestLogger(t))

			req := httptest.NewRequest(http.MethodGet, "/api/categorias", nil)
			rec := httptest.NewRecorder()
			handler.HandleGetAll(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			tc.checkResponse(t, rec)
		})
	}
}
