package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inventario/inventory-dashboard/app/api"
	"github.com/inventario/inventory-dashboard/models"
	"github.com/inventario/inventory-dashboard/records"
)

type CategoryProvider interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	repo   CategoryProvider
	logger *slog.Logger
}

func NewCategoryHandler(r CategoryProvider, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, logger: logger}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListCategories(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, h.logger, http.StatusInternalServerError, "Error al obtener categorías", err)
		return
	}

	response := make([]records.Category, len(categories))
	for i, c := range categories {
		response[i] = records.Category{
			ID:          int(c.ID),
			Name:        c.Name,
			Description: c.Description,
			Active:      c.Active,
			CreatedAt:   records.DateFrom(c.CreatedAt),
			UpdatedAt:   records.DateFrom(c.UpdatedAt),
		}
	}
	api.OKResponse(w, r, h.logger, response)
}
