package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inventario/inventory-dashboard/app/api"
	"github.com/inventario/inventory-dashboard/models"
	"github.com/inventario/inventory-dashboard/records"
)

const listFailed = "Error al obtener productos"

type ProductProvider interface {
	ListProducts(ctx context.Context) ([]models.ProductRow, error)
}

type CatalogHandler struct {
	repo   ProductProvider
	logger *slog.Logger
}

func NewCatalogHandler(r ProductProvider, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:   r,
		logger: logger,
	}
}

// HandleGet serves GET /api/productos: every product with its category and
// supplier names joined in.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.ListProducts(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, h.logger, http.StatusInternalServerError, listFailed, err)
		return
	}

	products := make([]records.Product, len(res))
	for i, p := range res {
		products[i] = toRecord(p)
	}
	api.OKResponse(w, r, h.logger, products)
}

func toRecord(p models.ProductRow) records.Product {
	var withTax *string
	if p.UnitPriceWithTax.Valid {
		s := p.UnitPriceWithTax.Decimal.StringFixed(2)
		withTax = &s
	}

	return records.Product{
		ID:               int(p.ID),
		SKU:              p.SKU,
		Name:             p.Name,
		Description:      p.Description,
		LotPrice:         p.LotPrice.StringFixed(2),
		LotCount:         p.LotCount,
		UnitsPerLot:      p.UnitsPerLot,
		UnitPriceWithTax: withTax,
		StockUnits:       p.StockUnits,
		PurchaseDate:     records.DayFrom(p.PurchaseDate),
		Active:           p.Active,
		Category:         p.CategoryName,
		Supplier:         p.SupplierName,
	}
}
