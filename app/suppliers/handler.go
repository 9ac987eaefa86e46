package suppliers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inventario/inventory-dashboard/app/api"
	"github.com/inventario/inventory-dashboard/models"
	"github.com/inventario/inventory-dashboard/records"
)

type SupplierProvider interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}

type SupplierHandler struct {
	repo   SupplierProvider
	logger *slog.Logger
}

func NewSupplierHandler(r SupplierProvider, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{repo: r, logger: logger}
}

// HandleGetAll serves GET /api/proveedores. Fiscal document paths are kept
// out of the listing.
func (h *SupplierHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.repo.ListSuppliers(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, h.logger, http.StatusInternalServerError, "Error al obtener proveedores", err)
		return
	}

	response := make([]records.Supplier, len(suppliers))
	for i, s := range suppliers {
		response[i] = records.Supplier{
			ID:        int(s.ID),
			Name:      s.Name,
			LegalName: s.LegalName,
			TaxID:     s.TaxID,
			Contact:   s.Contact,
			Phone:     s.Phone,
			Email:     s.Email,
			Active:    s.Active,
		}
	}
	api.OKResponse(w, r, h.logger, response)
}
