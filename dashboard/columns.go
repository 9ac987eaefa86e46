package dashboard

import (
	"github.com/inventario/inventory-dashboard/records"
	"github.com/inventario/inventory-dashboard/table"
)

// Schemas holds the column schema of every record kind. It is built once
// and never mutated.
type Schemas struct {
	Categories table.Schema[records.Category]
	Suppliers  table.Schema[records.Supplier]
	Products   table.Schema[records.Product]
}

// DefaultSchemas uses DefaultDateLayout.
var DefaultSchemas = NewSchemas(DefaultDateLayout)

// NewSchemas builds the column schemas, rendering dates with dateLayout.
func NewSchemas(dateLayout string) Schemas {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return Schemas{
		Categories: categoryColumns(dateLayout),
		Suppliers:  supplierColumns(),
		Products:   productColumns(),
	}
}

func dateValue(d records.Date) any {
	if !d.Valid {
		return nil
	}
	return d.Local()
}

func categoryColumns(dateLayout string) table.Schema[records.Category] {
	return table.Schema[records.Category]{
		{
			Field:  "nombre",
			Header: "Nombre",
			Value:  func(c records.Category) any { return c.Name },
			Format: formatText,
		},
		{
			Field:  "descripcion",
			Header: "Descripción",
			Value:  func(c records.Category) any { return optional(c.Description) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "activo",
			Header: "Activo",
			Value:  func(c records.Category) any { return c.Active },
			Format: formatYesNo,
		},
		{
			Field:  "fechaCreacion",
			Header: "Fecha Creación",
			Value:  func(c records.Category) any { return dateValue(c.CreatedAt) },
			Format: formatDate(dateLayout),
		},
	}
}

func supplierColumns() table.Schema[records.Supplier] {
	return table.Schema[records.Supplier]{
		{
			Field:  "nombre",
			Header: "Nombre",
			Value:  func(s records.Supplier) any { return s.Name },
			Format: formatText,
		},
		{
			Field:  "razonSocial",
			Header: "Razón Social",
			Value:  func(s records.Supplier) any { return optional(s.LegalName) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "rfc",
			Header: "RFC",
			Value:  func(s records.Supplier) any { return optional(s.TaxID) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "contacto",
			Header: "Contacto",
			Value:  func(s records.Supplier) any { return optional(s.Contact) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "telefono",
			Header: "Teléfono",
			Value:  func(s records.Supplier) any { return optional(s.Phone) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "email",
			Header: "Email",
			Value:  func(s records.Supplier) any { return optional(s.Email) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "activo",
			Header: "Activo",
			Value:  func(s records.Supplier) any { return s.Active },
			Format: formatYesNo,
		},
	}
}

func productColumns() table.Schema[records.Product] {
	return table.Schema[records.Product]{
		{
			Field:  "sku",
			Header: "SKU",
			Value:  func(p records.Product) any { return optional(p.SKU) },
			Format: formatOr(NotAvailable),
		},
		{
			Field:  "nombreArticulo",
			Header: "Artículo",
			Value:  func(p records.Product) any { return p.Name },
			Format: formatText,
		},
		{
			Field:  "categoria",
			Header: "Categoría",
			Value:  func(p records.Product) any { return optional(p.Category) },
			Format: formatOr(NoCategory),
		},
		{
			Field:  "proveedor",
			Header: "Proveedor",
			Value:  func(p records.Product) any { return optional(p.Supplier) },
			Format: formatOr(NoSupplier),
		},
		{
			Field:  "precioLote",
			Header: "Precio Lote",
			Value:  func(p records.Product) any { return money(p.LotPrice) },
			Format: formatMoney,
		},
		{
			Field:  "cantidadLotes",
			Header: "Lotes",
			Value:  func(p records.Product) any { return p.LotCount },
			Format: formatText,
		},
		{
			Field:  "stockUnidades",
			Header: "Stock",
			Value:  func(p records.Product) any { return p.StockUnits },
			Format: formatText,
		},
		{
			Field:  "activo",
			Header: "Activo",
			Value:  func(p records.Product) any { return p.Active },
			Format: formatYesNo,
		},
	}
}
