package records

import "errors"

var (
	errMissingID   = errors.New("missing identifier")
	errMissingName = errors.New("missing name")
)

// Record is implemented by every wire record kind.
type Record interface {
	Validate() error
}

type Category struct {
	ID          int     `json:"idCategoria"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	Active      bool    `json:"activo"`
	CreatedAt   Date    `json:"fechaCreacion"`
	UpdatedAt   Date    `json:"fechaActualizacion"`
}

func (c Category) Validate() error {
	if c.ID <= 0 {
		return errMissingID
	}
	if c.Name == "" {
		return errMissingName
	}
	return nil
}

type Supplier struct {
	ID        int     `json:"idProveedor"`
	Name      string  `json:"nombre"`
	LegalName *string `json:"razonSocial"`
	TaxID     *string `json:"rfc"`
	Contact   *string `json:"contacto"`
	Phone     *string `json:"telefono"`
	Email     *string `json:"email"`
	Active    bool    `json:"activo"`
}

func (s Supplier) Validate() error {
	if s.ID <= 0 {
		return errMissingID
	}
	if s.Name == "" {
		return errMissingName
	}
	return nil
}

// Product is a product row with its category and supplier names already
// joined in. Either name is nil when the reference is absent.
type Product struct {
	ID               int     `json:"idProducto"`
	SKU              *string `json:"sku"`
	Name             string  `json:"nombreArticulo"`
	Description      *string `json:"descripcionArticulo"`
	LotPrice         string  `json:"precioLote"`
	LotCount         int     `json:"cantidadLotes"`
	UnitsPerLot      int     `json:"unidadesPorLote"`
	UnitPriceWithTax *string `json:"precioUnitarioConIva"`
	StockUnits       int     `json:"stockUnidades"`
	PurchaseDate     Date    `json:"fechaCompra"`
	Active           bool    `json:"activo"`
	Category         *string `json:"categoria"`
	Supplier         *string `json:"proveedor"`
}

func (p Product) Validate() error {
	if p.ID <= 0 {
		return errMissingID
	}
	if p.Name == "" {
		return errMissingName
	}
	return nil
}
