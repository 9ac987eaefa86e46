package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a product bought in lots. Prices are kept with two decimals.
// CategoryID and SupplierID are nulled when the referenced row is deleted.
type Product struct {
	ID               uint                `gorm:"column:id_producto;primaryKey"`
	SKU              *string             `gorm:"column:sku;size:255"`
	Name             string              `gorm:"column:nombre_articulo;size:255;not null"`
	Description      *string             `gorm:"column:descripcion_articulo;type:text"`
	LotPrice         decimal.Decimal     `gorm:"column:precio_lote;type:decimal(10,2);not null"`
	LotCount         int                 `gorm:"column:cantidad_lotes;not null;default:1"`
	UnitsPerLot      int                 `gorm:"column:unidades_por_lote;not null;default:1"`
	UnitPrice        decimal.NullDecimal `gorm:"column:precio_unitario_sin_iva;type:decimal(10,2)"`
	UnitPriceWithTax decimal.NullDecimal `gorm:"column:precio_unitario_con_iva;type:decimal(10,2)"`
	TotalPrice       decimal.NullDecimal `gorm:"column:precio_total_sin_iva;type:decimal(10,2)"`
	TotalWithTax     decimal.NullDecimal `gorm:"column:precio_total_con_iva;type:decimal(10,2)"`
	StockUnits       int                 `gorm:"column:stock_unidades;not null;default:0"`
	InitialStock     int                 `gorm:"column:stock_inicial;not null;default:0"`
	TaxRate          decimal.Decimal     `gorm:"column:porcentaje_iva;type:decimal(5,2);default:16.00"`
	LegacyCategory   *string             `gorm:"column:categoria;size:100"`
	CategoryID       *uint               `gorm:"column:id_categoria"`
	PurchaseDate     *time.Time          `gorm:"column:fecha_compra;type:date"`
	RegisteredAt     *time.Time          `gorm:"column:fecha_registro"`
	UpdatedAt        *time.Time          `gorm:"column:fecha_actualizacion"`
	Active           bool                `gorm:"column:activo;not null;default:true"`
	SupplierID       *uint               `gorm:"column:id_proveedor"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (p *Product) TableName() string {
	return "productos"
}

// ProductRow is a product as listed: its own columns plus the names of its
// category and supplier, nil when the reference is absent.
type ProductRow struct {
	ID               uint                `gorm:"column:id_producto"`
	SKU              *string             `gorm:"column:sku"`
	Name             string              `gorm:"column:nombre_articulo"`
	Description      *string             `gorm:"column:descripcion_articulo"`
	LotPrice         decimal.Decimal     `gorm:"column:precio_lote"`
	LotCount         int                 `gorm:"column:cantidad_lotes"`
	UnitsPerLot      int                 `gorm:"column:unidades_por_lote"`
	UnitPriceWithTax decimal.NullDecimal `gorm:"column:precio_unitario_con_iva"`
	StockUnits       int                 `gorm:"column:stock_unidades"`
	PurchaseDate     *time.Time          `gorm:"column:fecha_compra"`
	Active           bool                `gorm:"column:activo"`
	CategoryName     *string             `gorm:"column:categoria_nombre"`
	SupplierName     *string             `gorm:"column:proveedor_nombre"`
}
