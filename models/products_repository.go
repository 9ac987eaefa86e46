package models

import (
	"context"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

const productRowColumns = `productos.id_producto, productos.sku, productos.nombre_articulo,
	productos.descripcion_articulo, productos.precio_lote, productos.cantidad_lotes,
	productos.unidades_por_lote, productos.precio_unitario_con_iva, productos.stock_unidades,
	productos.fecha_compra, productos.activo,
	categorias.nombre AS categoria_nombre, proveedores.nombre AS proveedor_nombre`

// ListProducts returns every product joined with its category and supplier
// names. A missing or dangling reference yields a nil name.
func (r *ProductsRepository) ListProducts(ctx context.Context) ([]ProductRow, error) {
	var rows []ProductRow
	if err := r.db.WithContext(ctx).
		Table("productos").
		Select(productRowColumns).
		Joins("LEFT JOIN categorias ON categorias.id_categoria = productos.id_categoria").
		Joins("LEFT JOIN proveedores ON proveedores.id_proveedor = productos.id_proveedor").
		Order("productos.id_producto").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
