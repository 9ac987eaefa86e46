package models

import (
	"context"

	"gorm.io/gorm"
)

type SuppliersRepository struct {
	db *gorm.DB
}

func NewSuppliersRepository(db *gorm.DB) *SuppliersRepository {
	return &SuppliersRepository{db: db}
}

func (r *SuppliersRepository) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := r.db.WithContext(ctx).Order("id_proveedor").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}
