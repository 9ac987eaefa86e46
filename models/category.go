package models

import "time"

// Category groups products. Name is unique.
type Category struct {
	ID          uint       `gorm:"column:id_categoria;primaryKey"`
	Name        string     `gorm:"column:nombre;size:100;uniqueIndex;not null"`
	Description *string    `gorm:"column:descripcion;type:text"`
	Active      bool       `gorm:"column:activo;not null;default:true"`
	CreatedAt   *time.Time `gorm:"column:fecha_creacion"`
	UpdatedAt   *time.Time `gorm:"column:fecha_actualizacion"`
}

func (c *Category) TableName() string {
	return "categorias"
}
