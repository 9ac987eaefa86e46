package models

import "time"

// Supplier is a vendor products are bought from, with its fiscal data.
type Supplier struct {
	ID                   uint       `gorm:"column:id_proveedor;primaryKey"`
	Name                 string     `gorm:"column:nombre;size:255;not null"`
	LegalName            *string    `gorm:"column:razon_social;size:255"`
	TaxID                *string    `gorm:"column:rfc;size:20"`
	TaxStatusCertificate *string    `gorm:"column:constancia_situacion_fiscal;size:255"`
	BankStatement        *string    `gorm:"column:caratula_bancaria;size:255"`
	ProofOfAddress       *string    `gorm:"column:comprobante_domicilio;size:255"`
	EFOVerified          bool       `gorm:"column:verificacion_efo;not null;default:false"`
	Contact              *string    `gorm:"column:contacto;size:100"`
	Phone                *string    `gorm:"column:telefono;size:20"`
	Email                *string    `gorm:"column:email;size:100"`
	Address              *string    `gorm:"column:direccion;type:text"`
	Active               bool       `gorm:"column:activo;not null;default:true"`
	CreatedAt            *time.Time `gorm:"column:fecha_creacion"`
	UpdatedAt            *time.Time `gorm:"column:fecha_actualizacion"`
}

func (s *Supplier) TableName() string {
	return "proveedores"
}
