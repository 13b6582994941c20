package postgres

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// AuditModel contém as colunas de auditoria compartilhadas pelas tabelas
type AuditModel struct {
	CreatedByID string  `gorm:"type:uuid"`
	UpdatedByID *string `gorm:"type:uuid"`
	DeletedByID *string `gorm:"type:uuid"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
	DeletedAt   *int64
	IsDeleted   bool `gorm:"not null;default:false;index"`
}

// BrandModel é o model GORM para marcas
type BrandModel struct {
	ID       string  `gorm:"type:uuid;primaryKey"`
	Name     string  `gorm:"type:varchar(255);not null;index"`
	FipeCode *string `gorm:"type:varchar(50)"`
	AuditModel
}

func (BrandModel) TableName() string {
	return "brands"
}

// ModelModel é o model GORM para modelos de veículos
type ModelModel struct {
	ID       string  `gorm:"type:uuid;primaryKey"`
	Name     string  `gorm:"type:varchar(255);not null;index"`
	FipeCode *string `gorm:"type:varchar(50)"`
	BrandID  string  `gorm:"type:uuid;not null;index"`
	AuditModel
}

func (ModelModel) TableName() string {
	return "models"
}

// FuelTypeModel é o model GORM para tipos de combustível
type FuelTypeModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"type:varchar(255);not null;index"`
	Abbreviation string `gorm:"type:varchar(10);not null"`
	AuditModel
}

func (FuelTypeModel) TableName() string {
	return "fuel_types"
}

// VehicleModel é o model GORM para veículos
type VehicleModel struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	FipeCode       *string `gorm:"type:varchar(50)"`
	Value          float64 `gorm:"not null"`
	VehicleYear    int     `gorm:"not null"`
	ReferenceMonth int     `gorm:"not null"`
	ReferenceYear  int     `gorm:"not null"`
	ModelID        string  `gorm:"type:uuid;not null;index"`
	FuelTypeID     string  `gorm:"type:uuid;not null;index"`
	AuditModel
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Name         string  `gorm:"type:varchar(500);not null"`
	Email        string  `gorm:"type:varchar(255);not null;index"`
	Password     string  `gorm:"type:varchar(255);not null"`
	RefreshToken *string `gorm:"type:text"`
	Birthdate    *int64
	Contact      *string `gorm:"type:varchar(100)"`
	NationalID   *string `gorm:"type:varchar(50);index"`
	AuditModel
}

func (UserModel) TableName() string {
	return "users"
}

// Conversores dos campos de auditoria

func toAuditModel(audit entities.Audit) AuditModel {
	var deletedAt *int64
	if audit.DeletedAt != nil {
		ts := audit.DeletedAt.Unix()
		deletedAt = &ts
	}

	model := AuditModel{
		CreatedByID: audit.CreatedByID,
		UpdatedByID: audit.UpdatedByID,
		DeletedByID: audit.DeletedByID,
		DeletedAt:   deletedAt,
		IsDeleted:   audit.IsDeleted,
	}
	if !audit.CreatedAt.IsZero() {
		model.CreatedAt = audit.CreatedAt.Unix()
	}
	if !audit.UpdatedAt.IsZero() {
		model.UpdatedAt = audit.UpdatedAt.Unix()
	}
	return model
}

func toAuditEntity(model AuditModel) entities.Audit {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return entities.Audit{
		CreatedByID: model.CreatedByID,
		UpdatedByID: model.UpdatedByID,
		DeletedByID: model.DeletedByID,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
		DeletedAt:   deletedAt,
		IsDeleted:   model.IsDeleted,
	}
}
