package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

var fuelTypeSearchColumns = []string{"name", "abbreviation"}

var fuelTypeOrderColumns = map[string]string{
	"createdAt":    "created_at",
	"name":         "name",
	"abbreviation": "abbreviation",
}

// FuelTypeRepository implementa repositories.FuelTypeRepository
type FuelTypeRepository struct {
	db *gorm.DB
}

// NewFuelTypeRepository cria um novo FuelTypeRepository
func NewFuelTypeRepository(db *gorm.DB) repositories.FuelTypeRepository {
	return &FuelTypeRepository{db: db}
}

func (r *FuelTypeRepository) Create(ctx context.Context, fuelType *entities.FuelType) error {
	model := r.toModel(fuelType)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*fuelType = *r.toEntity(model)
	return nil
}

func (r *FuelTypeRepository) Update(ctx context.Context, fuelType *entities.FuelType) error {
	model := r.toModel(fuelType)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *FuelTypeRepository) Delete(ctx context.Context, id, deletedByID string) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Model(&FuelTypeModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"deleted_at":    now,
			"deleted_by_id": deletedByID,
		}).Error
}

func (r *FuelTypeRepository) List(ctx context.Context, params repositories.ListParams) ([]*entities.FuelType, int64, error) {
	params = params.Normalized()

	query := r.db.WithContext(ctx).Model(&FuelTypeModel{}).
		Where("is_deleted = ?", false)
	query = applySearch(query, params.Search, fuelTypeSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*FuelTypeModel
	query = applyOrder(query, params, fuelTypeOrderColumns).
		Limit(params.PageSize).Offset(params.Offset())
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	fuelTypes := make([]*entities.FuelType, len(models))
	for i, model := range models {
		fuelTypes[i] = r.toEntity(model)
	}
	return fuelTypes, total, nil
}

func (r *FuelTypeRepository) FindByID(ctx context.Context, id string) (*entities.FuelType, error) {
	var model FuelTypeModel

	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

func (r *FuelTypeRepository) FindByName(ctx context.Context, name string) (*entities.FuelType, error) {
	var model FuelTypeModel

	err := r.db.WithContext(ctx).
		Where("name = ? AND is_deleted = ?", name, false).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

// Conversores

func (r *FuelTypeRepository) toModel(fuelType *entities.FuelType) *FuelTypeModel {
	return &FuelTypeModel{
		ID:           fuelType.ID,
		Name:         fuelType.Name,
		Abbreviation: fuelType.Abbreviation,
		AuditModel:   toAuditModel(fuelType.Audit),
	}
}

func (r *FuelTypeRepository) toEntity(model *FuelTypeModel) *entities.FuelType {
	return &entities.FuelType{
		ID:           model.ID,
		Name:         model.Name,
		Abbreviation: model.Abbreviation,
		Audit:        toAuditEntity(model.AuditModel),
	}
}
