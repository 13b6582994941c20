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

// brandSearchColumns são as colunas de texto cobertas pelo parâmetro search
var brandSearchColumns = []string{"name", "fipe_code"}

// brandOrderColumns mapeia os campos de ordenação expostos para colunas
var brandOrderColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"fipeCode":  "fipe_code",
}

// BrandRepository implementa repositories.BrandRepository
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository cria um novo BrandRepository
func NewBrandRepository(db *gorm.DB) repositories.BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	model := r.toModel(brand)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*brand = *r.toEntity(model)
	return nil
}

func (r *BrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	model := r.toModel(brand)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *BrandRepository) Delete(ctx context.Context, id, deletedByID string) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Model(&BrandModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"deleted_at":    now,
			"deleted_by_id": deletedByID,
		}).Error
}

func (r *BrandRepository) List(ctx context.Context, params repositories.ListParams) ([]*entities.Brand, int64, error) {
	params = params.Normalized()

	query := r.db.WithContext(ctx).Model(&BrandModel{}).
		Where("is_deleted = ?", false)
	query = applySearch(query, params.Search, brandSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*BrandModel
	query = applyOrder(query, params, brandOrderColumns).
		Limit(params.PageSize).Offset(params.Offset())
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	brands := make([]*entities.Brand, len(models))
	for i, model := range models {
		brands[i] = r.toEntity(model)
	}
	return brands, total, nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*entities.Brand, error) {
	var model BrandModel

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

func (r *BrandRepository) FindByName(ctx context.Context, name string) (*entities.Brand, error) {
	var model BrandModel

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

func (r *BrandRepository) toModel(brand *entities.Brand) *BrandModel {
	return &BrandModel{
		ID:         brand.ID,
		Name:       brand.Name,
		FipeCode:   brand.FipeCode,
		AuditModel: toAuditModel(brand.Audit),
	}
}

func (r *BrandRepository) toEntity(model *BrandModel) *entities.Brand {
	return &entities.Brand{
		ID:       model.ID,
		Name:     model.Name,
		FipeCode: model.FipeCode,
		Audit:    toAuditEntity(model.AuditModel),
	}
}
