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

var modelSearchColumns = []string{"name", "fipe_code"}

var modelOrderColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"fipeCode":  "fipe_code",
}

// ModelRepository implementa repositories.ModelRepository
type ModelRepository struct {
	db *gorm.DB
}

// NewModelRepository cria um novo ModelRepository
func NewModelRepository(db *gorm.DB) repositories.ModelRepository {
	return &ModelRepository{db: db}
}

func (r *ModelRepository) Create(ctx context.Context, model *entities.Model) error {
	record := r.toModel(model)
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}

	*model = *r.toEntity(record)
	return nil
}

func (r *ModelRepository) Update(ctx context.Context, model *entities.Model) error {
	record := r.toModel(model)
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *ModelRepository) Delete(ctx context.Context, id, deletedByID string) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Model(&ModelModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"deleted_at":    now,
			"deleted_by_id": deletedByID,
		}).Error
}

func (r *ModelRepository) List(ctx context.Context, params repositories.ListParams) ([]*entities.Model, int64, error) {
	params = params.Normalized()

	query := r.db.WithContext(ctx).Model(&ModelModel{}).
		Where("is_deleted = ?", false)
	query = applySearch(query, params.Search, modelSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*ModelModel
	query = applyOrder(query, params, modelOrderColumns).
		Limit(params.PageSize).Offset(params.Offset())
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	models := make([]*entities.Model, len(records))
	for i, record := range records {
		models[i] = r.toEntity(record)
	}
	return models, total, nil
}

func (r *ModelRepository) FindByID(ctx context.Context, id string) (*entities.Model, error) {
	var record ModelModel

	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&record), nil
}

func (r *ModelRepository) FindByName(ctx context.Context, name string) (*entities.Model, error) {
	var record ModelModel

	err := r.db.WithContext(ctx).
		Where("name = ? AND is_deleted = ?", name, false).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&record), nil
}

func (r *ModelRepository) FindByBrandID(ctx context.Context, brandID string) ([]*entities.Model, error) {
	var records []*ModelModel

	err := r.db.WithContext(ctx).
		Where("brand_id = ? AND is_deleted = ?", brandID, false).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	models := make([]*entities.Model, len(records))
	for i, record := range records {
		models[i] = r.toEntity(record)
	}
	return models, nil
}

// Conversores

func (r *ModelRepository) toModel(model *entities.Model) *ModelModel {
	return &ModelModel{
		ID:         model.ID,
		Name:       model.Name,
		FipeCode:   model.FipeCode,
		BrandID:    model.BrandID,
		AuditModel: toAuditModel(model.Audit),
	}
}

func (r *ModelRepository) toEntity(record *ModelModel) *entities.Model {
	return &entities.Model{
		ID:       record.ID,
		Name:     record.Name,
		FipeCode: record.FipeCode,
		BrandID:  record.BrandID,
		Audit:    toAuditEntity(record.AuditModel),
	}
}
