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

var vehicleSearchColumns = []string{"fipe_code"}

var vehicleOrderColumns = map[string]string{
	"createdAt":     "created_at",
	"value":         "value",
	"vehicleYear":   "vehicle_year",
	"referenceYear": "reference_year",
}

// VehicleRepository implementa repositories.VehicleRepository
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository cria um novo VehicleRepository
func NewVehicleRepository(db *gorm.DB) repositories.VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entities.Vehicle) error {
	model := r.toModel(vehicle)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*vehicle = *r.toEntity(model)
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entities.Vehicle) error {
	model := r.toModel(vehicle)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id, deletedByID string) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Model(&VehicleModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"deleted_at":    now,
			"deleted_by_id": deletedByID,
		}).Error
}

func (r *VehicleRepository) List(ctx context.Context, params repositories.ListParams) ([]*entities.Vehicle, int64, error) {
	params = params.Normalized()

	query := r.db.WithContext(ctx).Model(&VehicleModel{}).
		Where("is_deleted = ?", false)
	query = applySearch(query, params.Search, vehicleSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*VehicleModel
	query = applyOrder(query, params, vehicleOrderColumns).
		Limit(params.PageSize).Offset(params.Offset())
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	vehicles := make([]*entities.Vehicle, len(models))
	for i, model := range models {
		vehicles[i] = r.toEntity(model)
	}
	return vehicles, total, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	var model VehicleModel

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

func (r *VehicleRepository) FindByModelID(ctx context.Context, modelID string) ([]*entities.Vehicle, error) {
	return r.findAll(ctx, "model_id = ? AND is_deleted = ?", modelID, false)
}

func (r *VehicleRepository) FindByFuelTypeID(ctx context.Context, fuelTypeID string) ([]*entities.Vehicle, error) {
	return r.findAll(ctx, "fuel_type_id = ? AND is_deleted = ?", fuelTypeID, false)
}

// FindExisting busca um veículo não deletado com a mesma chave natural
func (r *VehicleRepository) FindExisting(ctx context.Context, vehicle *entities.Vehicle) (*entities.Vehicle, error) {
	var model VehicleModel

	err := r.db.WithContext(ctx).
		Where(
			"value = ? AND vehicle_year = ? AND reference_month = ? AND reference_year = ? AND model_id = ? AND fuel_type_id = ? AND is_deleted = ?",
			vehicle.Value,
			vehicle.VehicleYear,
			vehicle.ReferenceMonth,
			vehicle.ReferenceYear,
			vehicle.ModelID,
			vehicle.FuelTypeID,
			false,
		).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

func (r *VehicleRepository) findAll(ctx context.Context, condition string, args ...interface{}) ([]*entities.Vehicle, error) {
	var models []*VehicleModel

	err := r.db.WithContext(ctx).Where(condition, args...).Find(&models).Error
	if err != nil {
		return nil, err
	}

	vehicles := make([]*entities.Vehicle, len(models))
	for i, model := range models {
		vehicles[i] = r.toEntity(model)
	}
	return vehicles, nil
}

// Conversores

func (r *VehicleRepository) toModel(vehicle *entities.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:             vehicle.ID,
		FipeCode:       vehicle.FipeCode,
		Value:          vehicle.Value,
		VehicleYear:    vehicle.VehicleYear,
		ReferenceMonth: vehicle.ReferenceMonth,
		ReferenceYear:  vehicle.ReferenceYear,
		ModelID:        vehicle.ModelID,
		FuelTypeID:     vehicle.FuelTypeID,
		AuditModel:     toAuditModel(vehicle.Audit),
	}
}

func (r *VehicleRepository) toEntity(model *VehicleModel) *entities.Vehicle {
	return &entities.Vehicle{
		ID:             model.ID,
		FipeCode:       model.FipeCode,
		Value:          model.Value,
		VehicleYear:    model.VehicleYear,
		ReferenceMonth: model.ReferenceMonth,
		ReferenceYear:  model.ReferenceYear,
		ModelID:        model.ModelID,
		FuelTypeID:     model.FuelTypeID,
		Audit:          toAuditEntity(model.AuditModel),
	}
}
