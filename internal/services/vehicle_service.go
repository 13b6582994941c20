package services

import (
	"context"
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

// VehicleService contém a lógica de negócio para veículos
type VehicleService struct {
	vehicleRepo  repositories.VehicleRepository
	modelRepo    repositories.ModelRepository
	fuelTypeRepo repositories.FuelTypeRepository
	logger       ports.Logger
	now          func() time.Time
}

// NewVehicleService cria um novo VehicleService
func NewVehicleService(
	vehicleRepo repositories.VehicleRepository,
	modelRepo repositories.ModelRepository,
	fuelTypeRepo repositories.FuelTypeRepository,
	logger ports.Logger,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		modelRepo:    modelRepo,
		fuelTypeRepo: fuelTypeRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateVehicleInput representa os dados para criar um veículo.
// ReferenceMonth e ReferenceYear, quando omitidos, assumem o mês e o ano
// correntes do calendário.
type CreateVehicleInput struct {
	FipeCode       *string
	Value          float64
	VehicleYear    int
	ReferenceMonth *int
	ReferenceYear  *int
	ModelID        string
	FuelTypeID     string
}

// UpdateVehicleInput representa o patch de um veículo; campos nil não são
// alterados
type UpdateVehicleInput struct {
	Value       *float64
	VehicleYear *int
	ModelID     *string
	FuelTypeID  *string
}

// Create cria um novo veículo: rejeita duplicata exata da chave natural
// (value, vehicleYear, referenceMonth, referenceYear, modelId, fuelTypeId)
// com Conflict e valida a existência do modelo e do combustível.
func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput, createdByID string) (*entities.Vehicle, error) {
	current := s.now()

	vehicle := &entities.Vehicle{
		FipeCode:       input.FipeCode,
		Value:          input.Value,
		VehicleYear:    input.VehicleYear,
		ReferenceMonth: int(current.Month()),
		ReferenceYear:  current.Year(),
		ModelID:        input.ModelID,
		FuelTypeID:     input.FuelTypeID,
		Audit:          entities.Audit{CreatedByID: createdByID},
	}
	if input.ReferenceMonth != nil {
		vehicle.ReferenceMonth = *input.ReferenceMonth
	}
	if input.ReferenceYear != nil {
		vehicle.ReferenceYear = *input.ReferenceYear
	}

	existing, err := s.vehicleRepo.FindExisting(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflict(errors.KeyVehicleExists, "")
	}

	model, err := s.modelRepo.FindByID(ctx, input.ModelID)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.NewNotFound(errors.KeyModelIDMissing, "modelId")
	}

	fuelType, err := s.fuelTypeRepo.FindByID(ctx, input.FuelTypeID)
	if err != nil {
		return nil, err
	}
	if fuelType == nil {
		return nil, errors.NewNotFound(errors.KeyFuelTypeIDMissing, "fuelTypeId")
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle created", "vehicle_id", vehicle.ID, "model_id", vehicle.ModelID, "created_by", createdByID)
	return vehicle, nil
}

// Update atualiza um veículo. Um veículo com código FIPE tem seu preço
// travado pela fonte externa: um patch contendo value falha com Forbidden.
func (s *VehicleService) Update(ctx context.Context, id string, input UpdateVehicleInput, updatedByID string) (*entities.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errors.NewNotFound(errors.KeyVehicleNotFound, "id")
	}

	// TODO: comparar contra a chave natural resultante do patch; hoje a
	// duplicata é verificada contra o registro armazenado, então um patch
	// que colide com outro veículo passa sem Conflict.
	existing, err := s.vehicleRepo.FindExisting(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, errors.NewConflict(errors.KeyVehicleExists, "")
	}

	if input.ModelID != nil {
		model, err := s.modelRepo.FindByID(ctx, *input.ModelID)
		if err != nil {
			return nil, err
		}
		if model == nil {
			return nil, errors.NewNotFound(errors.KeyModelIDMissing, "modelId")
		}
	}

	if input.FuelTypeID != nil {
		fuelType, err := s.fuelTypeRepo.FindByID(ctx, *input.FuelTypeID)
		if err != nil {
			return nil, err
		}
		if fuelType == nil {
			return nil, errors.NewNotFound(errors.KeyFuelTypeIDMissing, "fuelTypeId")
		}
	}

	if vehicle.HasFipeCode() && input.Value != nil {
		return nil, errors.NewForbidden(errors.KeyVehicleValueLocked)
	}

	if input.Value != nil {
		vehicle.Value = *input.Value
	}
	if input.VehicleYear != nil {
		vehicle.VehicleYear = *input.VehicleYear
	}
	if input.ModelID != nil {
		vehicle.ModelID = *input.ModelID
	}
	if input.FuelTypeID != nil {
		vehicle.FuelTypeID = *input.FuelTypeID
	}

	vehicle.MarkUpdated(updatedByID)
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete faz o soft delete de um veículo. Veículos com código FIPE não
// podem ser excluídos individualmente; a cascata da deleção de modelos
// não passa por aqui e os remove direto no repositório.
func (s *VehicleService) Delete(ctx context.Context, id, deletedByID string) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return errors.NewNotFound(errors.KeyVehicleNotFound, "id")
	}

	if vehicle.HasFipeCode() {
		return errors.NewForbidden(errors.KeyVehicleDeleteLocked)
	}

	if err := s.vehicleRepo.Delete(ctx, id, deletedByID); err != nil {
		return err
	}

	s.logger.Info("vehicle deleted", "vehicle_id", id, "deleted_by", deletedByID)
	return nil
}

// GetByModelID retorna os veículos não deletados de um modelo
func (s *VehicleService) GetByModelID(ctx context.Context, modelID string) ([]*entities.Vehicle, error) {
	return s.vehicleRepo.FindByModelID(ctx, modelID)
}

// List lista veículos com paginação, busca e ordenação
func (s *VehicleService) List(ctx context.Context, params repositories.ListParams) ([]*entities.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, params)
}
