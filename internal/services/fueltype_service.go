package services

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

// FuelTypeService contém a lógica de negócio para tipos de combustível
type FuelTypeService struct {
	fuelTypeRepo repositories.FuelTypeRepository
	vehicleRepo  repositories.VehicleRepository
	logger       ports.Logger
}

// NewFuelTypeService cria um novo FuelTypeService
func NewFuelTypeService(
	fuelTypeRepo repositories.FuelTypeRepository,
	vehicleRepo repositories.VehicleRepository,
	logger ports.Logger,
) *FuelTypeService {
	return &FuelTypeService{
		fuelTypeRepo: fuelTypeRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// CreateFuelTypeInput representa os dados para criar um tipo de combustível
type CreateFuelTypeInput struct {
	Name         string
	Abbreviation string
}

// UpdateFuelTypeInput representa o patch de um tipo de combustível
type UpdateFuelTypeInput struct {
	Name         *string
	Abbreviation *string
}

// Create cria um novo tipo de combustível, garantindo a unicidade do nome
func (s *FuelTypeService) Create(ctx context.Context, input CreateFuelTypeInput, createdByID string) (*entities.FuelType, error) {
	existing, err := s.fuelTypeRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflict(errors.KeyFuelTypeNameExists, "name")
	}

	fuelType := &entities.FuelType{
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
		Audit:        entities.Audit{CreatedByID: createdByID},
	}
	if err := s.fuelTypeRepo.Create(ctx, fuelType); err != nil {
		return nil, err
	}

	s.logger.Info("fuel type created", "fuel_type_id", fuelType.ID, "created_by", createdByID)
	return fuelType, nil
}

// Update atualiza um tipo de combustível
func (s *FuelTypeService) Update(ctx context.Context, id string, input UpdateFuelTypeInput, updatedByID string) (*entities.FuelType, error) {
	fuelType, err := s.fuelTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fuelType == nil {
		return nil, errors.NewNotFound(errors.KeyFuelTypeNotFound, "id")
	}

	if input.Name != nil {
		existing, err := s.fuelTypeRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.NewConflict(errors.KeyFuelTypeNameExists, "name")
		}
		fuelType.Name = *input.Name
	}
	if input.Abbreviation != nil {
		fuelType.Abbreviation = *input.Abbreviation
	}

	fuelType.MarkUpdated(updatedByID)
	if err := s.fuelTypeRepo.Update(ctx, fuelType); err != nil {
		return nil, err
	}
	return fuelType, nil
}

// Delete faz o soft delete de um tipo de combustível. Um tipo em uso por
// qualquer veículo não deletado não pode ser excluído; essa verificação
// roda antes da checagem de existência do próprio tipo, então um id
// inexistente que não casa com nenhum veículo ainda custa uma consulta
// extra antes de cair no NotFound.
func (s *FuelTypeService) Delete(ctx context.Context, id, deletedByID string) error {
	fuelType, err := s.fuelTypeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	vehicles, err := s.vehicleRepo.FindByFuelTypeID(ctx, id)
	if err != nil {
		return err
	}
	if len(vehicles) > 0 {
		return errors.NewConflict(errors.KeyFuelTypeInUse, "id")
	}

	if fuelType == nil {
		return errors.NewNotFound(errors.KeyFuelTypeNotFound, "id")
	}

	if err := s.fuelTypeRepo.Delete(ctx, id, deletedByID); err != nil {
		return err
	}

	s.logger.Info("fuel type deleted", "fuel_type_id", id, "deleted_by", deletedByID)
	return nil
}

// List lista tipos de combustível com paginação, busca e ordenação
func (s *FuelTypeService) List(ctx context.Context, params repositories.ListParams) ([]*entities.FuelType, int64, error) {
	return s.fuelTypeRepo.List(ctx, params)
}
