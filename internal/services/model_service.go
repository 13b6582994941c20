package services

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

// ModelService contém a lógica de negócio para modelos
type ModelService struct {
	modelRepo   repositories.ModelRepository
	brandRepo   repositories.BrandRepository
	vehicleRepo repositories.VehicleRepository
	logger      ports.Logger
}

// NewModelService cria um novo ModelService
func NewModelService(
	modelRepo repositories.ModelRepository,
	brandRepo repositories.BrandRepository,
	vehicleRepo repositories.VehicleRepository,
	logger ports.Logger,
) *ModelService {
	return &ModelService{
		modelRepo:   modelRepo,
		brandRepo:   brandRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// CreateModelInput representa os dados para criar um modelo
type CreateModelInput struct {
	Name     string
	FipeCode *string
	BrandID  string
}

// UpdateModelInput representa o patch de um modelo; campos nil não são alterados
type UpdateModelInput struct {
	Name     *string
	FipeCode *string
	BrandID  *string
}

// Create cria um novo modelo, validando a unicidade do nome e a
// existência da marca referenciada
func (s *ModelService) Create(ctx context.Context, input CreateModelInput, createdByID string) (*entities.Model, error) {
	existing, err := s.modelRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflict(errors.KeyModelNameExists, "name")
	}

	brand, err := s.brandRepo.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.NewNotFound(errors.KeyBrandIDMissing, "brandId")
	}

	model := &entities.Model{
		Name:     input.Name,
		FipeCode: input.FipeCode,
		BrandID:  input.BrandID,
		Audit:    entities.Audit{CreatedByID: createdByID},
	}
	if err := s.modelRepo.Create(ctx, model); err != nil {
		return nil, err
	}

	s.logger.Info("model created", "model_id", model.ID, "brand_id", model.BrandID, "created_by", createdByID)
	return model, nil
}

// Update atualiza um modelo. Unicidade do nome e existência da marca só
// são verificadas quando o respectivo campo está presente no patch.
func (s *ModelService) Update(ctx context.Context, id string, input UpdateModelInput, updatedByID string) (*entities.Model, error) {
	model, err := s.modelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.NewNotFound(errors.KeyModelNotFound, "id")
	}

	if input.Name != nil {
		existing, err := s.modelRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.NewConflict(errors.KeyModelNameExists, "name")
		}
		model.Name = *input.Name
	}
	if input.BrandID != nil {
		brand, err := s.brandRepo.FindByID(ctx, *input.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, errors.NewNotFound(errors.KeyBrandIDMissing, "brandId")
		}
		model.BrandID = *input.BrandID
	}
	if input.FipeCode != nil {
		model.FipeCode = input.FipeCode
	}

	model.MarkUpdated(updatedByID)
	if err := s.modelRepo.Update(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

// Delete faz o soft delete de um modelo e de todos os seus veículos não
// deletados, carimbando o mesmo autor em cada registro. Os veículos são
// deletados direto no repositório, um a um, antes do modelo.
func (s *ModelService) Delete(ctx context.Context, id, deletedByID string) error {
	model, err := s.modelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if model == nil {
		return errors.NewNotFound(errors.KeyModelNotFound, "id")
	}

	vehicles, err := s.vehicleRepo.FindByModelID(ctx, id)
	if err != nil {
		return err
	}
	for _, vehicle := range vehicles {
		if err := s.vehicleRepo.Delete(ctx, vehicle.ID, deletedByID); err != nil {
			return err
		}
	}

	if err := s.modelRepo.Delete(ctx, id, deletedByID); err != nil {
		return err
	}

	s.logger.Info("model deleted",
		"model_id", id,
		"cascaded_vehicles", len(vehicles),
		"deleted_by", deletedByID,
	)
	return nil
}

// GetByBrandID retorna os modelos não deletados de uma marca
func (s *ModelService) GetByBrandID(ctx context.Context, brandID string) ([]*entities.Model, error) {
	return s.modelRepo.FindByBrandID(ctx, brandID)
}

// List lista modelos com paginação, busca e ordenação
func (s *ModelService) List(ctx context.Context, params repositories.ListParams) ([]*entities.Model, int64, error) {
	return s.modelRepo.List(ctx, params)
}
