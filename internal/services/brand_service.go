package services

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

// BrandService contém a lógica de negócio para marcas
type BrandService struct {
	brandRepo repositories.BrandRepository
	modelRepo repositories.ModelRepository
	models    *ModelService
	logger    ports.Logger
}

// NewBrandService cria um novo BrandService
func NewBrandService(
	brandRepo repositories.BrandRepository,
	modelRepo repositories.ModelRepository,
	models *ModelService,
	logger ports.Logger,
) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
		modelRepo: modelRepo,
		models:    models,
		logger:    logger,
	}
}

// CreateBrandInput representa os dados para criar uma marca
type CreateBrandInput struct {
	Name     string
	FipeCode *string
}

// UpdateBrandInput representa o patch de uma marca; campos nil não são alterados
type UpdateBrandInput struct {
	Name     *string
	FipeCode *string
}

// Create cria uma nova marca, garantindo a unicidade do nome entre
// registros não deletados
func (s *BrandService) Create(ctx context.Context, input CreateBrandInput, createdByID string) (*entities.Brand, error) {
	existing, err := s.brandRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflict(errors.KeyBrandNameExists, "name")
	}

	brand := &entities.Brand{
		Name:     input.Name,
		FipeCode: input.FipeCode,
		Audit:    entities.Audit{CreatedByID: createdByID},
	}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	s.logger.Info("brand created", "brand_id", brand.ID, "created_by", createdByID)
	return brand, nil
}

// Update atualiza uma marca. A checagem de unicidade do nome só roda
// quando o patch traz um nome; colisão com a própria marca é permitida.
func (s *BrandService) Update(ctx context.Context, id string, input UpdateBrandInput, updatedByID string) (*entities.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, errors.NewNotFound(errors.KeyBrandNotFound, "id")
	}

	if input.Name != nil {
		existing, err := s.brandRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errors.NewConflict(errors.KeyBrandNameExists, "name")
		}
		brand.Name = *input.Name
	}
	if input.FipeCode != nil {
		brand.FipeCode = input.FipeCode
	}

	brand.MarkUpdated(updatedByID)
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete faz o soft delete de uma marca em cascata: cada modelo da marca
// é deletado pela operação de deleção de modelos (que por sua vez deleta
// os veículos do modelo) e por fim a própria marca. As deleções são
// chamadas individuais e sequenciais, sem transação; uma falha no meio
// da cascata deixa estado parcial.
func (s *BrandService) Delete(ctx context.Context, id, deletedByID string) error {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return errors.NewNotFound(errors.KeyBrandNotFound, "id")
	}

	models, err := s.modelRepo.FindByBrandID(ctx, id)
	if err != nil {
		return err
	}
	for _, model := range models {
		if err := s.models.Delete(ctx, model.ID, deletedByID); err != nil {
			return err
		}
	}

	if err := s.brandRepo.Delete(ctx, id, deletedByID); err != nil {
		return err
	}

	s.logger.Info("brand deleted",
		"brand_id", id,
		"cascaded_models", len(models),
		"deleted_by", deletedByID,
	)
	return nil
}

// List lista marcas com paginação, busca e ordenação
func (s *BrandService) List(ctx context.Context, params repositories.ListParams) ([]*entities.Brand, int64, error) {
	return s.brandRepo.List(ctx, params)
}
