package repositories

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// ModelRepository define a interface para persistência de modelos
type ModelRepository interface {
	Create(ctx context.Context, model *entities.Model) error
	Update(ctx context.Context, model *entities.Model) error
	Delete(ctx context.Context, id, deletedByID string) error
	List(ctx context.Context, params ListParams) ([]*entities.Model, int64, error)
	FindByID(ctx context.Context, id string) (*entities.Model, error)
	FindByName(ctx context.Context, name string) (*entities.Model, error)
	// FindByBrandID retorna os modelos não deletados de uma marca
	FindByBrandID(ctx context.Context, brandID string) ([]*entities.Model, error)
}
