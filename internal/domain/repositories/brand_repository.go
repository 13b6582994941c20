package repositories

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// BrandRepository define a interface para persistência de marcas.
// Todas as leituras ignoram registros soft-deletados; os finders
// retornam nil (sem erro) quando nada é encontrado.
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	Update(ctx context.Context, brand *entities.Brand) error
	Delete(ctx context.Context, id, deletedByID string) error
	List(ctx context.Context, params ListParams) ([]*entities.Brand, int64, error)
	FindByID(ctx context.Context, id string) (*entities.Brand, error)
	FindByName(ctx context.Context, name string) (*entities.Brand, error)
}
