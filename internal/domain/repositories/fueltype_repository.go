package repositories

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// FuelTypeRepository define a interface para persistência de tipos de combustível
type FuelTypeRepository interface {
	Create(ctx context.Context, fuelType *entities.FuelType) error
	Update(ctx context.Context, fuelType *entities.FuelType) error
	Delete(ctx context.Context, id, deletedByID string) error
	List(ctx context.Context, params ListParams) ([]*entities.FuelType, int64, error)
	FindByID(ctx context.Context, id string) (*entities.FuelType, error)
	FindByName(ctx context.Context, name string) (*entities.FuelType, error)
}
