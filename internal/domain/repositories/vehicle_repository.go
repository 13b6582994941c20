package repositories

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// VehicleRepository define a interface para persistência de veículos
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entities.Vehicle) error
	Update(ctx context.Context, vehicle *entities.Vehicle) error
	Delete(ctx context.Context, id, deletedByID string) error
	List(ctx context.Context, params ListParams) ([]*entities.Vehicle, int64, error)
	FindByID(ctx context.Context, id string) (*entities.Vehicle, error)
	// FindByModelID retorna os veículos não deletados de um modelo
	FindByModelID(ctx context.Context, modelID string) ([]*entities.Vehicle, error)
	// FindByFuelTypeID retorna os veículos não deletados que usam o combustível
	FindByFuelTypeID(ctx context.Context, fuelTypeID string) ([]*entities.Vehicle, error)
	// FindExisting busca um veículo não deletado com a mesma chave natural
	// (value, vehicleYear, referenceMonth, referenceYear, modelId, fuelTypeId)
	FindExisting(ctx context.Context, vehicle *entities.Vehicle) (*entities.Vehicle, error)
}
