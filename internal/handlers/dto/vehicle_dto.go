package dto

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// CreateVehicleRequest representa a requisição para criar um veículo.
// referenceMonth e referenceYear são opcionais e assumem a data corrente.
type CreateVehicleRequest struct {
	FipeCode       *string  `json:"fipeCode" binding:"omitempty,max=50"`
	Value          *float64 `json:"value" binding:"required,min=0"`
	VehicleYear    int      `json:"vehicleYear" binding:"required,min=1900"`
	ReferenceMonth *int     `json:"referenceMonth" binding:"omitempty,min=1,max=12"`
	ReferenceYear  *int     `json:"referenceYear" binding:"omitempty,min=1900"`
	ModelID        string   `json:"modelId" binding:"required,uuid"`
	FuelTypeID     string   `json:"fuelTypeId" binding:"required,uuid"`
}

// UpdateVehicleRequest representa a requisição para atualizar um veículo
type UpdateVehicleRequest struct {
	Value       *float64 `json:"value" binding:"omitempty,min=0"`
	VehicleYear *int     `json:"vehicleYear" binding:"omitempty,min=1900"`
	ModelID     *string  `json:"modelId" binding:"omitempty,uuid"`
	FuelTypeID  *string  `json:"fuelTypeId" binding:"omitempty,uuid"`
}

// ListVehiclesQuery representa os parâmetros de listagem de veículos
type ListVehiclesQuery struct {
	ListQuery
	OrderByField string `form:"orderByField" binding:"omitempty,oneof=createdAt value vehicleYear referenceYear"`
}

// VehicleResponse representa a resposta de um veículo
type VehicleResponse struct {
	ID             string    `json:"id"`
	FipeCode       *string   `json:"fipeCode,omitempty"`
	Value          float64   `json:"value"`
	VehicleYear    int       `json:"vehicleYear"`
	ReferenceMonth int       `json:"referenceMonth"`
	ReferenceYear  int       `json:"referenceYear"`
	ModelID        string    `json:"modelId"`
	FuelTypeID     string    `json:"fuelTypeId"`
	CreatedByID    string    `json:"createdById"`
	UpdatedByID    *string   `json:"updatedById,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToVehicleResponse converte uma entidade Vehicle para VehicleResponse
func ToVehicleResponse(vehicle *entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:             vehicle.ID,
		FipeCode:       vehicle.FipeCode,
		Value:          vehicle.Value,
		VehicleYear:    vehicle.VehicleYear,
		ReferenceMonth: vehicle.ReferenceMonth,
		ReferenceYear:  vehicle.ReferenceYear,
		ModelID:        vehicle.ModelID,
		FuelTypeID:     vehicle.FuelTypeID,
		CreatedByID:    vehicle.CreatedByID,
		UpdatedByID:    vehicle.UpdatedByID,
		CreatedAt:      vehicle.CreatedAt,
		UpdatedAt:      vehicle.UpdatedAt,
	}
}

// ToVehicleResponses converte uma lista de entidades Vehicle para VehicleResponse
func ToVehicleResponses(vehicles []*entities.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		responses[i] = ToVehicleResponse(vehicle)
	}
	return responses
}
