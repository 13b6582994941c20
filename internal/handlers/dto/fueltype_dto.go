package dto

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// CreateFuelTypeRequest representa a requisição para criar um tipo de combustível
type CreateFuelTypeRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Abbreviation string `json:"abbreviation" binding:"required,min=1,max=10"`
}

// UpdateFuelTypeRequest representa a requisição para atualizar um tipo de combustível
type UpdateFuelTypeRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	Abbreviation *string `json:"abbreviation" binding:"omitempty,min=1,max=10"`
}

// ListFuelTypesQuery representa os parâmetros de listagem de tipos de combustível
type ListFuelTypesQuery struct {
	ListQuery
	OrderByField string `form:"orderByField" binding:"omitempty,oneof=createdAt name abbreviation"`
}

// FuelTypeResponse representa a resposta de um tipo de combustível
type FuelTypeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	CreatedByID  string    `json:"createdById"`
	UpdatedByID  *string   `json:"updatedById,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToFuelTypeResponse converte uma entidade FuelType para FuelTypeResponse
func ToFuelTypeResponse(fuelType *entities.FuelType) FuelTypeResponse {
	return FuelTypeResponse{
		ID:           fuelType.ID,
		Name:         fuelType.Name,
		Abbreviation: fuelType.Abbreviation,
		CreatedByID:  fuelType.CreatedByID,
		UpdatedByID:  fuelType.UpdatedByID,
		CreatedAt:    fuelType.CreatedAt,
		UpdatedAt:    fuelType.UpdatedAt,
	}
}

// ToFuelTypeResponses converte uma lista de entidades FuelType para FuelTypeResponse
func ToFuelTypeResponses(fuelTypes []*entities.FuelType) []FuelTypeResponse {
	responses := make([]FuelTypeResponse, len(fuelTypes))
	for i, fuelType := range fuelTypes {
		responses[i] = ToFuelTypeResponse(fuelType)
	}
	return responses
}
