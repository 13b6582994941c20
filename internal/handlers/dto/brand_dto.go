package dto

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// CreateBrandRequest representa a requisição para criar uma marca
type CreateBrandRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	FipeCode *string `json:"fipeCode" binding:"omitempty,max=50"`
}

// UpdateBrandRequest representa a requisição para atualizar uma marca
type UpdateBrandRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	FipeCode *string `json:"fipeCode" binding:"omitempty,max=50"`
}

// ListBrandsQuery representa os parâmetros de listagem de marcas
type ListBrandsQuery struct {
	ListQuery
	OrderByField string `form:"orderByField" binding:"omitempty,oneof=createdAt name fipeCode"`
}

// BrandResponse representa a resposta de uma marca
type BrandResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FipeCode    *string   `json:"fipeCode,omitempty"`
	CreatedByID string    `json:"createdById"`
	UpdatedByID *string   `json:"updatedById,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToBrandResponse converte uma entidade Brand para BrandResponse
func ToBrandResponse(brand *entities.Brand) BrandResponse {
	return BrandResponse{
		ID:          brand.ID,
		Name:        brand.Name,
		FipeCode:    brand.FipeCode,
		CreatedByID: brand.CreatedByID,
		UpdatedByID: brand.UpdatedByID,
		CreatedAt:   brand.CreatedAt,
		UpdatedAt:   brand.UpdatedAt,
	}
}

// ToBrandResponses converte uma lista de entidades Brand para BrandResponse
func ToBrandResponses(brands []*entities.Brand) []BrandResponse {
	responses := make([]BrandResponse, len(brands))
	for i, brand := range brands {
		responses[i] = ToBrandResponse(brand)
	}
	return responses
}
