package dto

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// CreateModelRequest representa a requisição para criar um modelo
type CreateModelRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	FipeCode *string `json:"fipeCode" binding:"omitempty,max=50"`
	BrandID  string  `json:"brandId" binding:"required,uuid"`
}

// UpdateModelRequest representa a requisição para atualizar um modelo
type UpdateModelRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	FipeCode *string `json:"fipeCode" binding:"omitempty,max=50"`
	BrandID  *string `json:"brandId" binding:"omitempty,uuid"`
}

// ListModelsQuery representa os parâmetros de listagem de modelos
type ListModelsQuery struct {
	ListQuery
	OrderByField string `form:"orderByField" binding:"omitempty,oneof=createdAt name fipeCode"`
}

// ModelResponse representa a resposta de um modelo
type ModelResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FipeCode    *string   `json:"fipeCode,omitempty"`
	BrandID     string    `json:"brandId"`
	CreatedByID string    `json:"createdById"`
	UpdatedByID *string   `json:"updatedById,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToModelResponse converte uma entidade Model para ModelResponse
func ToModelResponse(model *entities.Model) ModelResponse {
	return ModelResponse{
		ID:          model.ID,
		Name:        model.Name,
		FipeCode:    model.FipeCode,
		BrandID:     model.BrandID,
		CreatedByID: model.CreatedByID,
		UpdatedByID: model.UpdatedByID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ToModelResponses converte uma lista de entidades Model para ModelResponse
func ToModelResponses(models []*entities.Model) []ModelResponse {
	responses := make([]ModelResponse, len(models))
	for i, model := range models {
		responses[i] = ToModelResponse(model)
	}
	return responses
}
