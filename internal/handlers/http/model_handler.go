package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
	"github.com/brunopaz/autofipe-backend/internal/handlers/middleware"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// ModelHandler lida com requisições HTTP relacionadas a modelos
type ModelHandler struct {
	modelService *services.ModelService
}

// NewModelHandler cria um novo ModelHandler
func NewModelHandler(modelService *services.ModelService) *ModelHandler {
	return &ModelHandler{modelService: modelService}
}

// CreateModel cria um novo modelo
func (h *ModelHandler) CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	model, err := h.modelService.Create(c.Request.Context(), services.CreateModelInput{
		Name:     req.Name,
		FipeCode: req.FipeCode,
		BrandID:  req.BrandID,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModelResponse(model))
}

// UpdateModel atualiza um modelo existente
func (h *ModelHandler) UpdateModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	model, err := h.modelService.Update(c.Request.Context(), id, services.UpdateModelInput{
		Name:     req.Name,
		FipeCode: req.FipeCode,
		BrandID:  req.BrandID,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponse(model))
}

// DeleteModel faz o soft delete de um modelo e de seus veículos
func (h *ModelHandler) DeleteModel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.Principal(c)

	if err := h.modelService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetModelsByBrand lista os modelos ativos de uma marca
func (h *ModelHandler) GetModelsByBrand(c *gin.Context) {
	brandID, ok := pathID(c, "brandId")
	if !ok {
		return
	}

	models, err := h.modelService.GetByBrandID(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponses(models))
}

// ListModels lista modelos com paginação, busca e ordenação
func (h *ModelHandler) ListModels(c *gin.Context) {
	var query dto.ListModelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	params := listParams(query.ListQuery, query.OrderByField).Normalized()

	models, total, err := h.modelService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.ModelResponse]{
		Items:      dto.ToModelResponses(models),
		Total:      total,
		TotalPages: totalPages(total, params.PageSize),
	})
}
