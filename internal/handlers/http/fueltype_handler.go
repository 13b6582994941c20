package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
	"github.com/brunopaz/autofipe-backend/internal/handlers/middleware"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// FuelTypeHandler lida com requisições HTTP relacionadas a tipos de combustível
type FuelTypeHandler struct {
	fuelTypeService *services.FuelTypeService
}

// NewFuelTypeHandler cria um novo FuelTypeHandler
func NewFuelTypeHandler(fuelTypeService *services.FuelTypeService) *FuelTypeHandler {
	return &FuelTypeHandler{fuelTypeService: fuelTypeService}
}

// CreateFuelType cria um novo tipo de combustível
func (h *FuelTypeHandler) CreateFuelType(c *gin.Context) {
	var req dto.CreateFuelTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	fuelType, err := h.fuelTypeService.Create(c.Request.Context(), services.CreateFuelTypeInput{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFuelTypeResponse(fuelType))
}

// UpdateFuelType atualiza um tipo de combustível existente
func (h *FuelTypeHandler) UpdateFuelType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFuelTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	fuelType, err := h.fuelTypeService.Update(c.Request.Context(), id, services.UpdateFuelTypeInput{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFuelTypeResponse(fuelType))
}

// DeleteFuelType faz o soft delete de um tipo de combustível sem veículos ativos
func (h *FuelTypeHandler) DeleteFuelType(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.Principal(c)

	if err := h.fuelTypeService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFuelTypes lista tipos de combustível com paginação, busca e ordenação
func (h *FuelTypeHandler) ListFuelTypes(c *gin.Context) {
	var query dto.ListFuelTypesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	params := listParams(query.ListQuery, query.OrderByField).Normalized()

	fuelTypes, total, err := h.fuelTypeService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.FuelTypeResponse]{
		Items:      dto.ToFuelTypeResponses(fuelTypes),
		Total:      total,
		TotalPages: totalPages(total, params.PageSize),
	})
}
