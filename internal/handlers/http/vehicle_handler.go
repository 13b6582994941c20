package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
	"github.com/brunopaz/autofipe-backend/internal/handlers/middleware"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// VehicleHandler lida com requisições HTTP relacionadas a veículos
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler cria um novo VehicleHandler
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// CreateVehicle cria um novo veículo
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	vehicle, err := h.vehicleService.Create(c.Request.Context(), services.CreateVehicleInput{
		FipeCode:       req.FipeCode,
		Value:          *req.Value,
		VehicleYear:    req.VehicleYear,
		ReferenceMonth: req.ReferenceMonth,
		ReferenceYear:  req.ReferenceYear,
		ModelID:        req.ModelID,
		FuelTypeID:     req.FuelTypeID,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// UpdateVehicle atualiza um veículo existente
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, services.UpdateVehicleInput{
		Value:       req.Value,
		VehicleYear: req.VehicleYear,
		ModelID:     req.ModelID,
		FuelTypeID:  req.FuelTypeID,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// DeleteVehicle faz o soft delete de um veículo sem código FIPE
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.Principal(c)

	if err := h.vehicleService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetVehiclesByModel lista os veículos ativos de um modelo
func (h *VehicleHandler) GetVehiclesByModel(c *gin.Context) {
	modelID, ok := pathID(c, "modelId")
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.GetByModelID(c.Request.Context(), modelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponses(vehicles))
}

// ListVehicles lista veículos com paginação, busca e ordenação
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var query dto.ListVehiclesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	params := listParams(query.ListQuery, query.OrderByField).Normalized()

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.VehicleResponse]{
		Items:      dto.ToVehicleResponses(vehicles),
		Total:      total,
		TotalPages: totalPages(total, params.PageSize),
	})
}
