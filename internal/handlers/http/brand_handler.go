package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
	"github.com/brunopaz/autofipe-backend/internal/handlers/middleware"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// BrandHandler lida com requisições HTTP relacionadas a marcas
type BrandHandler struct {
	brandService *services.BrandService
}

// NewBrandHandler cria um novo BrandHandler
func NewBrandHandler(brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// CreateBrand cria uma nova marca
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	brand, err := h.brandService.Create(c.Request.Context(), services.CreateBrandInput{
		Name:     req.Name,
		FipeCode: req.FipeCode,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

// UpdateBrand atualiza uma marca existente
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	brand, err := h.brandService.Update(c.Request.Context(), id, services.UpdateBrandInput{
		Name:     req.Name,
		FipeCode: req.FipeCode,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// DeleteBrand faz o soft delete de uma marca e de seus modelos e veículos
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.Principal(c)

	if err := h.brandService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBrands lista marcas com paginação, busca e ordenação
func (h *BrandHandler) ListBrands(c *gin.Context) {
	var query dto.ListBrandsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	params := listParams(query.ListQuery, query.OrderByField).Normalized()

	brands, total, err := h.brandService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.BrandResponse]{
		Items:      dto.ToBrandResponses(brands),
		Total:      total,
		TotalPages: totalPages(total, params.PageSize),
	})
}
