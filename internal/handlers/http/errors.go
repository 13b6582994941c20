package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
)

// respondError traduz um erro de serviço para o envelope HTTP.
// Erros não tipados viram o envelope genérico de 500.
func respondError(c *gin.Context, err error) {
	if domainErr, ok := errors.As(err); ok {
		c.JSON(domainErr.StatusCode, dto.NewErrorEnvelope(c, domainErr))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewInternalErrorEnvelope(c))
}

// respondValidationError responde 400 para falhas de binding
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorEnvelope(c, err))
}

// pathID valida o parâmetro de rota como UUID e responde 400 se inválido
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if err := uuid.Validate(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorEnvelope(c, err))
		return "", false
	}
	return id, true
}

// listParams converte a query de listagem para os parâmetros do repositório
func listParams(q dto.ListQuery, orderByField string) repositories.ListParams {
	return repositories.ListParams{
		Page:         q.Page,
		PageSize:     q.PageSize,
		Search:       q.Search,
		OrderBy:      q.OrderBy,
		OrderByField: orderByField,
	}
}

// totalPages calcula o número de páginas para o total e tamanho informados
func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = repositories.DefaultPageSize
	}
	size := int64(pageSize)
	pages := total / size
	if total%size > 0 {
		pages++
	}
	return int(pages)
}
