package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
)

// ErrorBody é o detalhe do erro exposto no envelope
type ErrorBody struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// ErrorEnvelope é o formato padrão de erro da API
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ListResponse é o formato padrão de listagem paginada
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListQuery agrupa os parâmetros de paginação comuns a todas as listagens.
// OrderByField é validado por recurso nos structs que embutem este.
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	OrderBy  string `form:"orderBy" binding:"omitempty,oneof=asc desc"`
}

// NewErrorEnvelope monta o envelope a partir de um erro de domínio,
// traduzindo a mensagem para o idioma da requisição
func NewErrorEnvelope(c *gin.Context, err *errors.DomainError) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Name:       err.Name,
			Message:    T(c, err.MessageKey, err.Params),
			StatusCode: err.StatusCode,
		},
	}
}

// NewInternalErrorEnvelope monta o envelope genérico de erro 500
func NewInternalErrorEnvelope(c *gin.Context) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Name:       "InternalServerError",
			Message:    T(c, errors.KeyInternal),
			StatusCode: 500,
		},
	}
}

// NewValidationErrorEnvelope monta o envelope 400 para falhas de binding,
// apontando o primeiro campo inválido quando disponível
func NewValidationErrorEnvelope(c *gin.Context, err error) ErrorEnvelope {
	params := map[string]interface{}{}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		params["Field"] = fieldErrors[0].Field()
	}

	return ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Name:       "BadRequestError",
			Message:    T(c, errors.KeyValidation, params),
			StatusCode: 400,
		},
	}
}
