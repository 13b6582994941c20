package postgres

import (
	"strings"

	"gorm.io/gorm"

	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

// applySearch adiciona um filtro contains case-insensitive sobre as
// colunas de texto do recurso
func applySearch(query *gorm.DB, search string, columns []string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := "%" + strings.ToLower(search) + "%"
	conditions := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		conditions[i] = "LOWER(" + column + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(conditions, " OR "), args...)
}

// applyOrder aplica a ordenação validada contra a allowlist do recurso.
// Campos desconhecidos caem em created_at.
func applyOrder(query *gorm.DB, params repositories.ListParams, orderColumns map[string]string) *gorm.DB {
	column, ok := orderColumns[params.OrderByField]
	if !ok {
		column = "created_at"
	}

	direction := "asc"
	if params.OrderBy == "desc" {
		direction = "desc"
	}
	return query.Order(column + " " + direction)
}
