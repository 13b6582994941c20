package repositories

const (
	// DefaultPageSize é o tamanho de página usado quando nenhum é informado
	DefaultPageSize = 10
	// MaxPageSize é o limite superior do tamanho de página
	MaxPageSize = 100
)

// ListParams contém os parâmetros de paginação, busca e ordenação das
// listagens. OrderByField chega validado contra a allowlist do recurso
// na camada HTTP; os repositórios ainda mapeiam o campo para a coluna
// correspondente e ignoram valores desconhecidos.
type ListParams struct {
	Page         int    // começa em 1
	PageSize     int    // default 10, máximo 100
	Search       string // busca case-insensitive nos campos de texto do recurso
	OrderBy      string // "asc" ou "desc"
	OrderByField string // campo de ordenação em camelCase (ex: "createdAt")
}

// Normalized aplica os defaults de paginação
func (p ListParams) Normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.OrderBy != "desc" {
		p.OrderBy = "asc"
	}
	if p.OrderByField == "" {
		p.OrderByField = "createdAt"
	}
	return p
}

// Offset retorna o deslocamento correspondente à página
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
