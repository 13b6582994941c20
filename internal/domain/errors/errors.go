package errors

import "errors"

// DomainError representa um erro de negócio tipado.
// MessageKey é um message ID para i18n (traduções em
// internal/infrastructure/i18n/locales/*.json); Name e StatusCode são os
// valores expostos no envelope de erro HTTP.
type DomainError struct {
	Name       string
	StatusCode int
	MessageKey string
	Field      string
	Params     map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return e.MessageKey + " (" + e.Field + ")"
	}
	return e.MessageKey
}

// NewNotFound cria um erro 404 para entidade ausente ou soft-deletada
func NewNotFound(messageKey, field string) *DomainError {
	return &DomainError{
		Name:       "NotFoundError",
		StatusCode: 404,
		MessageKey: messageKey,
		Field:      field,
	}
}

// NewConflict cria um erro 409 para violação de unicidade ou duplicidade
// de chave natural
func NewConflict(messageKey, field string) *DomainError {
	return &DomainError{
		Name:       "ConflictError",
		StatusCode: 409,
		MessageKey: messageKey,
		Field:      field,
	}
}

// NewForbidden cria um erro 403 para violação de posse ou imutabilidade
func NewForbidden(messageKey string) *DomainError {
	return &DomainError{
		Name:       "ForbiddenError",
		StatusCode: 403,
		MessageKey: messageKey,
	}
}

// NewUnauthorized cria um erro 401 para credencial ausente ou inválida
func NewUnauthorized(messageKey string) *DomainError {
	return &DomainError{
		Name:       "UnauthorizedError",
		StatusCode: 401,
		MessageKey: messageKey,
	}
}

// NewBadRequest cria um erro 400 para requisição malformada
func NewBadRequest(messageKey string) *DomainError {
	return &DomainError{
		Name:       "BadRequestError",
		StatusCode: 400,
		MessageKey: messageKey,
	}
}

// As extrai um *DomainError de uma cadeia de erros
func As(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}

// IsNotFound verifica se o erro é um NotFound
func IsNotFound(err error) bool {
	de, ok := As(err)
	return ok && de.StatusCode == 404
}

// IsConflict verifica se o erro é um Conflict
func IsConflict(err error) bool {
	de, ok := As(err)
	return ok && de.StatusCode == 409
}

// IsForbidden verifica se o erro é um Forbidden
func IsForbidden(err error) bool {
	de, ok := As(err)
	return ok && de.StatusCode == 403
}

// IsUnauthorized verifica se o erro é um Unauthorized
func IsUnauthorized(err error) bool {
	de, ok := As(err)
	return ok && de.StatusCode == 401
}
