package entities

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID           string
	Name         string
	Email        valueobjects.Email
	Password     string // hash bcrypt, nunca o texto puro
	RefreshToken *string
	Birthdate    *time.Time
	Contact      *string
	NationalID   *string // CPF, único entre registros não deletados
	Audit
}

// Sanitized retorna uma cópia sem credenciais, própria para respostas HTTP
func (u *User) Sanitized() User {
	clone := *u
	clone.Password = ""
	clone.RefreshToken = nil
	return clone
}
