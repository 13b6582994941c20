package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher usando bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um novo BcryptHasher. Custos fora da faixa do
// bcrypt caem no custo padrão da biblioteca.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// Hash gera o hash bcrypt da senha
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifica se a senha corresponde ao hash
func (h *BcryptHasher) Compare(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
