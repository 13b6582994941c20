package repositories

import (
	"context"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, user *entities.User) error
	// Delete faz o soft delete e limpa o refresh token persistido
	Delete(ctx context.Context, id, deletedByID string) error
	List(ctx context.Context, params ListParams) ([]*entities.User, int64, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByNationalID(ctx context.Context, nationalID string) (*entities.User, error)
	// UpdateRefreshToken substitui o refresh token ativo do usuário
	UpdateRefreshToken(ctx context.Context, id, refreshToken, updatedByID string) error
	// UpdatePassword substitui o hash de senha do usuário
	UpdatePassword(ctx context.Context, id, passwordHash, updatedByID string) error
}
