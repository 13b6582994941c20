package dto

import (
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Name       string     `json:"name" binding:"required,min=2,max=500"`
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,min=8,max=72"`
	Birthdate  *time.Time `json:"birthdate" binding:"omitempty"`
	Contact    *string    `json:"contact" binding:"omitempty,max=100"`
	NationalID *string    `json:"nationalId" binding:"omitempty,max=50"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário
type UpdateUserRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=2,max=500"`
	Email      *string    `json:"email" binding:"omitempty,email"`
	Birthdate  *time.Time `json:"birthdate" binding:"omitempty"`
	Contact    *string    `json:"contact" binding:"omitempty,max=100"`
	NationalID *string    `json:"nationalId" binding:"omitempty,max=50"`
}

// ListUsersQuery representa os parâmetros de listagem de usuários
type ListUsersQuery struct {
	ListQuery
	OrderByField string `form:"orderByField" binding:"omitempty,oneof=createdAt name email"`
}

// UserResponse representa a resposta de um usuário, sem credenciais
type UserResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Birthdate   *time.Time `json:"birthdate,omitempty"`
	Contact     *string    `json:"contact,omitempty"`
	NationalID  *string    `json:"nationalId,omitempty"`
	CreatedByID string     `json:"createdById"`
	UpdatedByID *string    `json:"updatedById,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email.String(),
		Birthdate:   user.Birthdate,
		Contact:     user.Contact,
		NationalID:  user.NationalID,
		CreatedByID: user.CreatedByID,
		UpdatedByID: user.UpdatedByID,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
