package dto

import (
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// LoginRequest representa a requisição de autenticação
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest representa a requisição de rotação do refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ResetPasswordRequest representa a requisição de redefinição de senha
type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// AuthResponse representa a resposta de autenticação
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenExpiry  int64        `json:"tokenExpiry"`
	User         UserResponse `json:"user"`
}

// ToAuthResponse converte o resultado da autenticação para AuthResponse
func ToAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenExpiry:  result.TokenExpiry,
		User:         ToUserResponse(result.User),
	}
}
