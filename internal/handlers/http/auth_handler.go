package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// AuthHandler lida com autenticação, rotação de refresh token e
// redefinição de senha
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login autentica um usuário por email e senha
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// RefreshToken troca um refresh token válido por um novo par de tokens
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

// ResetPassword redefine a senha do usuário identificado pelo email
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
