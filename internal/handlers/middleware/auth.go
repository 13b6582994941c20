package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
	"github.com/brunopaz/autofipe-backend/internal/infrastructure/i18n"
)

// PrincipalContextKey é a chave do usuário autenticado no contexto do Gin
const PrincipalContextKey = "principal"

// AuthMiddleware valida o token de acesso e carrega o usuário autenticado
type AuthMiddleware struct {
	tokens   ports.TokenService
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens ports.TokenService, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth exige um Bearer token válido de um usuário ativo
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.authenticate(c)
		if !ok {
			m.abortUnauthorized(c)
			return
		}

		c.Set(PrincipalContextKey, user)
		c.Next()
	}
}

// OptionalAuth carrega o usuário se um token válido for enviado, mas nunca bloqueia
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := m.authenticate(c); ok {
			c.Set(PrincipalContextKey, user)
		}
		c.Next()
	}
}

// Principal retorna o usuário autenticado da requisição, se houver
func Principal(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*entities.User, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	userID, err := m.tokens.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, false
	}

	user, err := m.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		return nil, false
	}
	return user, true
}

func (m *AuthMiddleware) abortUnauthorized(c *gin.Context) {
	message := errors.KeyUnauthorized
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang, _ := c.Get(LanguageContextKey)
			langStr, _ := lang.(string)
			if langStr == "" {
				langStr = service.GetDefaultLanguage()
			}
			message = service.T(langStr, errors.KeyUnauthorized)
		}
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"name":       "UnauthorizedError",
			"message":    message,
			"statusCode": http.StatusUnauthorized,
		},
	})
}
