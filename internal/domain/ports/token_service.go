package ports

import "time"

// TokenService define a emissão e validação dos tokens de autenticação.
// Access e refresh tokens são assinados com segredos distintos e
// possuem expirações distintas.
type TokenService interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)

	// ValidateAccessToken retorna o id do usuário contido no token
	ValidateAccessToken(token string) (string, error)
	// ValidateRefreshToken retorna o id do usuário contido no token
	ValidateRefreshToken(token string) (string, error)

	// AccessTokenTTL retorna o tempo de vida do access token
	AccessTokenTTL() time.Duration
}
