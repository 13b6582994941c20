package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/infrastructure/config"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtClaims define as claims dos tokens emitidos
type jwtClaims struct {
	UserID    string `json:"userId"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenService com HMAC-SHA256.
// Access e refresh tokens usam segredos e expirações distintos; um token
// de um tipo nunca valida como o outro.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService cria um novo JWTService a partir da configuração
func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{
		accessSecret:  []byte(cfg.TokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     time.Duration(cfg.AccessExpiryMinutes) * time.Minute,
		refreshTTL:    time.Duration(cfg.RefreshExpiryHours) * time.Hour,
		now:           time.Now,
	}
}

var _ ports.TokenService = (*JWTService)(nil)

// GenerateAccessToken emite um access token assinado para o usuário
func (s *JWTService) GenerateAccessToken(userID string) (string, error) {
	return s.generate(userID, tokenTypeAccess, s.accessSecret, s.accessTTL)
}

// GenerateRefreshToken emite um refresh token assinado para o usuário
func (s *JWTService) GenerateRefreshToken(userID string) (string, error) {
	return s.generate(userID, tokenTypeRefresh, s.refreshSecret, s.refreshTTL)
}

// ValidateAccessToken valida um access token e retorna o id do usuário
func (s *JWTService) ValidateAccessToken(token string) (string, error) {
	return s.validate(token, tokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken valida um refresh token e retorna o id do usuário
func (s *JWTService) ValidateRefreshToken(token string) (string, error) {
	return s.validate(token, tokenTypeRefresh, s.refreshSecret)
}

// AccessTokenTTL retorna o tempo de vida do access token
func (s *JWTService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *JWTService) generate(userID, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := s.now()

	claims := jwtClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *JWTService) validate(tokenString, tokenType string, secret []byte) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid %s token: %w", tokenType, err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid %s token claims", tokenType)
	}
	if claims.TokenType != tokenType {
		return "", fmt.Errorf("token is not a %s token", tokenType)
	}
	return claims.UserID, nil
}
