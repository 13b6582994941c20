package services

import (
	"context"
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
	"github.com/brunopaz/autofipe-backend/internal/domain/valueobjects"
)

// AuthService autentica usuários e gerencia a rotação de refresh tokens
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenService
	hasher   ports.PasswordHasher
	logger   ports.Logger
	now      func() time.Time
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
		now:      time.Now,
	}
}

// AuthResult é o resultado de uma autenticação ou renovação de tokens.
// User vem sanitizado (sem senha nem refresh token).
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	TokenExpiry  int64 // expiração do access token em epoch millis
	User         *entities.User
}

// Authenticate verifica email e senha e emite um par de tokens. Email
// desconhecido e senha incorreta produzem o mesmo Unauthorized para não
// revelar a existência da conta.
func (s *AuthService) Authenticate(ctx context.Context, emailAddr, password string) (*AuthResult, error) {
	// emails são persistidos normalizados; a busca precisa normalizar também
	email, err := valueobjects.NewEmail(emailAddr)
	if err != nil {
		return nil, errors.NewUnauthorized(errors.KeyInvalidCredentials)
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewUnauthorized(errors.KeyInvalidCredentials)
	}

	if !s.hasher.Compare(user.Password, password) {
		return nil, errors.NewUnauthorized(errors.KeyInvalidCredentials)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return result, nil
}

// Refresh valida um refresh token e emite um novo par. O token
// apresentado precisa ser idêntico ao persistido no usuário: há um único
// refresh token ativo por usuário e cada rotação invalida o anterior.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorized(errors.KeyRefreshTokenInvalid)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFound(errors.KeyUserNotFound, "userId")
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, errors.NewUnauthorized(errors.KeyRefreshTokenInvalid)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tokens refreshed", "user_id", user.ID)
	return result, nil
}

// issueTokens emite um par de tokens e persiste o novo refresh token
func (s *AuthService) issueTokens(ctx context.Context, user *entities.User) (*AuthResult, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken, user.ID); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenExpiry:  s.now().Add(s.tokens.AccessTokenTTL()).UnixMilli(),
		User:         &sanitized,
	}, nil
}
