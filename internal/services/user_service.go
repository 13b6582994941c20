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

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Birthdate  *time.Time
	Contact    *string
	NationalID *string
}

// UpdateUserInput representa o patch de um usuário; campos nil não são alterados
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Birthdate  *time.Time
	Contact    *string
	NationalID *string
}

// Create cria um novo usuário com senha hasheada. Email e CPF são únicos
// entre registros não deletados. Quando a criação não é autenticada
// (createdByID vazio), o registro é carimbado como criado por si mesmo.
func (s *UserService) Create(ctx context.Context, input CreateUserInput, createdByID string) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.NewBadRequest(errors.KeyValidation)
	}

	byEmail, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, errors.NewConflict(errors.KeyUserEmailExists, "email")
	}

	if input.NationalID != nil {
		byNationalID, err := s.userRepo.FindByNationalID(ctx, *input.NationalID)
		if err != nil {
			return nil, err
		}
		if byNationalID != nil {
			return nil, errors.NewConflict(errors.KeyUserNationalIDExists, "nationalId")
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:       input.Name,
		Email:      email,
		Password:   hash,
		Birthdate:  input.Birthdate,
		Contact:    input.Contact,
		NationalID: input.NationalID,
		Audit:      entities.Audit{CreatedByID: createdByID},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Auto-cadastro: o criador é o próprio usuário recém-criado
	if createdByID == "" {
		user.CreatedByID = user.ID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// Update atualiza um usuário. Unicidade de email e CPF só é verificada
// quando o respectivo campo está presente no patch; colisão com o próprio
// registro é permitida.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput, updatedByID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFound(errors.KeyUserNotFound, "id")
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.NewBadRequest(errors.KeyValidation)
		}
		byEmail, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if byEmail != nil && byEmail.ID != id {
			return nil, errors.NewConflict(errors.KeyUserEmailExists, "email")
		}
		user.Email = email
	}
	if input.NationalID != nil {
		byNationalID, err := s.userRepo.FindByNationalID(ctx, *input.NationalID)
		if err != nil {
			return nil, err
		}
		if byNationalID != nil && byNationalID.ID != id {
			return nil, errors.NewConflict(errors.KeyUserNationalIDExists, "nationalId")
		}
		user.NationalID = input.NationalID
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Birthdate != nil {
		user.Birthdate = input.Birthdate
	}
	if input.Contact != nil {
		user.Contact = input.Contact
	}

	user.MarkUpdated(updatedByID)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete faz o soft delete de um usuário e limpa o refresh token. Um
// usuário só pode excluir a própria conta.
func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NewNotFound(errors.KeyUserNotFound, "id")
	}

	if user.ID != actorID {
		return errors.NewForbidden(errors.KeyUserDeleteOwnAccount)
	}

	if err := s.userRepo.Delete(ctx, id, actorID); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// ResetPassword substitui a senha do usuário identificado pelo email
func (s *UserService) ResetPassword(ctx context.Context, emailAddr, password string) error {
	// emails são persistidos normalizados; a busca precisa normalizar também
	email, err := valueobjects.NewEmail(emailAddr)
	if err != nil {
		return errors.NewNotFound(errors.KeyUserNotFound, "email")
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NewNotFound(errors.KeyUserNotFound, "email")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash, user.ID); err != nil {
		return err
	}

	s.logger.Info("user password reset", "user_id", user.ID)
	return nil
}

// List lista usuários com paginação, busca e ordenação
func (s *UserService) List(ctx context.Context, params repositories.ListParams) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, params)
}
