package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
	"github.com/brunopaz/autofipe-backend/internal/domain/valueobjects"
)

var userSearchColumns = []string{"name", "email"}

var userOrderColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
}

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*user = *r.toEntity(model)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete faz o soft delete e invalida o refresh token do usuário
func (r *UserRepository) Delete(ctx context.Context, id, deletedByID string) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"deleted_at":    now,
			"deleted_by_id": deletedByID,
			"refresh_token": nil,
		}).Error
}

func (r *UserRepository) List(ctx context.Context, params repositories.ListParams) ([]*entities.User, int64, error) {
	params = params.Normalized()

	query := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("is_deleted = ?", false)
	query = applySearch(query, params.Search, userSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*UserModel
	query = applyOrder(query, params, userOrderColumns).
		Limit(params.PageSize).Offset(params.Offset())
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, len(models))
	for i, model := range models {
		users[i] = r.toEntity(model)
	}
	return users, total, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ? AND is_deleted = ?", id, false)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ? AND is_deleted = ?", email, false)
}

func (r *UserRepository) FindByNationalID(ctx context.Context, nationalID string) (*entities.User, error) {
	return r.findOne(ctx, "national_id = ? AND is_deleted = ?", nationalID, false)
}

func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id, refreshToken, updatedByID string) error {
	return r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"refresh_token": refreshToken,
			"updated_by_id": updatedByID,
		}).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash, updatedByID string) error {
	return r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"password":      passwordHash,
			"updated_by_id": updatedByID,
		}).Error
}

func (r *UserRepository) findOne(ctx context.Context, condition string, args ...interface{}) (*entities.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where(condition, args...).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

// Conversores

func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var birthdate *int64
	if user.Birthdate != nil {
		ts := user.Birthdate.Unix()
		birthdate = &ts
	}

	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email.String(),
		Password:     user.Password,
		RefreshToken: user.RefreshToken,
		Birthdate:    birthdate,
		Contact:      user.Contact,
		NationalID:   user.NationalID,
		AuditModel:   toAuditModel(user.Audit),
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	var birthdate *time.Time
	if model.Birthdate != nil {
		ts := time.Unix(*model.Birthdate, 0)
		birthdate = &ts
	}

	// o valor persistido já passou pela validação no cadastro
	email, _ := valueobjects.NewEmail(model.Email)

	return &entities.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        email,
		Password:     model.Password,
		RefreshToken: model.RefreshToken,
		Birthdate:    birthdate,
		Contact:      model.Contact,
		NationalID:   model.NationalID,
		Audit:        toAuditEntity(model.AuditModel),
	}
}
