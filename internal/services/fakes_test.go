package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/ports"
	"github.com/brunopaz/autofipe-backend/internal/domain/repositories"
)

// Repositórios em memória para os testes de serviço. Reproduzem a
// semântica de soft delete dos repositórios reais: leituras ignoram
// registros deletados.

type fakeLogger struct{}

func (fakeLogger) Info(msg string, args ...any)  {}
func (fakeLogger) Error(msg string, args ...any) {}
func (fakeLogger) Debug(msg string, args ...any) {}
func (fakeLogger) Warn(msg string, args ...any)  {}
func (l fakeLogger) With(args ...any) ports.Logger {
	return l
}

func nextID(prefix string, n int) string {
	// UUIDs sintéticos estáveis para asserções
	return fmt.Sprintf("%s-0000-4000-8000-%012d", prefix, n)
}

type fakeBrandRepo struct {
	brands []*entities.Brand
	seq    int
	// quando definido, Delete falha para o id indicado
	failDeleteID string
}

func (r *fakeBrandRepo) Create(_ context.Context, brand *entities.Brand) error {
	r.seq++
	brand.ID = nextID("b0000000", r.seq)
	brand.CreatedAt = time.Now()
	clone := *brand
	r.brands = append(r.brands, &clone)
	return nil
}

func (r *fakeBrandRepo) Update(_ context.Context, brand *entities.Brand) error {
	for i, b := range r.brands {
		if b.ID == brand.ID {
			clone := *brand
			r.brands[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, id, deletedByID string) error {
	if r.failDeleteID == id {
		return fmt.Errorf("delete failed for %s", id)
	}
	for _, b := range r.brands {
		if b.ID == id && !b.IsDeleted {
			b.MarkDeleted(deletedByID)
		}
	}
	return nil
}

func (r *fakeBrandRepo) List(_ context.Context, params repositories.ListParams) ([]*entities.Brand, int64, error) {
	params = params.Normalized()
	var active []*entities.Brand
	for _, b := range r.brands {
		if b.IsDeleted {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(params.Search)) {
			continue
		}
		active = append(active, b)
	}
	sort.Slice(active, func(i, j int) bool {
		if params.OrderByField == "name" {
			if params.OrderBy == "desc" {
				return active[i].Name > active[j].Name
			}
			return active[i].Name < active[j].Name
		}
		return i < j
	})
	total := int64(len(active))
	start := params.Offset()
	if start > len(active) {
		start = len(active)
	}
	end := start + params.PageSize
	if end > len(active) {
		end = len(active)
	}
	return active[start:end], total, nil
}

func (r *fakeBrandRepo) FindByID(_ context.Context, id string) (*entities.Brand, error) {
	for _, b := range r.brands {
		if b.ID == id && !b.IsDeleted {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBrandRepo) FindByName(_ context.Context, name string) (*entities.Brand, error) {
	for _, b := range r.brands {
		if b.Name == name && !b.IsDeleted {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

// raw retorna o registro armazenado, inclusive deletado
func (r *fakeBrandRepo) raw(id string) *entities.Brand {
	for _, b := range r.brands {
		if b.ID == id {
			return b
		}
	}
	return nil
}

type fakeModelRepo struct {
	models []*entities.Model
	seq    int
}

func (r *fakeModelRepo) Create(_ context.Context, model *entities.Model) error {
	r.seq++
	model.ID = nextID("a0000000", r.seq)
	model.CreatedAt = time.Now()
	clone := *model
	r.models = append(r.models, &clone)
	return nil
}

func (r *fakeModelRepo) Update(_ context.Context, model *entities.Model) error {
	for i, m := range r.models {
		if m.ID == model.ID {
			clone := *model
			r.models[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeModelRepo) Delete(_ context.Context, id, deletedByID string) error {
	for _, m := range r.models {
		if m.ID == id && !m.IsDeleted {
			m.MarkDeleted(deletedByID)
		}
	}
	return nil
}

func (r *fakeModelRepo) List(_ context.Context, params repositories.ListParams) ([]*entities.Model, int64, error) {
	var active []*entities.Model
	for _, m := range r.models {
		if !m.IsDeleted {
			active = append(active, m)
		}
	}
	return active, int64(len(active)), nil
}

func (r *fakeModelRepo) FindByID(_ context.Context, id string) (*entities.Model, error) {
	for _, m := range r.models {
		if m.ID == id && !m.IsDeleted {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeModelRepo) FindByName(_ context.Context, name string) (*entities.Model, error) {
	for _, m := range r.models {
		if m.Name == name && !m.IsDeleted {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeModelRepo) FindByBrandID(_ context.Context, brandID string) ([]*entities.Model, error) {
	var found []*entities.Model
	for _, m := range r.models {
		if m.BrandID == brandID && !m.IsDeleted {
			clone := *m
			found = append(found, &clone)
		}
	}
	return found, nil
}

func (r *fakeModelRepo) raw(id string) *entities.Model {
	for _, m := range r.models {
		if m.ID == id {
			return m
		}
	}
	return nil
}

type fakeFuelTypeRepo struct {
	fuelTypes []*entities.FuelType
	seq       int
}

func (r *fakeFuelTypeRepo) Create(_ context.Context, fuelType *entities.FuelType) error {
	r.seq++
	fuelType.ID = nextID("c0000000", r.seq)
	fuelType.CreatedAt = time.Now()
	clone := *fuelType
	r.fuelTypes = append(r.fuelTypes, &clone)
	return nil
}

func (r *fakeFuelTypeRepo) Update(_ context.Context, fuelType *entities.FuelType) error {
	for i, f := range r.fuelTypes {
		if f.ID == fuelType.ID {
			clone := *fuelType
			r.fuelTypes[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeFuelTypeRepo) Delete(_ context.Context, id, deletedByID string) error {
	for _, f := range r.fuelTypes {
		if f.ID == id && !f.IsDeleted {
			f.MarkDeleted(deletedByID)
		}
	}
	return nil
}

func (r *fakeFuelTypeRepo) List(_ context.Context, params repositories.ListParams) ([]*entities.FuelType, int64, error) {
	var active []*entities.FuelType
	for _, f := range r.fuelTypes {
		if !f.IsDeleted {
			active = append(active, f)
		}
	}
	return active, int64(len(active)), nil
}

func (r *fakeFuelTypeRepo) FindByID(_ context.Context, id string) (*entities.FuelType, error) {
	for _, f := range r.fuelTypes {
		if f.ID == id && !f.IsDeleted {
			clone := *f
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeFuelTypeRepo) FindByName(_ context.Context, name string) (*entities.FuelType, error) {
	for _, f := range r.fuelTypes {
		if f.Name == name && !f.IsDeleted {
			clone := *f
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeFuelTypeRepo) raw(id string) *entities.FuelType {
	for _, f := range r.fuelTypes {
		if f.ID == id {
			return f
		}
	}
	return nil
}

type fakeVehicleRepo struct {
	vehicles []*entities.Vehicle
	seq      int
}

func (r *fakeVehicleRepo) Create(_ context.Context, vehicle *entities.Vehicle) error {
	r.seq++
	vehicle.ID = nextID("d0000000", r.seq)
	vehicle.CreatedAt = time.Now()
	clone := *vehicle
	r.vehicles = append(r.vehicles, &clone)
	return nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, vehicle *entities.Vehicle) error {
	for i, v := range r.vehicles {
		if v.ID == vehicle.ID {
			clone := *vehicle
			r.vehicles[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeVehicleRepo) Delete(_ context.Context, id, deletedByID string) error {
	for _, v := range r.vehicles {
		if v.ID == id && !v.IsDeleted {
			v.MarkDeleted(deletedByID)
		}
	}
	return nil
}

func (r *fakeVehicleRepo) List(_ context.Context, params repositories.ListParams) ([]*entities.Vehicle, int64, error) {
	var active []*entities.Vehicle
	for _, v := range r.vehicles {
		if !v.IsDeleted {
			active = append(active, v)
		}
	}
	return active, int64(len(active)), nil
}

func (r *fakeVehicleRepo) FindByID(_ context.Context, id string) (*entities.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.ID == id && !v.IsDeleted {
			clone := *v
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) FindByModelID(_ context.Context, modelID string) ([]*entities.Vehicle, error) {
	var found []*entities.Vehicle
	for _, v := range r.vehicles {
		if v.ModelID == modelID && !v.IsDeleted {
			clone := *v
			found = append(found, &clone)
		}
	}
	return found, nil
}

func (r *fakeVehicleRepo) FindByFuelTypeID(_ context.Context, fuelTypeID string) ([]*entities.Vehicle, error) {
	var found []*entities.Vehicle
	for _, v := range r.vehicles {
		if v.FuelTypeID == fuelTypeID && !v.IsDeleted {
			clone := *v
			found = append(found, &clone)
		}
	}
	return found, nil
}

func (r *fakeVehicleRepo) FindExisting(_ context.Context, vehicle *entities.Vehicle) (*entities.Vehicle, error) {
	for _, v := range r.vehicles {
		if !v.IsDeleted && v.SameNaturalKey(vehicle) {
			clone := *v
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) raw(id string) *entities.Vehicle {
	for _, v := range r.vehicles {
		if v.ID == id {
			return v
		}
	}
	return nil
}

type fakeUserRepo struct {
	users []*entities.User
	seq   int
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.seq++
	user.ID = nextID("e0000000", r.seq)
	user.CreatedAt = time.Now()
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			clone := *user
			r.users[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id, deletedByID string) error {
	for _, u := range r.users {
		if u.ID == id && !u.IsDeleted {
			u.MarkDeleted(deletedByID)
			u.RefreshToken = nil
		}
	}
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, params repositories.ListParams) ([]*entities.User, int64, error) {
	var active []*entities.User
	for _, u := range r.users {
		if !u.IsDeleted {
			active = append(active, u)
		}
	}
	return active, int64(len(active)), nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id && !u.IsDeleted {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email.String() == email && !u.IsDeleted {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByNationalID(_ context.Context, nationalID string) (*entities.User, error) {
	for _, u := range r.users {
		if u.NationalID != nil && *u.NationalID == nationalID && !u.IsDeleted {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateRefreshToken(_ context.Context, id, refreshToken, updatedByID string) error {
	for _, u := range r.users {
		if u.ID == id && !u.IsDeleted {
			token := refreshToken
			u.RefreshToken = &token
			by := updatedByID
			u.UpdatedByID = &by
		}
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash, updatedByID string) error {
	for _, u := range r.users {
		if u.ID == id && !u.IsDeleted {
			u.Password = passwordHash
			by := updatedByID
			u.UpdatedByID = &by
		}
	}
	return nil
}

func (r *fakeUserRepo) raw(id string) *entities.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// fakeHasher usa um prefixo fixo em vez de bcrypt para manter os testes rápidos
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) bool {
	return hashed == "hashed:"+password
}

// fakeTokenService emite tokens determinísticos por usuário
type fakeTokenService struct {
	counter int
}

func (t *fakeTokenService) GenerateAccessToken(userID string) (string, error) {
	t.counter++
	return fmt.Sprintf("access:%s:%d", userID, t.counter), nil
}

func (t *fakeTokenService) GenerateRefreshToken(userID string) (string, error) {
	t.counter++
	return fmt.Sprintf("refresh:%s:%d", userID, t.counter), nil
}

func (t *fakeTokenService) ValidateAccessToken(token string) (string, error) {
	return parseFakeToken(token, "access")
}

func (t *fakeTokenService) ValidateRefreshToken(token string) (string, error) {
	return parseFakeToken(token, "refresh")
}

func (t *fakeTokenService) AccessTokenTTL() time.Duration {
	return 30 * time.Minute
}

func parseFakeToken(token, kind string) (string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != kind {
		return "", fmt.Errorf("invalid %s token", kind)
	}
	return parts[1], nil
}
