package services

import (
	"context"
	"testing"
	"time"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
)

func newVehicleFixture(t *testing.T) (*VehicleService, *fakeVehicleRepo, *entities.Model, *entities.FuelType) {
	t.Helper()

	vehicleRepo := &fakeVehicleRepo{}
	modelRepo := &fakeModelRepo{}
	fuelTypeRepo := &fakeFuelTypeRepo{}
	service := NewVehicleService(vehicleRepo, modelRepo, fuelTypeRepo, fakeLogger{})

	ctx := context.Background()
	model := &entities.Model{Name: "Uno", BrandID: "brand-1", Audit: entities.Audit{CreatedByID: "actor-1"}}
	if err := modelRepo.Create(ctx, model); err != nil {
		t.Fatalf("setup falhou: %v", err)
	}
	fuelType := &entities.FuelType{Name: "Gasolina", Abbreviation: "G", Audit: entities.Audit{CreatedByID: "actor-1"}}
	if err := fuelTypeRepo.Create(ctx, fuelType); err != nil {
		t.Fatalf("setup falhou: %v", err)
	}

	return service, vehicleRepo, model, fuelType
}

func TestVehicleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cria veículo com mês e ano de referência informados", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)

		month, year := 6, 2023
		vehicle, err := service.Create(ctx, CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ReferenceMonth: &month, ReferenceYear: &year,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if vehicle.ReferenceMonth != 6 || vehicle.ReferenceYear != 2023 {
			t.Errorf("esperava referência 6/2023, obteve %d/%d", vehicle.ReferenceMonth, vehicle.ReferenceYear)
		}
	})

	t.Run("assume mês e ano correntes quando omitidos", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)
		service.now = func() time.Time {
			return time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
		}

		vehicle, err := service.Create(ctx, CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if vehicle.ReferenceMonth != 9 || vehicle.ReferenceYear != 2024 {
			t.Errorf("esperava referência 9/2024, obteve %d/%d", vehicle.ReferenceMonth, vehicle.ReferenceYear)
		}
	})

	t.Run("rejeita duplicata exata da chave natural com Conflict", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)

		month, year := 6, 2023
		input := CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ReferenceMonth: &month, ReferenceYear: &year,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}
		if _, err := service.Create(ctx, input, "actor-1"); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		_, err := service.Create(ctx, input, "actor-2")
		if !errors.IsConflict(err) {
			t.Fatalf("esperava Conflict, obteve %v", err)
		}
	})

	t.Run("permite mesmo veículo em mês de referência distinto", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)

		june, july, year := 6, 7, 2023
		base := CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ReferenceMonth: &june, ReferenceYear: &year,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}
		if _, err := service.Create(ctx, base, "actor-1"); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		base.ReferenceMonth = &july
		if _, err := service.Create(ctx, base, "actor-1"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("NotFound para modelo inexistente", func(t *testing.T) {
		service, _, _, fuelType := newVehicleFixture(t)

		_, err := service.Create(ctx, CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ModelID: "nao-existe", FuelTypeID: fuelType.ID,
		}, "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})

	t.Run("NotFound para combustível inexistente", func(t *testing.T) {
		service, _, model, _ := newVehicleFixture(t)

		_, err := service.Create(ctx, CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ModelID: model.ID, FuelTypeID: "nao-existe",
		}, "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})
}

func TestVehicleService_Update(t *testing.T) {
	ctx := context.Background()

	createVehicle := func(t *testing.T, service *VehicleService, model *entities.Model, fuelType *entities.FuelType, fipeCode *string) *entities.Vehicle {
		t.Helper()
		month, year := 6, 2023
		vehicle, err := service.Create(ctx, CreateVehicleInput{
			FipeCode: fipeCode,
			Value:    42000, VehicleYear: 2020,
			ReferenceMonth: &month, ReferenceYear: &year,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}
		return vehicle
	}

	t.Run("NotFound para id inexistente", func(t *testing.T) {
		service, _, _, _ := newVehicleFixture(t)

		value := 50000.0
		_, err := service.Update(ctx, "nao-existe", UpdateVehicleInput{Value: &value}, "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})

	t.Run("atualiza o preço de veículo sem código FIPE", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)
		vehicle := createVehicle(t, service, model, fuelType, nil)

		value := 39000.0
		updated, err := service.Update(ctx, vehicle.ID, UpdateVehicleInput{Value: &value}, "actor-2")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated.Value != 39000 {
			t.Errorf("esperava valor 39000, obteve %v", updated.Value)
		}
		if updated.UpdatedByID == nil || *updated.UpdatedByID != "actor-2" {
			t.Error("esperava updated_by 'actor-2'")
		}
	})

	t.Run("Forbidden ao alterar o preço de veículo com código FIPE", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)
		fipe := "001267-0"
		vehicle := createVehicle(t, service, model, fuelType, &fipe)

		value := 39000.0
		_, err := service.Update(ctx, vehicle.ID, UpdateVehicleInput{Value: &value}, "actor-1")
		if !errors.IsForbidden(err) {
			t.Fatalf("esperava Forbidden, obteve %v", err)
		}
	})

	t.Run("veículo com código FIPE ainda aceita patch sem preço", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)
		fipe := "001267-0"
		vehicle := createVehicle(t, service, model, fuelType, &fipe)

		yearValue := 2021
		updated, err := service.Update(ctx, vehicle.ID, UpdateVehicleInput{VehicleYear: &yearValue}, "actor-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated.VehicleYear != 2021 {
			t.Errorf("esperava ano 2021, obteve %d", updated.VehicleYear)
		}
	})

	t.Run("NotFound para modelo inexistente no patch", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)
		vehicle := createVehicle(t, service, model, fuelType, nil)

		missing := "nao-existe"
		_, err := service.Update(ctx, vehicle.ID, UpdateVehicleInput{ModelID: &missing}, "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})

	t.Run("patch que colide com outro veículo passa sem Conflict", func(t *testing.T) {
		// comportamento atual: a duplicata é checada contra o registro
		// armazenado, não contra o resultado do patch
		service, _, model, fuelType := newVehicleFixture(t)

		month, year := 6, 2023
		first, err := service.Create(ctx, CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ReferenceMonth: &month, ReferenceYear: &year,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}
		second, err := service.Create(ctx, CreateVehicleInput{
			Value: 50000, VehicleYear: 2020,
			ReferenceMonth: &month, ReferenceYear: &year,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		collide := first.Value
		updated, err := service.Update(ctx, second.ID, UpdateVehicleInput{Value: &collide}, "actor-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !updated.SameNaturalKey(first) {
			t.Error("esperava chaves naturais idênticas após o patch")
		}
	})
}

func TestVehicleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound para id inexistente", func(t *testing.T) {
		service, _, _, _ := newVehicleFixture(t)

		err := service.Delete(ctx, "nao-existe", "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})

	t.Run("deleta veículo sem código FIPE", func(t *testing.T) {
		service, vehicleRepo, model, fuelType := newVehicleFixture(t)

		vehicle, _ := service.Create(ctx, CreateVehicleInput{
			Value: 42000, VehicleYear: 2020,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")

		if err := service.Delete(ctx, vehicle.ID, "actor-2"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		stored := vehicleRepo.raw(vehicle.ID)
		if !stored.IsDeleted {
			t.Error("esperava veículo deletado")
		}
		if stored.DeletedByID == nil || *stored.DeletedByID != "actor-2" {
			t.Error("esperava deleted_by 'actor-2'")
		}
	})

	t.Run("Forbidden para veículo com código FIPE", func(t *testing.T) {
		service, _, model, fuelType := newVehicleFixture(t)

		fipe := "001267-0"
		vehicle, _ := service.Create(ctx, CreateVehicleInput{
			FipeCode: &fipe,
			Value:    42000, VehicleYear: 2020,
			ModelID: model.ID, FuelTypeID: fuelType.ID,
		}, "actor-1")

		err := service.Delete(ctx, vehicle.ID, "actor-1")
		if !errors.IsForbidden(err) {
			t.Fatalf("esperava Forbidden, obteve %v", err)
		}
	})
}
