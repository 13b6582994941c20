package services

import (
	"context"
	"testing"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
)

func newFuelTypeFixture() (*FuelTypeService, *fakeFuelTypeRepo, *fakeVehicleRepo) {
	fuelTypeRepo := &fakeFuelTypeRepo{}
	vehicleRepo := &fakeVehicleRepo{}
	service := NewFuelTypeService(fuelTypeRepo, vehicleRepo, fakeLogger{})
	return service, fuelTypeRepo, vehicleRepo
}

func TestFuelTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cria tipo de combustível com sucesso", func(t *testing.T) {
		service, _, _ := newFuelTypeFixture()

		fuelType, err := service.Create(ctx, CreateFuelTypeInput{Name: "Gasolina", Abbreviation: "G"}, "actor-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if fuelType.Abbreviation != "G" {
			t.Errorf("esperava abreviação 'G', obteve '%s'", fuelType.Abbreviation)
		}
	})

	t.Run("rejeita nome duplicado com Conflict", func(t *testing.T) {
		service, _, _ := newFuelTypeFixture()

		if _, err := service.Create(ctx, CreateFuelTypeInput{Name: "Gasolina", Abbreviation: "G"}, "actor-1"); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		_, err := service.Create(ctx, CreateFuelTypeInput{Name: "Gasolina", Abbreviation: "GAS"}, "actor-1")
		if !errors.IsConflict(err) {
			t.Fatalf("esperava Conflict, obteve %v", err)
		}
	})
}

func TestFuelTypeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound para id inexistente", func(t *testing.T) {
		service, _, _ := newFuelTypeFixture()

		name := "Etanol"
		_, err := service.Update(ctx, "nao-existe", UpdateFuelTypeInput{Name: &name}, "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})

	t.Run("atualiza abreviação sem tocar no nome", func(t *testing.T) {
		service, _, _ := newFuelTypeFixture()

		fuelType, _ := service.Create(ctx, CreateFuelTypeInput{Name: "Etanol", Abbreviation: "E"}, "actor-1")

		abbr := "ETA"
		updated, err := service.Update(ctx, fuelType.ID, UpdateFuelTypeInput{Abbreviation: &abbr}, "actor-2")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated.Name != "Etanol" || updated.Abbreviation != "ETA" {
			t.Errorf("esperava nome intacto e abreviação nova, obteve '%s'/'%s'", updated.Name, updated.Abbreviation)
		}
	})
}

func TestFuelTypeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleta tipo sem veículos", func(t *testing.T) {
		service, fuelTypeRepo, _ := newFuelTypeFixture()

		fuelType, _ := service.Create(ctx, CreateFuelTypeInput{Name: "Gasolina", Abbreviation: "G"}, "actor-1")

		if err := service.Delete(ctx, fuelType.ID, "actor-2"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		stored := fuelTypeRepo.raw(fuelType.ID)
		if !stored.IsDeleted {
			t.Error("esperava tipo deletado")
		}
		if stored.DeletedByID == nil || *stored.DeletedByID != "actor-2" {
			t.Error("esperava deleted_by 'actor-2'")
		}
	})

	t.Run("Conflict quando usado por veículo ativo", func(t *testing.T) {
		service, _, vehicleRepo := newFuelTypeFixture()

		fuelType, _ := service.Create(ctx, CreateFuelTypeInput{Name: "Gasolina", Abbreviation: "G"}, "actor-1")

		vehicle := &entities.Vehicle{
			Value: 30000, VehicleYear: 2021,
			ReferenceMonth: 3, ReferenceYear: 2024,
			ModelID: "model-1", FuelTypeID: fuelType.ID,
		}
		_ = vehicleRepo.Create(ctx, vehicle)

		err := service.Delete(ctx, fuelType.ID, "actor-1")
		if !errors.IsConflict(err) {
			t.Fatalf("esperava Conflict, obteve %v", err)
		}
	})

	t.Run("deleta após os veículos do tipo serem removidos", func(t *testing.T) {
		service, _, vehicleRepo := newFuelTypeFixture()

		fuelType, _ := service.Create(ctx, CreateFuelTypeInput{Name: "Diesel", Abbreviation: "D"}, "actor-1")

		vehicle := &entities.Vehicle{
			Value: 90000, VehicleYear: 2022,
			ReferenceMonth: 3, ReferenceYear: 2024,
			ModelID: "model-1", FuelTypeID: fuelType.ID,
		}
		_ = vehicleRepo.Create(ctx, vehicle)
		_ = vehicleRepo.Delete(ctx, vehicle.ID, "actor-1")

		if err := service.Delete(ctx, fuelType.ID, "actor-1"); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("a checagem de uso roda antes da de existência", func(t *testing.T) {
		service, _, vehicleRepo := newFuelTypeFixture()

		// veículo referenciando um tipo que nunca existiu
		vehicle := &entities.Vehicle{
			Value: 15000, VehicleYear: 2015,
			ReferenceMonth: 3, ReferenceYear: 2024,
			ModelID: "model-1", FuelTypeID: "fantasma",
		}
		_ = vehicleRepo.Create(ctx, vehicle)

		err := service.Delete(ctx, "fantasma", "actor-1")
		if !errors.IsConflict(err) {
			t.Fatalf("esperava Conflict antes de NotFound, obteve %v", err)
		}
	})

	t.Run("NotFound para id inexistente e sem veículos", func(t *testing.T) {
		service, _, _ := newFuelTypeFixture()

		err := service.Delete(ctx, "nao-existe", "actor-1")
		if !errors.IsNotFound(err) {
			t.Fatalf("esperava NotFound, obteve %v", err)
		}
	})
}
