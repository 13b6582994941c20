package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brunopaz/autofipe-backend/internal/domain/entities"
	"github.com/brunopaz/autofipe-backend/internal/domain/errors"
)

// Cobre a cascata completa de deleção: marca -> modelos -> veículos,
// sem transação, com o mesmo autor carimbado em todos os registros.
var _ = Describe("Cascata de deleção de marca", func() {
	var (
		ctx          context.Context
		brandRepo    *fakeBrandRepo
		modelRepo    *fakeModelRepo
		vehicleRepo  *fakeVehicleRepo
		brandService *BrandService
		modelService *ModelService

		brand  *entities.Brand
		uno    *entities.Model
		palio  *entities.Model
		frota  []*entities.Vehicle
		atorID string
	)

	BeforeEach(func() {
		ctx = context.Background()
		brandRepo = &fakeBrandRepo{}
		modelRepo = &fakeModelRepo{}
		vehicleRepo = &fakeVehicleRepo{}
		modelService = NewModelService(modelRepo, brandRepo, vehicleRepo, fakeLogger{})
		brandService = NewBrandService(brandRepo, modelRepo, modelService, fakeLogger{})
		atorID = "usuario-admin"

		var err error
		brand, err = brandService.Create(ctx, CreateBrandInput{Name: "Fiat"}, atorID)
		Expect(err).NotTo(HaveOccurred())

		uno, err = modelService.Create(ctx, CreateModelInput{Name: "Uno", BrandID: brand.ID}, atorID)
		Expect(err).NotTo(HaveOccurred())
		palio, err = modelService.Create(ctx, CreateModelInput{Name: "Palio", BrandID: brand.ID}, atorID)
		Expect(err).NotTo(HaveOccurred())

		fipe := "001267-0"
		frota = []*entities.Vehicle{
			{FipeCode: &fipe, Value: 25000, VehicleYear: 2020, ReferenceMonth: 1, ReferenceYear: 2024, ModelID: uno.ID, FuelTypeID: "fuel-1"},
			{Value: 18000, VehicleYear: 2018, ReferenceMonth: 1, ReferenceYear: 2024, ModelID: uno.ID, FuelTypeID: "fuel-1"},
			{Value: 31000, VehicleYear: 2021, ReferenceMonth: 1, ReferenceYear: 2024, ModelID: palio.ID, FuelTypeID: "fuel-2"},
		}
		for _, v := range frota {
			v.CreatedByID = atorID
			Expect(vehicleRepo.Create(ctx, v)).To(Succeed())
		}
	})

	It("deleta a marca, todos os modelos e todos os veículos", func() {
		Expect(brandService.Delete(ctx, brand.ID, atorID)).To(Succeed())

		Expect(brandRepo.raw(brand.ID).IsDeleted).To(BeTrue())
		Expect(modelRepo.raw(uno.ID).IsDeleted).To(BeTrue())
		Expect(modelRepo.raw(palio.ID).IsDeleted).To(BeTrue())
		for _, v := range frota {
			Expect(vehicleRepo.raw(v.ID).IsDeleted).To(BeTrue())
		}
	})

	It("carimba o mesmo autor em todos os registros da cascata", func() {
		Expect(brandService.Delete(ctx, brand.ID, atorID)).To(Succeed())

		Expect(brandRepo.raw(brand.ID).DeletedByID).To(HaveValue(Equal(atorID)))
		Expect(modelRepo.raw(uno.ID).DeletedByID).To(HaveValue(Equal(atorID)))
		Expect(modelRepo.raw(palio.ID).DeletedByID).To(HaveValue(Equal(atorID)))
		for _, v := range frota {
			Expect(vehicleRepo.raw(v.ID).DeletedByID).To(HaveValue(Equal(atorID)))
		}
	})

	It("remove veículos com código FIPE que a deleção individual recusa", func() {
		vehicleService := NewVehicleService(vehicleRepo, modelRepo, &fakeFuelTypeRepo{}, fakeLogger{})

		err := vehicleService.Delete(ctx, frota[0].ID, atorID)
		Expect(errors.IsForbidden(err)).To(BeTrue())

		Expect(brandService.Delete(ctx, brand.ID, atorID)).To(Succeed())
		Expect(vehicleRepo.raw(frota[0].ID).IsDeleted).To(BeTrue())
	})

	It("não toca em modelos e veículos de outras marcas", func() {
		outra, err := brandService.Create(ctx, CreateBrandInput{Name: "Ford"}, atorID)
		Expect(err).NotTo(HaveOccurred())
		ka, err := modelService.Create(ctx, CreateModelInput{Name: "Ka", BrandID: outra.ID}, atorID)
		Expect(err).NotTo(HaveOccurred())

		Expect(brandService.Delete(ctx, brand.ID, atorID)).To(Succeed())

		Expect(brandRepo.raw(outra.ID).IsDeleted).To(BeFalse())
		Expect(modelRepo.raw(ka.ID).IsDeleted).To(BeFalse())
	})

	It("deixa estado parcial quando a deleção final da marca falha", func() {
		// as deleções são chamadas individuais, sem transação
		brandRepo.failDeleteID = brand.ID

		err := brandService.Delete(ctx, brand.ID, atorID)
		Expect(err).To(HaveOccurred())

		Expect(brandRepo.raw(brand.ID).IsDeleted).To(BeFalse())
		Expect(modelRepo.raw(uno.ID).IsDeleted).To(BeTrue())
		for _, v := range frota {
			Expect(vehicleRepo.raw(v.ID).IsDeleted).To(BeTrue())
		}
	})
})
