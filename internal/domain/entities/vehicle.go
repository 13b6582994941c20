package entities

// Vehicle representa um veículo precificado na tabela FIPE.
// Quando o fipeCode está presente, o preço vem da fonte externa e
// o campo value passa a ser imutável.
type Vehicle struct {
	ID             string
	FipeCode       *string
	Value          float64
	VehicleYear    int
	ReferenceMonth int
	ReferenceYear  int
	ModelID        string
	FuelTypeID     string
	Audit
}

// HasFipeCode verifica se o veículo possui um código FIPE atribuído
func (v *Vehicle) HasFipeCode() bool {
	return v.FipeCode != nil && *v.FipeCode != ""
}

// SameNaturalKey verifica se outro veículo possui a mesma chave natural
// (value, vehicleYear, referenceMonth, referenceYear, modelId, fuelTypeId)
func (v *Vehicle) SameNaturalKey(other *Vehicle) bool {
	return v.Value == other.Value &&
		v.VehicleYear == other.VehicleYear &&
		v.ReferenceMonth == other.ReferenceMonth &&
		v.ReferenceYear == other.ReferenceYear &&
		v.ModelID == other.ModelID &&
		v.FuelTypeID == other.FuelTypeID
}
