package entities

// FuelType representa um tipo de combustível (ex: Gasolina, "G").
// Não pode ser deletado enquanto algum veículo não deletado o referenciar.
type FuelType struct {
	ID           string
	Name         string
	Abbreviation string
	Audit
}
