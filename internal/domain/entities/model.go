package entities

// Model representa um modelo de veículo pertencente a uma marca.
type Model struct {
	ID       string
	Name     string
	FipeCode *string
	BrandID  string
	Audit
}
