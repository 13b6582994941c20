package entities

// Brand representa uma marca de veículos (ex: Fiat, Volkswagen).
// O nome é único entre registros não deletados.
type Brand struct {
	ID       string
	Name     string
	FipeCode *string
	Audit
}
