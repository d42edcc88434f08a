package entity

// BusinessUnit unidad de negocio. Desde la consola es append-only: se crean
// pero nunca se actualizan ni borran.
type BusinessUnit struct {
	ID       int64
	Name     string
	Location string
}
