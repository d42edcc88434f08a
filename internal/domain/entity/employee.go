package entity

import "time"

// Géneros reconocidos por las estadísticas de empleados.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Employee empleado de alguna unidad de negocio. El ID lo asigna el backend
// y la consola nunca lo reutiliza.
type Employee struct {
	ID        int64
	Name      string
	Email     string
	Role      string // admin | employee
	Gender    string // Male | Female
	UnitID    int64
	CreatedAt time.Time
}

// EntityID implementa store.Entity.
func (e Employee) EntityID() int64 { return e.ID }

// GenderCount conteo derivado de empleados por género. Solo cuenta valores
// reconocidos (Male/Female).
type GenderCount struct {
	Male   int
	Female int
}

// BusinessStats conteos agregados del negocio que calcula el backend
// (solo admin).
type BusinessStats struct {
	TotalEmployees     int
	TotalBusinessUnits int
}
