package store

import "github.com/tu-usuario/maxhelp-console/internal/domain/entity"

// Proyectores: funciones puras sobre un snapshot inmutable de la colección.
// Se recalculan completos en cada mutación confirmada, en lugar de parchear
// contadores a mano, para que caché y agregado no puedan divergir.

// ProjectGender cuenta empleados por género. Solo cuenta los valores
// reconocidos Male/Female; cualquier otro valor queda fuera de ambos conteos.
func ProjectGender(employees []entity.Employee) entity.GenderCount {
	var gc entity.GenderCount
	for _, e := range employees {
		switch e.Gender {
		case entity.GenderMale:
			gc.Male++
		case entity.GenderFemale:
			gc.Female++
		}
	}
	return gc
}

// Count proyector trivial: tamaño de la colección cacheada. Para inventario
// el agregado real {total, bajo stock} lo calcula el backend; localmente solo
// se cuenta lo cacheado.
func Count[T Entity](items []T) int {
	return len(items)
}
