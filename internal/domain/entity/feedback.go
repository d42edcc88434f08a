package entity

import "time"

// Feedback comentario de un cliente sobre una unidad de negocio. Solo lectura.
type Feedback struct {
	ID           int64
	UnitID       int64
	UnitName     string
	CustomerName string
	Comment      string
	Rating       int // 1..5, 0 si el cliente no calificó
	CreatedAt    time.Time
}
