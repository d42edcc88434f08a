package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem artículo de inventario de una unidad de negocio.
// Quantity y ReorderLevel nunca son negativos; Price se maneja con decimal
// para evitar errores de redondeo binario.
type InventoryItem struct {
	ID           int64
	UnitID       int64
	Name         string
	Description  string
	Quantity     int
	ReorderLevel int
	Price        decimal.Decimal
	CreatedAt    time.Time
}

// EntityID implementa store.Entity.
func (i InventoryItem) EntityID() int64 { return i.ID }

// LowStock indica si el artículo está en o por debajo de su nivel de reorden.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// InventoryStats agregado calculado por el backend; la consola no lo deriva
// localmente.
type InventoryStats struct {
	TotalInventory    int
	LowInventoryCount int
}
