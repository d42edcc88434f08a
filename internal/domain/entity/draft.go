package entity

import "github.com/shopspring/decimal"

// Borradores y parches: lo que la consola envía al backend. El backend asigna
// los IDs; por eso los borradores no llevan uno.

// EmployeeDraft datos para crear un empleado. Password es obligatorio al crear.
type EmployeeDraft struct {
	Name     string
	Email    string
	Role     string
	Gender   string
	UnitID   int64
	Password string
}

// EmployeePatch datos para actualizar un empleado. Campos nil no se tocan;
// Password es opcional en actualización.
type EmployeePatch struct {
	Name     *string
	Email    *string
	Role     *string
	Gender   *string
	UnitID   *int64
	Password *string
}

// InventoryDraft datos para crear un artículo de inventario.
type InventoryDraft struct {
	UnitID       int64
	Name         string
	Description  string
	Quantity     int
	ReorderLevel int
	Price        decimal.Decimal
}

// InventoryPatch datos para actualizar un artículo. Campos nil no se tocan.
type InventoryPatch struct {
	Quantity     *int
	ReorderLevel *int
	Price        *decimal.Decimal
}

// BusinessUnitDraft datos para crear una unidad de negocio.
type BusinessUnitDraft struct {
	Name     string
	Location string
}
