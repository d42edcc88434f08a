package entity

import "github.com/shopspring/decimal"

// Notification alerta de inventario bajo producida por el backend.
// Solo lectura: la consola nunca la muta.
type Notification struct {
	ID                int64
	InventoryItemName string
	Message           string
	BusinessUnitName  string
	Location          string
	Quantity          int
	Price             decimal.Decimal
	TotalEmployees    int
}
