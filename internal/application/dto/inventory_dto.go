package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// InventoryForm formulario de alta/edición de artículo de inventario.
type InventoryForm struct {
	UnitID       int64           `json:"unit_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
}

// ValidateCreate valida el formulario para creación.
func (f InventoryForm) ValidateCreate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	}
	if f.UnitID <= 0 {
		return fmt.Errorf("%w: unit_id es requerido", domain.ErrValidation)
	}
	return f.validateAmounts()
}

// ValidateUpdate valida el formulario para actualización. Solo cantidades,
// nivel de reorden y precio son editables.
func (f InventoryForm) ValidateUpdate() error {
	return f.validateAmounts()
}

func (f InventoryForm) validateAmounts() error {
	if f.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrValidation)
	}
	if f.ReorderLevel < 0 {
		return fmt.Errorf("%w: reorder_level no puede ser negativo", domain.ErrValidation)
	}
	if f.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	return nil
}

// Draft convierte el formulario en el borrador que consume el backend.
func (f InventoryForm) Draft() entity.InventoryDraft {
	return entity.InventoryDraft{
		UnitID:       f.UnitID,
		Name:         strings.TrimSpace(f.Name),
		Description:  strings.TrimSpace(f.Description),
		Quantity:     f.Quantity,
		ReorderLevel: f.ReorderLevel,
		Price:        f.Price,
	}
}

// Patch convierte el formulario en un parche de actualización.
func (f InventoryForm) Patch() entity.InventoryPatch {
	qty := f.Quantity
	reorder := f.ReorderLevel
	price := f.Price
	return entity.InventoryPatch{
		Quantity:     &qty,
		ReorderLevel: &reorder,
		Price:        &price,
	}
}
