package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// InventoryClient implementa collaborator.InventoryAPI. Las rutas mezclan
// /inventory y /auth/admin/* porque así las expone el backend original.
type InventoryClient struct {
	c *Client
}

// NewInventoryClient construye el cliente de inventario.
func NewInventoryClient(c *Client) *InventoryClient {
	return &InventoryClient{c: c}
}

type inventoryWire struct {
	ID           int64           `json:"id"`
	UnitID       int64           `json:"unit_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    string          `json:"created_at"`
}

func (w inventoryWire) toEntity() entity.InventoryItem {
	return entity.InventoryItem{
		ID:           w.ID,
		UnitID:       w.UnitID,
		Name:         w.Name,
		Description:  w.Description,
		Quantity:     w.Quantity,
		ReorderLevel: w.ReorderLevel,
		Price:        w.Price,
		CreatedAt:    parseTime(w.CreatedAt),
	}
}

// List trae el inventario visible para la sesión (el backend filtra por
// unidad cuando el rol es employee).
func (i *InventoryClient) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var wires []inventoryWire
	if err := i.c.doJSON(ctx, http.MethodGet, "/inventory", nil, &wires, true); err != nil {
		return nil, err
	}
	out := make([]entity.InventoryItem, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toEntity())
	}
	return out, nil
}

// Create da de alta un artículo. El precio viaja como número JSON; el backend
// no acepta strings en ese campo.
func (i *InventoryClient) Create(ctx context.Context, draft entity.InventoryDraft) (entity.InventoryItem, error) {
	body := map[string]any{
		"unit_id":       draft.UnitID,
		"name":          draft.Name,
		"description":   draft.Description,
		"quantity":      draft.Quantity,
		"reorder_level": draft.ReorderLevel,
		"price":         draft.Price.InexactFloat64(),
	}
	var w inventoryWire
	if err := i.c.doJSON(ctx, http.MethodPost, "/auth/admin/create-inventory", body, &w, true); err != nil {
		return entity.InventoryItem{}, err
	}
	return w.toEntity(), nil
}

// Update actualiza cantidades, nivel de reorden y/o precio.
func (i *InventoryClient) Update(ctx context.Context, id int64, patch entity.InventoryPatch) (entity.InventoryItem, error) {
	body := map[string]any{}
	if patch.Quantity != nil {
		body["quantity"] = *patch.Quantity
	}
	if patch.ReorderLevel != nil {
		body["reorder_level"] = *patch.ReorderLevel
	}
	if patch.Price != nil {
		body["price"] = patch.Price.InexactFloat64()
	}
	var w inventoryWire
	if err := i.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/inventory/%d", id), body, &w, true); err != nil {
		return entity.InventoryItem{}, err
	}
	return w.toEntity(), nil
}

// Delete elimina un artículo.
func (i *InventoryClient) Delete(ctx context.Context, id int64) error {
	return i.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/inventory/%d", id), nil, nil, true)
}

// Stats trae el agregado {total, bajo stock} calculado por el backend.
func (i *InventoryClient) Stats(ctx context.Context) (entity.InventoryStats, error) {
	var out struct {
		TotalInventory    int `json:"total_inventory"`
		LowInventoryCount int `json:"low_inventory_count"`
	}
	if err := i.c.doJSON(ctx, http.MethodGet, "/inventory/inventory-stats", nil, &out, true); err != nil {
		return entity.InventoryStats{}, err
	}
	return entity.InventoryStats{
		TotalInventory:    out.TotalInventory,
		LowInventoryCount: out.LowInventoryCount,
	}, nil
}

// ReportLow reporta manualmente stock bajo de un artículo.
func (i *InventoryClient) ReportLow(ctx context.Context, inventoryID int64) error {
	body := map[string]int64{"inventory_id": inventoryID}
	return i.c.doJSON(ctx, http.MethodPost, "/auth/admin/report-low-inventory", body, nil, true)
}
