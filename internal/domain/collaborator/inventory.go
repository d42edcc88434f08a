package collaborator

import (
	"context"

	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// InventoryAPI puerto CRUD de inventario. El agregado {total, bajo stock}
// lo calcula el backend; la consola no lo deriva localmente.
type InventoryAPI interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Create(ctx context.Context, draft entity.InventoryDraft) (entity.InventoryItem, error)
	Update(ctx context.Context, id int64, patch entity.InventoryPatch) (entity.InventoryItem, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (entity.InventoryStats, error)
	// ReportLow reporta manualmente un artículo con stock bajo para que el
	// backend genere la notificación correspondiente.
	ReportLow(ctx context.Context, inventoryID int64) error
}
