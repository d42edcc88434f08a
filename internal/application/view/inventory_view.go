package view

import (
	"context"
	"fmt"

	"github.com/tu-usuario/maxhelp-console/internal/application/dto"
	"github.com/tu-usuario/maxhelp-console/internal/application/modal"
	"github.com/tu-usuario/maxhelp-console/internal/application/store"
	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/collaborator"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// InventoryStore alias del store concreto de inventario. El agregado local es
// solo el conteo cacheado; {total, bajo stock} viene del backend.
type InventoryStore = store.Store[entity.InventoryItem, entity.InventoryDraft, entity.InventoryPatch, int]

// InventoryView vista de inventario: CRUD, reporte manual de stock bajo y
// estadísticas del backend refrescadas en el mismo paso lógico que cada
// mutación confirmada.
type InventoryView struct {
	api    collaborator.InventoryAPI
	store  *InventoryStore
	modals *modal.Coordinator
	log    *logger.Logger
	stats  entity.InventoryStats
}

// NewInventoryView construye la vista sobre el puerto de inventario.
func NewInventoryView(api collaborator.InventoryAPI, log *logger.Logger) *InventoryView {
	return &InventoryView{
		api:    api,
		store:  store.New(store.Collaborator[entity.InventoryItem, entity.InventoryDraft, entity.InventoryPatch](api), store.Count[entity.InventoryItem], log),
		modals: modal.New(),
		log:    log,
	}
}

// Mount carga colección y estadísticas al entrar a la vista. Un fallo de la
// llamada de estadísticas no tira la vista: cae a agregado en cero.
func (v *InventoryView) Mount(ctx context.Context) ([]entity.InventoryItem, error) {
	v.modals.Close()
	items, err := v.store.List(ctx)
	if err != nil {
		return nil, err
	}
	v.refreshStats(ctx)
	return items, nil
}

// Unmount descarta el estado de la vista.
func (v *InventoryView) Unmount() {
	v.modals.Close()
	v.store.Reset()
	v.stats = entity.InventoryStats{}
}

// Snapshot colección cacheada y su conteo local.
func (v *InventoryView) Snapshot() ([]entity.InventoryItem, int) {
	return v.store.Snapshot()
}

// Stats último agregado {total, bajo stock} informado por el backend.
func (v *InventoryView) Stats() entity.InventoryStats {
	return v.stats
}

// Modal estado vigente del coordinador de modales.
func (v *InventoryView) Modal() modal.State {
	return v.modals.Current()
}

// BeginCreate abre el formulario de alta.
func (v *InventoryView) BeginCreate() {
	v.modals.OpenCreate()
}

// BeginUpdate abre el formulario de edición del artículo dado.
func (v *InventoryView) BeginUpdate(id int64) (entity.InventoryItem, error) {
	item, ok := v.store.Get(id)
	if !ok {
		return entity.InventoryItem{}, fmt.Errorf("editar id %d: %w", id, domain.ErrStaleEntity)
	}
	v.modals.OpenUpdate(id)
	return item, nil
}

// BeginDelete abre la confirmación de borrado del artículo dado.
func (v *InventoryView) BeginDelete(id int64) {
	v.modals.OpenDelete(id)
}

// BeginReport abre el formulario de reporte de stock bajo.
func (v *InventoryView) BeginReport() {
	v.modals.OpenReport()
}

// Cancel cierra el modal activo sin mutar nada.
func (v *InventoryView) Cancel() {
	v.modals.Close()
}

// SubmitCreate valida y crea el artículo; refresca las estadísticas del
// backend en el mismo paso lógico.
func (v *InventoryView) SubmitCreate(ctx context.Context, form dto.InventoryForm) (entity.InventoryItem, error) {
	if v.modals.Current().Kind != modal.Creating {
		v.modals.OpenCreate()
	}
	if err := form.ValidateCreate(); err != nil {
		return entity.InventoryItem{}, err
	}
	created, err := v.store.Create(ctx, form.Draft())
	if err != nil {
		return entity.InventoryItem{}, err
	}
	v.refreshStats(ctx)
	v.modals.Close()
	return created, nil
}

// SubmitUpdate valida y actualiza el artículo objetivo del modal de edición.
func (v *InventoryView) SubmitUpdate(ctx context.Context, form dto.InventoryForm) (entity.InventoryItem, error) {
	st := v.modals.Current()
	if st.Kind != modal.Updating {
		return entity.InventoryItem{}, fmt.Errorf("%w: no hay edición activa", domain.ErrValidation)
	}
	if err := form.ValidateUpdate(); err != nil {
		return entity.InventoryItem{}, err
	}
	updated, err := v.store.Update(ctx, st.TargetID, form.Patch())
	if err != nil {
		return entity.InventoryItem{}, err
	}
	v.refreshStats(ctx)
	v.modals.Close()
	return updated, nil
}

// ConfirmDelete ejecuta el borrado confirmado; en fallo el modal queda
// abierto para reintentar.
func (v *InventoryView) ConfirmDelete(ctx context.Context) error {
	st := v.modals.Current()
	if st.Kind != modal.ConfirmingDelete {
		return fmt.Errorf("%w: no hay borrado pendiente de confirmar", domain.ErrValidation)
	}
	if err := v.store.Remove(ctx, st.TargetID); err != nil {
		return err
	}
	v.refreshStats(ctx)
	v.modals.Close()
	return nil
}

// SubmitReport reporta stock bajo del artículo dado. Exige el modal de
// reporte activo y el artículo cacheado.
func (v *InventoryView) SubmitReport(ctx context.Context, inventoryID int64) error {
	if v.modals.Current().Kind != modal.Reporting {
		return fmt.Errorf("%w: no hay reporte activo", domain.ErrValidation)
	}
	if _, ok := v.store.Get(inventoryID); !ok {
		return fmt.Errorf("reportar id %d: %w", inventoryID, domain.ErrStaleEntity)
	}
	if err := v.api.ReportLow(ctx, inventoryID); err != nil {
		return err
	}
	v.modals.Close()
	return nil
}

// refreshStats consulta el agregado del backend. Un fallo aquí no revierte la
// mutación que lo disparó: se conserva el último agregado conocido y se deja
// constancia en el log.
func (v *InventoryView) refreshStats(ctx context.Context) {
	stats, err := v.api.Stats(ctx)
	if err != nil {
		v.log.Warn().Err(err).Msg("refrescar estadísticas de inventario")
		return
	}
	v.stats = stats
}
