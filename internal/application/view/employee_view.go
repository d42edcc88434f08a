// Package view implementa las vistas de la consola: cada una posee su propio
// ResourceStore (no compartido entre vistas; se re-lista al montar) y su
// coordinador de modales. La única pieza mutable compartida entre vistas es
// el SessionStore.
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

// EmployeeStore alias del store concreto de empleados con conteo por género.
type EmployeeStore = store.Store[entity.Employee, entity.EmployeeDraft, entity.EmployeePatch, entity.GenderCount]

// EmployeeView vista de gestión de empleados: listado, alta, edición,
// borrado con confirmación y conteo por género pareado con la colección.
type EmployeeView struct {
	store  *EmployeeStore
	modals *modal.Coordinator
	log    *logger.Logger
}

// NewEmployeeView construye la vista sobre el puerto de empleados.
func NewEmployeeView(api collaborator.EmployeeAPI, log *logger.Logger) *EmployeeView {
	return &EmployeeView{
		store:  store.New(store.Collaborator[entity.Employee, entity.EmployeeDraft, entity.EmployeePatch](api), store.ProjectGender, log),
		modals: modal.New(),
		log:    log,
	}
}

// Mount carga la colección completa al entrar a la vista.
func (v *EmployeeView) Mount(ctx context.Context) ([]entity.Employee, error) {
	v.modals.Close()
	return v.store.List(ctx)
}

// Unmount descarta el estado de la vista; una respuesta en vuelo que llegue
// después no se aplica.
func (v *EmployeeView) Unmount() {
	v.modals.Close()
	v.store.Reset()
}

// Snapshot colección y conteo por género, tomados como un par consistente.
func (v *EmployeeView) Snapshot() ([]entity.Employee, entity.GenderCount) {
	return v.store.Snapshot()
}

// Modal estado vigente del coordinador de modales.
func (v *EmployeeView) Modal() modal.State {
	return v.modals.Current()
}

// BeginCreate abre el formulario de alta (cerrando cualquier modal activo).
func (v *EmployeeView) BeginCreate() {
	v.modals.OpenCreate()
}

// BeginUpdate abre el formulario de edición del empleado dado. Si el id no
// está cacheado devuelve ErrStaleEntity: hay que re-montar antes de editar.
func (v *EmployeeView) BeginUpdate(id int64) (entity.Employee, error) {
	emp, ok := v.store.Get(id)
	if !ok {
		return entity.Employee{}, fmt.Errorf("editar id %d: %w", id, domain.ErrStaleEntity)
	}
	v.modals.OpenUpdate(id)
	return emp, nil
}

// BeginDelete abre la confirmación de borrado del empleado dado.
func (v *EmployeeView) BeginDelete(id int64) {
	v.modals.OpenDelete(id)
}

// Cancel cierra el modal activo sin mutar nada.
func (v *EmployeeView) Cancel() {
	v.modals.Close()
}

// SubmitCreate valida el formulario y crea el empleado. La validación corre
// antes de tocar la red; si falla, el modal queda abierto con el error. El
// modal se cierra solo en éxito confirmado.
func (v *EmployeeView) SubmitCreate(ctx context.Context, form dto.EmployeeForm) (entity.Employee, error) {
	if v.modals.Current().Kind != modal.Creating {
		v.modals.OpenCreate()
	}
	if err := form.ValidateCreate(); err != nil {
		return entity.Employee{}, err
	}
	created, err := v.store.Create(ctx, form.Draft())
	if err != nil {
		return entity.Employee{}, err
	}
	v.modals.Close()
	return created, nil
}

// SubmitUpdate valida el formulario (password opcional) y actualiza el
// empleado objetivo del modal de edición.
func (v *EmployeeView) SubmitUpdate(ctx context.Context, form dto.EmployeeForm) (entity.Employee, error) {
	st := v.modals.Current()
	if st.Kind != modal.Updating {
		return entity.Employee{}, fmt.Errorf("%w: no hay edición activa", domain.ErrValidation)
	}
	if err := form.ValidateUpdate(); err != nil {
		return entity.Employee{}, err
	}
	updated, err := v.store.Update(ctx, st.TargetID, form.Patch())
	if err != nil {
		return entity.Employee{}, err
	}
	v.modals.Close()
	return updated, nil
}

// ConfirmDelete ejecuta el borrado confirmado. En fallo el modal permanece
// abierto, de modo que la acción sea reintentable; la caché retiene el
// elemento.
func (v *EmployeeView) ConfirmDelete(ctx context.Context) error {
	st := v.modals.Current()
	if st.Kind != modal.ConfirmingDelete {
		return fmt.Errorf("%w: no hay borrado pendiente de confirmar", domain.ErrValidation)
	}
	if err := v.store.Remove(ctx, st.TargetID); err != nil {
		return err
	}
	v.modals.Close()
	return nil
}
