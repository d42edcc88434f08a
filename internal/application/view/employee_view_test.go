package view_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/maxhelp-console/internal/application/dto"
	"github.com/tu-usuario/maxhelp-console/internal/application/modal"
	"github.com/tu-usuario/maxhelp-console/internal/application/view"
	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto de empleados
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeAPI struct {
	items  []entity.Employee
	nextID int64

	createErr error
	updateErr error
	deleteErr error
	unitErr   error
	units     []entity.BusinessUnitDraft
	callsNet  int // invocaciones que tocan la "red"
}

func (f *fakeEmployeeAPI) List(_ context.Context) ([]entity.Employee, error) {
	f.callsNet++
	out := make([]entity.Employee, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeEmployeeAPI) Create(_ context.Context, draft entity.EmployeeDraft) (entity.Employee, error) {
	f.callsNet++
	if f.createErr != nil {
		return entity.Employee{}, f.createErr
	}
	f.nextID++
	e := entity.Employee{ID: f.nextID, Name: draft.Name, Email: draft.Email,
		Role: draft.Role, Gender: draft.Gender, UnitID: draft.UnitID}
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeEmployeeAPI) Update(_ context.Context, id int64, patch entity.EmployeePatch) (entity.Employee, error) {
	f.callsNet++
	if f.updateErr != nil {
		return entity.Employee{}, f.updateErr
	}
	for i, it := range f.items {
		if it.ID == id {
			if patch.Name != nil {
				f.items[i].Name = *patch.Name
			}
			if patch.Gender != nil {
				f.items[i].Gender = *patch.Gender
			}
			return f.items[i], nil
		}
	}
	return entity.Employee{}, errors.New("no existe")
}

func (f *fakeEmployeeAPI) Delete(_ context.Context, id int64) error {
	f.callsNet++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("no existe")
}

func (f *fakeEmployeeAPI) ListStats(_ context.Context) (entity.BusinessStats, error) {
	return entity.BusinessStats{TotalEmployees: len(f.items), TotalBusinessUnits: 4}, nil
}

func (f *fakeEmployeeAPI) CreateBusinessUnit(_ context.Context, draft entity.BusinessUnitDraft) (entity.BusinessUnit, error) {
	f.callsNet++
	if f.unitErr != nil {
		return entity.BusinessUnit{}, f.unitErr
	}
	f.units = append(f.units, draft)
	return entity.BusinessUnit{ID: 99, Name: draft.Name, Location: draft.Location}, nil
}

func seededEmployeeAPI() *fakeEmployeeAPI {
	return &fakeEmployeeAPI{items: []entity.Employee{
		{ID: 1, Name: "Ada Obi", Email: "ada@maxhelp.com", Role: entity.RoleEmployee, Gender: entity.GenderFemale, UnitID: 2},
		{ID: 2, Name: "Chuks Eze", Email: "chuks@maxhelp.com", Role: entity.RoleEmployee, Gender: entity.GenderMale, UnitID: 1},
	}, nextID: 2}
}

func validForm() dto.EmployeeForm {
	return dto.EmployeeForm{
		Name: "Bola Ade", Email: "bola@maxhelp.com", Role: entity.RoleEmployee,
		Gender: entity.GenderFemale, UnitID: 3, Password: "segura-123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo alta
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeView_AltaExitosaCierraModal(t *testing.T) {
	v := view.NewEmployeeView(seededEmployeeAPI(), logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	v.BeginCreate()
	created, err := v.SubmitCreate(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	assert.Equal(t, modal.Closed, v.Modal().Kind, "el modal se cierra solo en éxito confirmado")
	items, gc := v.Snapshot()
	assert.Len(t, items, 3)
	assert.Equal(t, entity.GenderCount{Male: 1, Female: 2}, gc)
}

func TestEmployeeView_ValidacionFallida_SinRedYModalAbierto(t *testing.T) {
	api := seededEmployeeAPI()
	v := view.NewEmployeeView(api, logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)
	callsAfterMount := api.callsNet

	v.BeginCreate()
	form := validForm()
	form.Password = "corta"
	_, err = v.SubmitCreate(context.Background(), form)
	require.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, callsAfterMount, api.callsNet, "la validación corre antes de tocar la red")
	assert.Equal(t, modal.Creating, v.Modal().Kind, "el modal queda abierto con el error")
}

func TestEmployeeView_RechazoDelBackend_ModalAbierto(t *testing.T) {
	api := seededEmployeeAPI()
	api.createErr = domain.ErrCollaboratorRejected
	v := view.NewEmployeeView(api, logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	v.BeginCreate()
	_, err = v.SubmitCreate(context.Background(), validForm())
	require.ErrorIs(t, err, domain.ErrCollaboratorRejected)

	assert.Equal(t, modal.Creating, v.Modal().Kind)
	items, _ := v.Snapshot()
	assert.Len(t, items, 2, "el alta rechazada no aparece en la colección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo edición
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeView_EdicionExitosa(t *testing.T) {
	v := view.NewEmployeeView(seededEmployeeAPI(), logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	prev, err := v.BeginUpdate(1)
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", prev.Name, "el formulario se precarga con los valores vigentes")
	assert.Equal(t, modal.State{Kind: modal.Updating, TargetID: 1}, v.Modal())

	form := validForm()
	form.Password = "" // sin cambio de contraseña
	updated, err := v.SubmitUpdate(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "Bola Ade", updated.Name)
	assert.Equal(t, modal.Closed, v.Modal().Kind)
}

func TestEmployeeView_EditarIDNoCacheado_StaleEntity(t *testing.T) {
	api := seededEmployeeAPI()
	v := view.NewEmployeeView(api, logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)
	callsAfterMount := api.callsNet

	_, err = v.BeginUpdate(77)
	require.ErrorIs(t, err, domain.ErrStaleEntity)
	assert.Equal(t, modal.Closed, v.Modal().Kind, "sin elemento no se abre la edición")
	assert.Equal(t, callsAfterMount, api.callsNet, "el fallo es local, sin red")
}

func TestEmployeeView_SubmitSinEdicionActiva_Validation(t *testing.T) {
	v := view.NewEmployeeView(seededEmployeeAPI(), logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	_, err = v.SubmitUpdate(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeView_BorradoConfirmado(t *testing.T) {
	v := view.NewEmployeeView(seededEmployeeAPI(), logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	v.BeginDelete(2)
	require.NoError(t, v.ConfirmDelete(context.Background()))

	assert.Equal(t, modal.Closed, v.Modal().Kind)
	items, gc := v.Snapshot()
	assert.Len(t, items, 1)
	assert.Equal(t, entity.GenderCount{Female: 1}, gc)
}

func TestEmployeeView_BorradoFallido_ModalAbiertoYElementoRetenido(t *testing.T) {
	api := seededEmployeeAPI()
	api.deleteErr = domain.ErrCollaboratorRejected
	v := view.NewEmployeeView(api, logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	v.BeginDelete(2)
	err = v.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, domain.ErrCollaboratorRejected)

	assert.Equal(t, modal.State{Kind: modal.ConfirmingDelete, TargetID: 2}, v.Modal(),
		"el modal de confirmación queda abierto para reintentar")
	items, _ := v.Snapshot()
	assert.Len(t, items, 2, "el elemento permanece hasta que el backend confirme")

	// Reintento tras resolverse el backend
	api.deleteErr = nil
	require.NoError(t, v.ConfirmDelete(context.Background()))
	items, _ = v.Snapshot()
	assert.Len(t, items, 1)
}

func TestEmployeeView_CancelCierraSinMutar(t *testing.T) {
	v := view.NewEmployeeView(seededEmployeeAPI(), logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)

	v.BeginDelete(1)
	v.Cancel()
	assert.Equal(t, modal.Closed, v.Modal().Kind)
	items, _ := v.Snapshot()
	assert.Len(t, items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Unmount
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeView_UnmountDescartaEstado(t *testing.T) {
	v := view.NewEmployeeView(seededEmployeeAPI(), logger.Nop())
	_, err := v.Mount(context.Background())
	require.NoError(t, err)
	v.BeginDelete(1)

	v.Unmount()
	assert.Equal(t, modal.Closed, v.Modal().Kind)
	items, gc := v.Snapshot()
	assert.Empty(t, items)
	assert.Equal(t, entity.GenderCount{}, gc)
}
