package modal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/maxhelp-console/internal/application/modal"
)

func TestCoordinator_EstadoInicialClosed(t *testing.T) {
	c := modal.New()
	assert.Equal(t, modal.State{Kind: modal.Closed}, c.Current())
}

func TestCoordinator_AbrirYCerrar(t *testing.T) {
	c := modal.New()

	c.OpenCreate()
	assert.Equal(t, modal.Creating, c.Current().Kind)

	c.Close()
	assert.Equal(t, modal.Closed, c.Current().Kind)

	c.OpenUpdate(7)
	assert.Equal(t, modal.State{Kind: modal.Updating, TargetID: 7}, c.Current())

	c.OpenDelete(9)
	assert.Equal(t, modal.State{Kind: modal.ConfirmingDelete, TargetID: 9}, c.Current())

	c.OpenReport()
	assert.Equal(t, modal.Reporting, c.Current().Kind)
}

// Pedir un modal con otro activo: gana el último pedido, nunca hay dos.
func TestCoordinator_GanaElUltimoPedido(t *testing.T) {
	c := modal.New()

	c.OpenDelete(3)
	c.OpenUpdate(5)

	st := c.Current()
	assert.Equal(t, modal.Updating, st.Kind,
		"el pedido de edición reemplaza la confirmación de borrado")
	assert.Equal(t, int64(5), st.TargetID,
		"el objetivo del modal anterior no debe filtrarse al nuevo")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "closed", modal.Closed.String())
	assert.Equal(t, "creating", modal.Creating.String())
	assert.Equal(t, "updating", modal.Updating.String())
	assert.Equal(t, "confirming-delete", modal.ConfirmingDelete.String())
	assert.Equal(t, "reporting", modal.Reporting.String())
}
