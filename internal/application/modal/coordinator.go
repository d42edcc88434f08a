// Package modal coordina los modales de una vista de recurso: como mucho uno
// de {formulario de alta, formulario de edición, confirmación de borrado,
// formulario de reporte} visible a la vez.
package modal

import "fmt"

// Kind estados posibles del coordinador.
type Kind int

const (
	Closed Kind = iota
	Creating
	Updating
	ConfirmingDelete
	Reporting
)

// String para logs y mensajes.
func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case Creating:
		return "creating"
	case Updating:
		return "updating"
	case ConfirmingDelete:
		return "confirming-delete"
	case Reporting:
		return "reporting"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State estado etiquetado del coordinador. TargetID solo tiene significado
// en Updating y ConfirmingDelete.
type State struct {
	Kind     Kind
	TargetID int64
}

// Coordinator máquina de estados de modales de una vista. Invariante: como
// mucho un estado distinto de Closed a la vez; abrir un segundo modal con uno
// activo primero cierra el primero (gana el último pedido). Eso es lo que
// impide dos mutaciones en vuelo contra la misma vista.
//
// No es seguro para uso concurrente: pertenece a una sola vista dentro del
// hilo de eventos de la consola.
type Coordinator struct {
	state State
}

// New construye el coordinador en estado Closed.
func New() *Coordinator {
	return &Coordinator{}
}

// Current estado vigente.
func (c *Coordinator) Current() State {
	return c.state
}

// OpenCreate muestra el formulario de alta.
func (c *Coordinator) OpenCreate() {
	c.state = State{Kind: Creating}
}

// OpenUpdate muestra el formulario de edición para la entidad dada.
func (c *Coordinator) OpenUpdate(targetID int64) {
	c.state = State{Kind: Updating, TargetID: targetID}
}

// OpenDelete muestra la confirmación de borrado para la entidad dada.
func (c *Coordinator) OpenDelete(targetID int64) {
	c.state = State{Kind: ConfirmingDelete, TargetID: targetID}
}

// OpenReport muestra el formulario de reporte.
func (c *Coordinator) OpenReport() {
	c.state = State{Kind: Reporting}
}

// Close cierra el modal activo. Se invoca en cancelación explícita o en éxito
// confirmado de la mutación; un fallo deja el modal abierto para reintentar.
func (c *Coordinator) Close() {
	c.state = State{Kind: Closed}
}
