package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Toda falla del núcleo se resuelve a uno de estos valores: ninguna es fatal
// para el proceso, el llamador decide cómo presentarla.
var (
	// ErrUnauthenticated no hay sesión o el backend la rechazó; la navegación debe redirigir al login.
	ErrUnauthenticated = errors.New("sesión ausente o inválida")
	// ErrInvalidCredentials señal opaca de login fallido; no se expone más detalle.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrValidation falla de validación local, previa a la red; el modal queda abierto.
	ErrValidation = errors.New("entrada inválida")
	// ErrCollaboratorRejected el backend respondió con error; la caché queda como antes de la llamada.
	ErrCollaboratorRejected = errors.New("el servicio externo rechazó la operación")
	// ErrStaleEntity el objetivo de la mutación no está en la caché local; hay que re-listar.
	ErrStaleEntity = errors.New("entidad ausente de la caché local")
)
