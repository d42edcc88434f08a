// Package store implementa la caché genérica en memoria de una colección de
// recursos (empleados, inventario) con mutaciones CRUD contra el backend y
// su agregado derivado, mantenidos como un solo paso lógico.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// Entity requisito mínimo de un recurso cacheable: identidad asignada por el
// backend.
type Entity interface {
	EntityID() int64
}

// Collaborator puerto CRUD que el store consume. Los puertos concretos de
// collaborator (EmployeeAPI, InventoryAPI) lo satisfacen por subconjunto de
// métodos.
type Collaborator[T Entity, D any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id int64, patch P) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Store caché de una colección de T con agregado A derivado. Reglas:
//
//   - List reemplaza la caché completa.
//   - Create añade al final solo tras confirmación del backend; en fallo la
//     caché no se toca.
//   - Update no es optimista: espera la respuesta autoritativa y reemplaza
//     el elemento en su posición. Si el id no está cacheado falla con
//     ErrStaleEntity sin tocar la red.
//   - Remove elimina solo tras confirmación; en fallo el elemento permanece.
//   - El orden de la colección es orden de inserción; update y remove
//     preservan el orden relativo del resto.
//
// El agregado se recalcula bajo el mismo mutex que cada mutación de la caché:
// un lector de Snapshot nunca observa la colección nueva con el agregado viejo.
// El mutex no se retiene durante las llamadas de red.
type Store[T Entity, D any, P any, A any] struct {
	api     Collaborator[T, D, P]
	project func([]T) A
	log     *logger.Logger

	mu    sync.Mutex
	items []T
	agg   A
	epoch uint64
}

// New construye el store. project es la función pura de proyección del
// agregado; se aplica sobre el snapshot completo en cada mutación confirmada.
func New[T Entity, D any, P any, A any](api Collaborator[T, D, P], project func([]T) A, log *logger.Logger) *Store[T, D, P, A] {
	return &Store[T, D, P, A]{api: api, project: project, log: log}
}

// List trae la colección completa del backend y reemplaza la caché local.
// Reemplazar la caché invalida toda respuesta en vuelo de mutaciones previas.
func (s *Store[T, D, P, A]) List(ctx context.Context) ([]T, error) {
	items, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = items
	s.agg = s.project(s.items)
	s.epoch++
	s.mu.Unlock()
	s.log.Debug().Int("count", len(items)).Msg("colección recargada")
	return s.copyItems(), nil
}

// Reset vacía la caché. Se invoca al desmontar la vista dueña: cualquier
// respuesta de red que llegue después se descarta en vez de mutar el estado
// de una vista que ya no existe.
func (s *Store[T, D, P, A]) Reset() {
	s.mu.Lock()
	s.items = nil
	s.agg = s.project(s.items)
	s.epoch++
	s.mu.Unlock()
}

// Create envía el borrador al backend y, solo en éxito, añade la entidad
// devuelta (con id asignado por el servidor) al final de la caché.
func (s *Store[T, D, P, A]) Create(ctx context.Context, draft D) (T, error) {
	epoch := s.currentEpoch()
	created, err := s.api.Create(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	if s.epoch == epoch {
		s.items = append(s.items, created)
		s.agg = s.project(s.items)
	}
	s.mu.Unlock()
	s.log.Debug().Int64("id", created.EntityID()).Msg("entidad creada")
	return created, nil
}

// Update espera la respuesta autoritativa del backend y reemplaza el elemento
// cacheado con ese id, en su misma posición. Sin elemento cacheado, falla con
// ErrStaleEntity antes de tocar la red: el llamador debe re-listar.
func (s *Store[T, D, P, A]) Update(ctx context.Context, id int64, patch P) (T, error) {
	var zero T
	s.mu.Lock()
	idx := s.indexLocked(id)
	epoch := s.epoch
	s.mu.Unlock()
	if idx < 0 {
		return zero, fmt.Errorf("actualizar id %d: %w", id, domain.ErrStaleEntity)
	}

	updated, err := s.api.Update(ctx, id, patch)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	// El índice puede haber cambiado mientras la llamada estaba en vuelo;
	// se vuelve a localizar por id. Si la caché fue reemplazada o el elemento
	// ya no está, la respuesta se descarta sin mutar la caché.
	if idx := s.indexLocked(id); idx >= 0 && s.epoch == epoch {
		s.items[idx] = updated
		s.agg = s.project(s.items)
	}
	s.mu.Unlock()
	return updated, nil
}

// Remove borra en el backend y, solo en éxito, quita el elemento de la caché.
// En fallo la caché retiene el elemento y el error se propaga: la confirmación
// de borrado debe quedar reabrible para reintentar.
func (s *Store[T, D, P, A]) Remove(ctx context.Context, id int64) error {
	epoch := s.currentEpoch()
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	if idx := s.indexLocked(id); idx >= 0 && s.epoch == epoch {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		s.agg = s.project(s.items)
	}
	s.mu.Unlock()
	s.log.Debug().Int64("id", id).Msg("entidad eliminada")
	return nil
}

// Snapshot devuelve una copia de la colección y su agregado pareado, tomados
// bajo el mismo lock: nunca una colección nueva con agregado viejo.
func (s *Store[T, D, P, A]) Snapshot() ([]T, A) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, s.agg
}

// Len tamaño actual de la caché.
func (s *Store[T, D, P, A]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get devuelve el elemento cacheado con ese id.
func (s *Store[T, D, P, A]) Get(id int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.items[idx], true
	}
	var zero T
	return zero, false
}

func (s *Store[T, D, P, A]) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

func (s *Store[T, D, P, A]) indexLocked(id int64) int {
	for i, it := range s.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T, D, P, A]) copyItems() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
