// Package session es el único dueño de la credencial persistida de la consola.
// Ningún otro componente lee o escribe el estado de sesión directamente, y
// ninguno debe cachear la Session más allá de una llamada a Get: cada
// navegación protegida vuelve a consultar, para no actuar sobre una sesión
// invalidada por un logout concurrente.
package session

import (
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// Record los tres valores que se persisten juntos: token, role y username.
// Se guardan y se borran como una unidad.
type Record struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Storage puerto de persistencia local de la sesión. La implementación
// concreta vive en internal/infrastructure/localstore.
type Storage interface {
	// Load devuelve el registro persistido; ok=false si no hay ninguno.
	Load() (rec Record, ok bool, err error)
	// Save persiste el registro de forma síncrona.
	Save(rec Record) error
	// Clear elimina el registro completo.
	Clear() error
}

// Store gestiona el ciclo de vida de la Session sobre un Storage inyectado.
type Store struct {
	storage Storage
	log     *logger.Logger
}

// NewStore construye el SessionStore.
func NewStore(storage Storage, log *logger.Logger) *Store {
	return &Store{storage: storage, log: log}
}

// Get devuelve la sesión vigente o nil si no hay ninguna. Es idempotente y
// sin efectos visibles, con una excepción deliberada: un registro parcial
// (token sin rol, por ejemplo) se trata como sesión inválida y se purga.
func (s *Store) Get() *entity.Session {
	rec, ok, err := s.storage.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("leer sesión persistida")
		return nil
	}
	if !ok {
		return nil
	}
	sess := &entity.Session{Token: rec.Token, Role: rec.Role, Username: rec.Username}
	if !sess.Valid() {
		// Presencia parcial: restos de un logout interrumpido. Se purga.
		s.log.Warn().Msg("sesión parcial encontrada; se descarta")
		_ = s.storage.Clear()
		return nil
	}
	return sess
}

// Set persiste la sesión de forma síncrona.
func (s *Store) Set(sess entity.Session) error {
	return s.storage.Save(Record{Token: sess.Token, Role: sess.Role, Username: sess.Username})
}

// Clear elimina la sesión. Tras Clear, Get devuelve nil hasta el próximo Set.
func (s *Store) Clear() error {
	return s.storage.Clear()
}
