// Package notification implementa el feed de alertas de inventario bajo:
// una consulta por entrada a la vista, sin polling ni suscripción.
package notification

import (
	"context"

	"github.com/tu-usuario/maxhelp-console/internal/domain/collaborator"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// Announcer recibe el total de notificaciones, exactamente una vez por
// entrada a la vista. En la consola es el aviso tipo toast.
type Announcer func(total int)

// Feed consulta las alertas al entrar a la vista y anuncia el total una sola
// vez por entrada. Volver a entrar (Enter tras Leave) reinicia el anuncio y
// dispara una consulta nueva; las mutaciones en otras vistas no lo hacen.
type Feed struct {
	api        collaborator.NotificationAPI
	announce   Announcer
	log        *logger.Logger
	announced  bool
	items      []entity.Notification
}

// NewFeed construye el feed. announce puede ser nil si no interesa el aviso.
func NewFeed(api collaborator.NotificationAPI, announce Announcer, log *logger.Logger) *Feed {
	return &Feed{api: api, announce: announce, log: log}
}

// Enter se invoca al navegar a la vista: trae las notificaciones y anuncia el
// total si aún no se anunció en esta entrada.
func (f *Feed) Enter(ctx context.Context) ([]entity.Notification, error) {
	items, err := f.api.LowInventory(ctx)
	if err != nil {
		return nil, err
	}
	f.items = items
	if !f.announced {
		f.announced = true
		if f.announce != nil {
			f.announce(len(items))
		}
	}
	return items, nil
}

// Leave se invoca al salir de la vista; reinicia la marca de anunciado para
// la próxima entrada.
func (f *Feed) Leave() {
	f.announced = false
	f.items = nil
}

// Items últimas notificaciones traídas en esta entrada.
func (f *Feed) Items() []entity.Notification {
	return f.items
}
