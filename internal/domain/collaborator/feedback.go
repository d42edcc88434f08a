package collaborator

import (
	"context"

	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// FeedbackAPI puerto de solo lectura de comentarios de clientes.
type FeedbackAPI interface {
	List(ctx context.Context) ([]entity.Feedback, error)
}

// NotificationAPI puerto de solo lectura de alertas de inventario bajo.
// Se consulta una vez por entrada a la vista; no hay polling ni push.
type NotificationAPI interface {
	LowInventory(ctx context.Context) ([]entity.Notification, error)
}
