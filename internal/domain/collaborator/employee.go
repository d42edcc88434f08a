package collaborator

import (
	"context"

	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
)

// EmployeeAPI puerto CRUD de empleados más estadísticas del negocio (solo admin).
type EmployeeAPI interface {
	List(ctx context.Context) ([]entity.Employee, error)
	Create(ctx context.Context, draft entity.EmployeeDraft) (entity.Employee, error)
	Update(ctx context.Context, id int64, patch entity.EmployeePatch) (entity.Employee, error)
	Delete(ctx context.Context, id int64) error
	// ListStats devuelve los conteos agregados del negocio calculados por el backend.
	ListStats(ctx context.Context) (entity.BusinessStats, error)
	// CreateBusinessUnit registra una unidad de negocio (append-only desde la consola).
	CreateBusinessUnit(ctx context.Context, draft entity.BusinessUnitDraft) (entity.BusinessUnit, error)
}
