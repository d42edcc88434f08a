package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/collaborator"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// DashboardSummary lo que muestra el tablero principal: conteos del negocio,
// agregado de inventario y comentarios recientes.
type DashboardSummary struct {
	Business  entity.BusinessStats
	Inventory entity.InventoryStats
	Feedbacks []entity.Feedback
}

// DashboardView tablero de resumen. Solo lecturas; cada colaborador que
// falla cae a su valor cero en lugar de tirar la vista completa.
type DashboardView struct {
	employees collaborator.EmployeeAPI
	inventory collaborator.InventoryAPI
	feedback  collaborator.FeedbackAPI
	log       *logger.Logger
}

// NewDashboardView construye el tablero sobre los puertos de solo lectura.
func NewDashboardView(employees collaborator.EmployeeAPI, inventory collaborator.InventoryAPI, feedback collaborator.FeedbackAPI, log *logger.Logger) *DashboardView {
	return &DashboardView{employees: employees, inventory: inventory, feedback: feedback, log: log}
}

// Mount reúne el resumen. Nunca devuelve error: cada fuente degradada queda
// en cero y se registra.
func (v *DashboardView) Mount(ctx context.Context) DashboardSummary {
	var sum DashboardSummary

	if stats, err := v.employees.ListStats(ctx); err != nil {
		v.log.Warn().Err(err).Msg("estadísticas del negocio no disponibles")
	} else {
		sum.Business = stats
	}

	if stats, err := v.inventory.Stats(ctx); err != nil {
		v.log.Warn().Err(err).Msg("estadísticas de inventario no disponibles")
	} else {
		sum.Inventory = stats
	}

	if fbs, err := v.feedback.List(ctx); err != nil {
		v.log.Warn().Err(err).Msg("feedbacks no disponibles")
	} else {
		sum.Feedbacks = fbs
	}

	return sum
}

// CreateUnit registra una unidad de negocio nueva desde el tablero. Las
// unidades son append-only para la consola: no hay edición ni borrado.
func (v *DashboardView) CreateUnit(ctx context.Context, name, location string) (entity.BusinessUnit, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return entity.BusinessUnit{}, fmt.Errorf("%w: name y location son requeridos", domain.ErrValidation)
	}
	bu, err := v.employees.CreateBusinessUnit(ctx, entity.BusinessUnitDraft{Name: name, Location: location})
	if err != nil {
		return entity.BusinessUnit{}, err
	}
	v.log.Info().Int64("id", bu.ID).Str("name", bu.Name).Msg("unidad de negocio creada")
	return bu, nil
}
