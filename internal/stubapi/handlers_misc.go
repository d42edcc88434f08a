package stubapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// listFeedbacks devuelve los comentarios de clientes.
func (s *Server) listFeedbacks(c *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return c.JSON(s.state.feedbacks)
}

type notificationWire struct {
	ID                int64           `json:"id"`
	InventoryItemName string          `json:"inventory_item_name"`
	Message           string          `json:"message"`
	BusinessUnitName  string          `json:"business_unit_name"`
	Location          string          `json:"location"`
	Quantity          int             `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	TotalEmployees    int             `json:"total_employees"`
}

// lowInventoryNotifications arma las alertas de stock bajo: todo artículo por
// debajo del umbral o reportado manualmente, enriquecido con su unidad y el
// total de empleados de esa unidad.
func (s *Server) lowInventoryNotifications(c *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := make([]notificationWire, 0)
	for _, it := range s.state.inventory {
		if it.Quantity >= lowInventoryThreshold && !s.state.reported[it.ID] {
			continue
		}
		unitName, location := "Unknown", "Unknown"
		if bu := s.state.findUnit(it.UnitID); bu != nil {
			unitName, location = bu.Name, bu.Location
		}
		out = append(out, notificationWire{
			ID:                it.ID,
			InventoryItemName: it.Name,
			Message:           fmt.Sprintf("Inventory for item '%s' is below the reorder level. Current quantity: %d", it.Name, it.Quantity),
			BusinessUnitName:  unitName,
			Location:          location,
			Quantity:          it.Quantity,
			Price:             it.Price,
			TotalEmployees:    s.state.employeesInUnit(it.UnitID),
		})
	}
	return c.JSON(out)
}
