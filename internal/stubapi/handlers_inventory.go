package stubapi

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type inventoryBody struct {
	UnitID       int64    `json:"unit_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorder_level"`
	Price        *float64 `json:"price"`
}

// createInventory da de alta un artículo (solo admin).
func (s *Server) createInventory(c *fiber.Ctx) error {
	var in inventoryBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}
	if in.Name == "" || in.UnitID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "name and unit_id are required"})
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if s.state.findUnit(in.UnitID) == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Business unit not found"})
	}
	item := inventoryItem{
		ID:          s.state.id(),
		UnitID:      in.UnitID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.Price != nil {
		item.Price = decimal.NewFromFloat(*in.Price)
	}
	if item.Quantity < 0 || item.ReorderLevel < 0 || item.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "quantity, reorder_level and price must be non-negative"})
	}
	s.state.inventory = append(s.state.inventory, item)
	return c.Status(fiber.StatusCreated).JSON(item)
}

// listInventory lista el inventario: todo para admin, solo la unidad
// asignada para empleados.
func (s *Server) listInventory(c *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if currentRole(c) == "admin" {
		return c.JSON(s.state.inventory)
	}
	unitID := s.unitOf(currentUserID(c))
	out := make([]inventoryItem, 0)
	for _, it := range s.state.inventory {
		if it.UnitID == unitID {
			out = append(out, it)
		}
	}
	return c.JSON(out)
}

// inventoryStats agregado {total, bajo stock} con el mismo umbral que el
// backend original.
func (s *Server) inventoryStats(c *fiber.Ctx) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	unitID := int64(-1)
	if currentRole(c) != "admin" {
		unitID = s.unitOf(currentUserID(c))
	}
	total, low := 0, 0
	for _, it := range s.state.inventory {
		if unitID >= 0 && it.UnitID != unitID {
			continue
		}
		total++
		if it.Quantity < lowInventoryThreshold {
			low++
		}
	}
	return c.JSON(fiber.Map{
		"total_inventory":     total,
		"low_inventory_count": low,
	})
}

// updateInventory actualiza cantidades, nivel de reorden y/o precio.
func (s *Server) updateInventory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid id"})
	}
	var in inventoryBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	item := s.state.findInventory(int64(id))
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Inventory item not found"})
	}
	if currentRole(c) != "admin" && item.UnitID != s.unitOf(currentUserID(c)) {
		return c.Status(fiber.StatusForbidden).JSON(errorResponse{Detail: "You can only update inventory for your assigned unit"})
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "quantity must be non-negative"})
		}
		item.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "reorder_level must be non-negative"})
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.Price != nil {
		p := decimal.NewFromFloat(*in.Price)
		if p.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "price must be non-negative"})
		}
		item.Price = p
	}
	return c.JSON(*item)
}

// deleteInventory elimina un artículo.
func (s *Server) deleteInventory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid id"})
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.inventory {
		if s.state.inventory[i].ID == int64(id) {
			s.state.inventory = append(s.state.inventory[:i], s.state.inventory[i+1:]...)
			delete(s.state.reported, int64(id))
			return c.JSON(fiber.Map{"message": "Inventory item deleted successfully"})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Inventory item not found"})
}

// reportLowInventory registra el reporte manual de stock bajo de un artículo.
func (s *Server) reportLowInventory(c *fiber.Ctx) error {
	var in struct {
		InventoryID int64 `json:"inventory_id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "invalid body"})
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	item := s.state.findInventory(in.InventoryID)
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Inventory item not found"})
	}
	if item.Quantity >= lowInventoryThreshold {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Detail: fmt.Sprintf("Inventory is not below the low inventory threshold (%d)", lowInventoryThreshold),
		})
	}
	s.state.reported[item.ID] = true
	return c.JSON(fiber.Map{"message": "Low inventory reported successfully"})
}

// unitOf unidad asignada al usuario, o 0 si no se encuentra. Llamar con el
// mutex tomado.
func (s *Server) unitOf(userID int64) int64 {
	for _, u := range s.state.users {
		if u.ID == userID {
			return u.UnitID
		}
	}
	return 0
}
